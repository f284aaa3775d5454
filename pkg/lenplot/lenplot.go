// 15 Oct 2026
// Package lenplot draws a bar chart of how many peptides there are of
// each length. It is meant for a quick look at whether the lengths
// are as flat as they should be, not for publication.

package lenplot

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strconv"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

const (
	DefWidth  = 640
	DefHeight = 400
	fontSize  = 12
	mLeft     = 50 // margins in pixels
	mRight    = 20
	mTop      = 40
	mBottom   = 40
	minBar    = 2 // narrowest bar slot when we choose the width
)

var (
	barColour  = color.RGBA{0x33, 0x66, 0xaa, 0xff}
	axisColour = color.Black
)

// Histogram counts how many lengths there are of each value from min
// to max. Anything outside is ignored.
func Histogram(lengths []int, min, max int) []int {
	if max < min {
		return nil
	}
	h := make([]int, max-min+1)
	for _, l := range lengths {
		if l >= min && l <= max {
			h[l-min]++
		}
	}
	return h
}

// Plot is what to draw. Counts[i] is the number of peptides of length
// Min+i.
type Plot struct {
	Title  string
	Min    int
	Counts []int
	Width  int
	Height int
}

var (
	fontOnce sync.Once
	goFont   *truetype.Font
	fontErr  error
)

func getFont() (*truetype.Font, error) {
	fontOnce.Do(func() {
		goFont, fontErr = freetype.ParseFont(goregular.TTF)
	})
	return goFont, fontErr
}

// size is the image size. With no width given, the image is widened
// if need be, so every bar gets minBar pixels.
func (p *Plot) size() (int, int) {
	w, h := p.Width, p.Height
	if w <= 0 {
		w = DefWidth
		if need := minBar*len(p.Counts) + mLeft + mRight; need > w {
			w = need
		}
	}
	if h <= 0 {
		h = DefHeight
	}
	return w, h
}

// plotArea is the rectangle inside the axes.
func (p *Plot) plotArea() image.Rectangle {
	w, h := p.size()
	return image.Rect(mLeft, mTop, w-mRight, h-mBottom)
}

// maxCount is the tallest bar. It is never below 1, so we can divide.
func (p *Plot) maxCount() int {
	m := 1
	for _, c := range p.Counts {
		if c > m {
			m = c
		}
	}
	return m
}

// barRect is where bar i goes. Empty bars give an empty rectangle.
func (p *Plot) barRect(i int) image.Rectangle {
	area := p.plotArea()
	n := len(p.Counts)
	slot := area.Dx() / n
	x0 := area.Min.X + i*slot + slot/8
	x1 := area.Min.X + (i+1)*slot - slot/8
	if x1 <= x0 {
		x1 = x0 + 1
	}
	ht := p.Counts[i] * area.Dy() / p.maxCount()
	return image.Rect(x0, area.Max.Y-ht, x1, area.Max.Y)
}

// label puts s on the image. x is the centre of the text and y the
// baseline.
func label(c *freetype.Context, face font.Face, s string, x, y int) error {
	wid := font.MeasureString(face, s)
	pt := fixed.Point26_6{X: fixed.I(x) - wid/2, Y: fixed.I(y)}
	_, err := c.DrawString(s, pt)
	return err
}

// Draw renders the plot.
func (p *Plot) Draw() (*image.RGBA, error) {
	if len(p.Counts) == 0 {
		return nil, errors.New("lenplot: nothing to plot")
	}
	f, err := getFont()
	if err != nil {
		return nil, errors.Wrap(err, "lenplot: parsing font")
	}
	w, h := p.size()
	if w-mLeft-mRight < len(p.Counts) || h-mTop-mBottom < 1 {
		return nil, errors.Errorf("lenplot: %dx%d is too small for %d bars", w, h, len(p.Counts))
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	for i := range p.Counts {
		draw.Draw(img, p.barRect(i), &image.Uniform{barColour}, image.Point{}, draw.Src)
	}
	area := p.plotArea()
	axis := &image.Uniform{axisColour}
	draw.Draw(img, image.Rect(area.Min.X-1, area.Min.Y, area.Min.X, area.Max.Y+1), axis, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(area.Min.X-1, area.Max.Y, area.Max.X, area.Max.Y+1), axis, image.Point{}, draw.Src)

	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(f)
	c.SetFontSize(fontSize)
	c.SetClip(img.Bounds())
	c.SetDst(img)
	c.SetSrc(image.Black)
	c.SetHinting(font.HintingNone)
	face := truetype.NewFace(f, &truetype.Options{Size: fontSize, DPI: 72})
	defer face.Close()

	if p.Title != "" {
		if err := label(c, face, p.Title, w/2, mTop/2+fontSize/2); err != nil {
			return nil, err
		}
	}

	// Label every bar if there is room, otherwise every step'th.
	slot := area.Dx() / len(p.Counts)
	widest := font.MeasureString(face, strconv.Itoa(p.Min+len(p.Counts)-1)).Ceil() + 4
	step := 1
	for step*slot < widest {
		step++
	}
	for i := 0; i < len(p.Counts); i += step {
		x := area.Min.X + i*slot + slot/2
		if err := label(c, face, strconv.Itoa(p.Min+i), x, area.Max.Y+fontSize+4); err != nil {
			return nil, err
		}
	}
	if err := label(c, face, "length", w/2, h-4); err != nil {
		return nil, err
	}
	if err := label(c, face, strconv.Itoa(p.maxCount()), mLeft/2, area.Min.Y+fontSize/2); err != nil {
		return nil, err
	}
	if err := label(c, face, "0", mLeft/2, area.Max.Y); err != nil {
		return nil, err
	}
	return img, nil
}

// WritePNG draws the plot and writes it as a png.
func (p *Plot) WritePNG(w io.Writer) error {
	img, err := p.Draw()
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
