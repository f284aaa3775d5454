package randpep

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Summary is written at the end of a run, so it can be repeated.
type Summary struct {
	Input     string `yaml:"input"`
	Output    string `yaml:"output"`
	Seed      int64  `yaml:"seed"`
	SeedGiven bool   `yaml:"seed_given"`
	Params    Params `yaml:"params"`
	Loaded    int    `yaml:"loaded"`
	Drawn     int    `yaml:"drawn"`
	Skipped   int    `yaml:"skipped"`
	Emitted   int    `yaml:"emitted"`
	Elapsed   string `yaml:"elapsed"`
}

func (s *Summary) setElapsed(d time.Duration) { s.Elapsed = d.Round(time.Millisecond).String() }

// WriteSummary writes a summary as yaml.
func WriteSummary(w io.Writer, s *Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return errors.Wrap(err, "encoding summary")
	}
	return enc.Close()
}

// ReadSummary is the opposite of WriteSummary.
func ReadSummary(r io.Reader) (*Summary, error) {
	var s Summary
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, errors.Wrap(err, "decoding summary")
	}
	return &s, nil
}
