package vlog_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/assert"

	"github.com/andrew-torda/randpep/pkg/vlog"
)

func TestLevels(t *testing.T) {
	tests := []struct {
		vbsty int
		want  []string
	}{
		{vlog.Quiet, []string{"level=error"}},
		{vlog.Warn, []string{"level=error", "level=warn"}},
		{vlog.Info, []string{"level=error", "level=warn", "level=info"}},
		{vlog.Debug, []string{"level=error", "level=warn", "level=info", "level=debug"}},
		{17, []string{"level=error", "level=warn", "level=info", "level=debug"}},
	}
	for _, tt := range tests {
		var b bytes.Buffer
		logger := vlog.New(&b, tt.vbsty)
		level.Error(logger).Log("msg", "e")
		level.Warn(logger).Log("msg", "w")
		level.Info(logger).Log("msg", "i")
		level.Debug(logger).Log("msg", "d")
		lines := strings.Split(strings.TrimSpace(b.String()), "\n")
		assert.Len(t, lines, len(tt.want), "verbosity %d", tt.vbsty)
		for i, w := range tt.want {
			assert.Contains(t, lines[i], w)
			assert.Contains(t, lines[i], "ts=")
		}
	}
}
