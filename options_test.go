package rampcache

import (
	"bytes"
	"log/slog"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.retained != RetainedCount {
		t.Errorf("retained = %d, want %d", o.retained, RetainedCount)
	}
	if o.interp != InterpolateSRGB {
		t.Errorf("interp = %v, want %v", o.interp, InterpolateSRGB)
	}
	if o.logger != nil {
		t.Error("logger should default to nil (package logger)")
	}
}

func TestWithRetainedCount(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"custom", 16, 16},
		{"one", 1, 1},
		{"zero keeps default", 0, RetainedCount},
		{"negative keeps default", -3, RetainedCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(WithRetainedCount(tt.n))
			if got := c.Stats().Retained; got != tt.want {
				t.Errorf("Retained = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWithInterpolation(t *testing.T) {
	c := New(WithInterpolation(InterpolateLinearSRGB))
	if c.interp != InterpolateLinearSRGB {
		t.Errorf("interp = %v, want %v", c.interp, InterpolateLinearSRGB)
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))

	if c := New(WithLogger(l)); c.log() != l {
		t.Error("log() does not return the WithLogger logger")
	}
	if c := New(WithLogger(l), WithLogger(nil)); c.log() != Logger() {
		t.Error("WithLogger(nil) does not restore the package logger")
	}
}

func TestOptionsApplyInOrder(t *testing.T) {
	c := New(WithRetainedCount(8), WithRetainedCount(4))
	if got := c.Stats().Retained; got != 4 {
		t.Errorf("Retained = %d, want last option to win (4)", got)
	}
}
