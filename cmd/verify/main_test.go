package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rotconv/internal/batch"
	"rotconv/internal/mathutil"
)

func TestDescribe(t *testing.T) {
	want := mathutil.QuatIdentity()

	tests := []struct {
		name string
		r    batch.Result
		want string
	}{
		{"error", batch.Result{Error: "bad input"}, "bad input"},
		{"mismatch", batch.Result{Quat: mathutil.Quat{0, 0, 0, -1}, Want: &want},
			"got (0.0000, 0.0000, 0.0000, -1.0000), want (0.0000, 0.0000, 0.0000, 1.0000)"},
		{"norm", batch.Result{Match: true, Quat: mathutil.Quat{0, 0, 0, 2}}, "|q| = 2.000000"},
		{"round trip", batch.Result{Match: true, UnitNorm: true, Recovered: mathutil.Euler{1, 2, 3}},
			"round trip through (1.00, 2.00, 3.00) changed the rotation (max angle change 3.0000°)"},
		{"ok", batch.Result{Match: true, UnitNorm: true, RoundTrip: true}, "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describe(tt.r))
		})
	}
}

func TestMaxAngleDist(t *testing.T) {
	assert.InDelta(t, 0.0, maxAngleDist(mathutil.Euler{10, 20, 30}, mathutil.Euler{10, 20, 30}), 1e-9)
	assert.InDelta(t, 20.0, maxAngleDist(mathutil.Euler{350, 0, 5}, mathutil.Euler{10, 0, 0}), 1e-9)
	assert.InDelta(t, 0.0, maxAngleDist(mathutil.Euler{-90, 0, 0}, mathutil.Euler{270, 360, -360}), 1e-9)
	assert.InDelta(t, 180.0, maxAngleDist(mathutil.Euler{0, 0, 180}, mathutil.Euler{0, 0, 0}), 1e-9)
}
