package freq

import (
	"math"
	"testing"
	"time"
)

type celsius float32
type label string

func TestNormalize(t *testing.T) {
	now := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	var nilPtr *int
	tests := []struct {
		in   interface{}
		want interface{}
	}{
		{nil, nil},
		{7, int64(7)},
		{int16(-3), int64(-3)},
		{uint8(200), int64(200)},
		{float32(1.5), 1.5},
		{3.0, int64(3)},
		{float32(-2), int64(-2)},
		{celsius(20), int64(20)},
		{1e19, 1e19},
		{math.Inf(1), math.Inf(1)},
		{celsius(2.25), 2.25},
		{label("yes"), "yes"},
		{true, true},
		{now, now},
		{Bin{0, 1, true}, Bin{0, 1, true}},
		{nilPtr, nil},
	}
	for i, tc := range tests {
		got, err := Normalize(tc.in)
		if err != nil {
			t.Errorf("%d: Normalize(%#v) failed: %s", i, tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%d: Normalize(%#v) = %#v, want %#v", i, tc.in, got, tc.want)
		}
	}

	for _, bad := range []interface{}{[]int{1}, map[string]int{}, func() {}} {
		if _, err := Normalize(bad); err == nil {
			t.Errorf("Normalize(%T) should fail", bad)
		}
	}
}

func TestMissing(t *testing.T) {
	if !Missing(nil) || !Missing(math.NaN()) {
		t.Errorf("nil and NaN must be missing")
	}
	if Missing(0.0) || Missing("") || Missing(int64(0)) {
		t.Errorf("zero values are not missing")
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{66.666666, 66.67},
		{33.333333, 33.33},
		{0.625, 0.62},
		{0.375, 0.38},
		{12.5, 12.5},
		{99.375, 99.38},
		{0, 0},
		{100, 100},
	}
	for _, tc := range tests {
		if got := Round2(tc.x); got != tc.want {
			t.Errorf("Round2(%v) = %v, want %v", tc.x, got, tc.want)
		}
	}
}
