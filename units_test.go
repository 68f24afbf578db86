package gear

import (
	"errors"
	"math"
	"testing"
)

func TestConvertLength(t *testing.T) {
	for _, v := range []float64{0, 1, -3.5, 25.4, 1e-9, 1e9} {
		for _, u := range []Unit{Millimetre, Inch} {
			if got := ConvertLength(v, u, u); got != v {
				t.Errorf("ConvertLength(%g, %s, %s) = %g", v, u, u, got)
			}
		}
		back := FromMillimetres(ToMillimetres(v, Inch), Inch)
		if math.Abs(back-v) > 1e-9*math.Max(1, math.Abs(v)) {
			t.Errorf("inch round trip of %g gave %g", v, back)
		}
	}
	if got := ConvertLength(1, Inch, Millimetre); got != 25.4 {
		t.Errorf("1in = %gmm, want 25.4", got)
	}
	if got := ConvertLength(50.8, Millimetre, Inch); math.Abs(got-2) > 1e-12 {
		t.Errorf("50.8mm = %gin, want 2", got)
	}
	if !math.IsNaN(ToMillimetres(math.Inf(1), Inch)) {
		t.Error("infinite input must convert to NaN")
	}
	if !math.IsNaN(FromMillimetres(math.NaN(), Millimetre)) {
		t.Error("NaN input must stay NaN")
	}
	if !math.IsInf(ConvertLength(math.Inf(-1), Inch, Millimetre), -1) {
		t.Error("ConvertLength passes non-finite values through unchanged")
	}
}

func TestParseUnit(t *testing.T) {
	for s, want := range map[string]Unit{"mm": Millimetre, "IN": Inch, " inches ": Inch, "millimeters": Millimetre} {
		got, err := ParseUnit(s)
		if err != nil || got != want {
			t.Errorf("ParseUnit(%q) = %q, %v", s, got, err)
		}
	}
	if _, err := ParseUnit("furlong"); !errors.Is(err, ErrUnknownUnit) {
		t.Errorf("expected ErrUnknownUnit, got %v", err)
	}
}
