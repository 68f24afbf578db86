package gear

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	var tests = []struct {
		v        float64
		decimals int
		want     string
	}{
		{40, NumberDecimals, "40.000"},
		{1.23456, NumberDecimals, "1.235"},
		{-0.25, 1, "-0.2"},
		{0.25, 1, "0.3"},
		{-2.5, 0, "-2"},
		{-0.0025, 3, "-0.002"},
		{-0.0001, 3, "0.000"},
		{math.Copysign(0, -1), 2, "0.00"},
		{math.Pi, 0, "3"},
		{math.NaN(), 3, Placeholder},
		{math.Inf(1), 3, Placeholder},
	}
	for _, test := range tests {
		if got := FormatNumber(test.v, test.decimals); got != test.want {
			t.Errorf("FormatNumber(%g, %d) = %q, want %q", test.v, test.decimals, got, test.want)
		}
	}
	if got := FormatAngle(20, AngleDecimals); got != "20.00" {
		t.Errorf("FormatAngle(20) = %q", got)
	}
	if got := FormatAngle(math.NaN(), AngleDecimals); got != Placeholder {
		t.Errorf("FormatAngle(NaN) = %q", got)
	}
	if _, ok := RoundTo(math.Inf(-1), 2); ok {
		t.Error("RoundTo must reject infinities")
	}
	if r, _ := RoundTo(-0.0001, 3); math.Signbit(r) {
		t.Error("RoundTo must not return negative zero")
	}
	if r, _ := RoundTo(1.23456, 2); r != 1.23 {
		t.Errorf("RoundTo(1.23456, 2) = %g", r)
	}
}

func TestLabelUnit(t *testing.T) {
	if LabelUnit(Inch) != "in" || LabelUnit(Millimetre) != "mm" || LabelUnit("inch") != "mm" {
		t.Error("LabelUnit only reports inches for an exact match")
	}
}
