package outline

import (
	"math"
	"strings"
	"testing"

	"github.com/soypat/gear"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestBuildInvalid(t *testing.T) {
	for _, req := range []Request{
		{Teeth: 0, PitchRadius: 10},
		{Teeth: 20, PitchRadius: 0},
		{Teeth: math.NaN(), PitchRadius: 10},
		{Teeth: 20, PitchRadius: math.Inf(1)},
		{Teeth: -20, PitchRadius: 10, Ring: true},
		{Teeth: 1e19, PitchRadius: 10},
		{Teeth: MaxTeeth + 0.5, PitchRadius: 10},
	} {
		if got := Build(req); got != "" {
			t.Errorf("Build(%+v) = %q, want empty", req, got)
		}
		if Points(req) != nil {
			t.Errorf("Points(%+v) want nil", req)
		}
		if _, err := Shape(req); err != ErrInvalidRequest {
			t.Errorf("Shape(%+v) err = %v", req, err)
		}
	}
}

func TestBuildSinglePath(t *testing.T) {
	path := Build(Request{Teeth: 20, PitchRadius: 50})
	if !strings.HasPrefix(path, "M ") || !strings.HasSuffix(path, " Z") {
		t.Fatalf("path must start with M and end with Z: %.40q...", path)
	}
	if strings.Count(path, "Z") != 1 || strings.Count(path, "M") != 1 {
		t.Errorf("expected a single closed subpath")
	}
	if strings.Contains(path, "e") || strings.Contains(path, "NaN") {
		t.Errorf("path contains non plain numbers")
	}
}

func TestPointCount(t *testing.T) {
	var tests = []struct {
		teeth float64
		want  int
	}{
		// 20 teeth: flank 4, tip 5, gap 3 steps. Each arc has steps+1 points.
		{20, 20*(5+6+5+4) + 1},
		{19.6, 20*(5+6+5+4) + 1},
		// Floored to 6 teeth: flank 12, tip 15, gap 10 steps.
		{3, 6*(13+16+13+11) + 1},
		// Many teeth hit the minimum step counts.
		{200, 200*(4+4+4+3) + 1},
	}
	for _, test := range tests {
		got := len(Points(Request{Teeth: test.teeth, PitchRadius: 10}))
		if got != test.want {
			t.Errorf("teeth=%g: got %d points, want %d", test.teeth, got, test.want)
		}
	}
}

func TestPointRadii(t *testing.T) {
	const pitch = 40
	pts := Points(Request{Teeth: 12, PitchRadius: pitch})
	for _, p := range pts {
		r := r2.Norm(p)
		if math.Abs(r-pitch) > 1e-9 && math.Abs(r-pitch*rootFraction) > 1e-9 {
			t.Fatalf("point %v at radius %g is neither tip nor default root", p, r)
		}
	}
	first, last := pts[0], pts[len(pts)-1]
	if r2.Norm(r2.Sub(first, last)) > 1e-9 {
		t.Errorf("boundary does not return to its start: %v %v", first, last)
	}
	// First point lies half a root width before the positive X axis.
	wantAngle := -(2 * math.Pi / 12) * 0.42 / 2
	if got := math.Atan2(first.Y, first.X); math.Abs(got-wantAngle) > 1e-12 {
		t.Errorf("start angle %g, want %g", got, wantAngle)
	}
}

func TestRingReversed(t *testing.T) {
	req := Request{Teeth: 24, PitchRadius: 60, OutsideRadius: 56, RootRadius: 64}
	plain := Build(req)
	req.Ring = true
	ring := Build(req)
	if strings.Count(ring, "Z") != 2 {
		t.Fatalf("ring path must contain two closed subpaths")
	}
	idx := strings.Index(ring, " M ")
	if idx < 0 {
		t.Fatal("missing second subpath")
	}
	outer, inner := ring[:idx], ring[idx+1:]
	if outer != CirclePath(64, false) {
		t.Errorf("outer boundary is not the root circle: %q", outer)
	}
	want := pathPoints(plain)
	got := pathPoints(inner)
	if len(got) != len(want) {
		t.Fatalf("inner boundary has %d points, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[len(want)-1-i] {
			t.Fatalf("point %d of inner boundary is %s, want %s", i, got[i], want[len(want)-1-i])
		}
	}
}

// pathPoints returns the "x y" pairs of a polyline path.
func pathPoints(path string) []string {
	fields := strings.Fields(path)
	var pts []string
	for i := 0; i < len(fields); i++ {
		if fields[i] == "M" || fields[i] == "L" {
			pts = append(pts, fields[i+1]+" "+fields[i+2])
			i += 2
		}
	}
	return pts
}

func TestProfiles(t *testing.T) {
	if ParseProfile("Worm") != Worm || ParseProfile("soft") != Soft || ParseProfile("zigzag") != Standard {
		t.Error("ParseProfile")
	}
	base := Request{Teeth: 30, PitchRadius: 25, OutsideRadius: 27}
	bogus := base
	bogus.Profile = Profile(42)
	if Build(bogus) != Build(base) {
		t.Error("unknown profile must fall back to standard")
	}
	if bogus.Profile.String() != "standard" || Worm.String() != "worm" {
		t.Error("profile names")
	}
	soft := base
	soft.Profile = Soft
	if Build(soft) == Build(base) {
		t.Error("soft profile must differ from standard")
	}
}

func TestCirclePath(t *testing.T) {
	if got, want := CirclePath(10, false), "M 10 0 A 10 10 0 1 1 -10 0 A 10 10 0 1 1 10 0 Z"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := CirclePath(2.5, true), "M 2.5 0 A 2.5 2.5 0 1 0 -2.5 0 A 2.5 2.5 0 1 0 2.5 0 Z"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if CirclePath(0, false) != "" || CirclePath(math.NaN(), true) != "" {
		t.Error("invalid radius must give empty path")
	}
}

func TestScaleToViewBox(t *testing.T) {
	vb := ScaleToViewBox(42, DefaultPadding)
	if vb.Size != 120 || vb.String() != "-60 -60 120 120" {
		t.Errorf("got %+v %q", vb, vb.String())
	}
	vb = ScaleToViewBox(math.NaN(), 2)
	if vb.Size != 6 || vb.String() != "-3 -3 6 6" {
		t.Errorf("invalid radius: got %+v", vb)
	}
	if got := ScaleToViewBox(1.25, 0).String(); got != "-1.25 -1.25 2.5 2.5" {
		t.Errorf("got %q", got)
	}
}

func TestShape(t *testing.T) {
	const teeth = 16
	half := math.Pi / teeth // middle of the gap after the first tooth
	req := Request{Teeth: teeth, PitchRadius: 32, OutsideRadius: 34, RootRadius: 29.5}
	s, err := Shape(req)
	if err != nil {
		t.Fatal(err)
	}
	mid := (34 + 29.5) / 2.
	if d := s.Evaluate(r2.Vec{}); d >= 0 {
		t.Errorf("centre of external gear should be inside, d=%g", d)
	}
	if d := s.Evaluate(r2.Vec{X: mid}); d >= 0 {
		t.Errorf("tooth should be inside, d=%g", d)
	}
	if d := s.Evaluate(r2.Vec{X: mid * math.Cos(half), Y: mid * math.Sin(half)}); d <= 0 {
		t.Errorf("gap should be outside, d=%g", d)
	}
	if d := s.Evaluate(r2.Vec{X: 40}); math.Abs(d-6) > 1e-9 {
		t.Errorf("distance from tip: got %g want 6", d)
	}

	req = Request{Teeth: teeth, PitchRadius: 32, OutsideRadius: 30, RootRadius: 34.5, Ring: true}
	s, err = Shape(req)
	if err != nil {
		t.Fatal(err)
	}
	mid = (30 + 34.5) / 2.
	if d := s.Evaluate(r2.Vec{}); d <= 0 {
		t.Errorf("centre of ring should be empty, d=%g", d)
	}
	if d := s.Evaluate(r2.Vec{X: mid}); d >= 0 {
		t.Errorf("ring tooth should be inside, d=%g", d)
	}
	if d := s.Evaluate(r2.Vec{X: mid * math.Cos(half), Y: mid * math.Sin(half)}); d <= 0 {
		t.Errorf("ring gap should be empty, d=%g", d)
	}
	if b := s.Bounds(); b.Max.X != 34.5 || b.Min.Y != -34.5 {
		t.Errorf("ring bounds %+v", b)
	}
	if MaxRadius(req) != 34.5 {
		t.Errorf("MaxRadius = %g", MaxRadius(req))
	}
}

func TestShapeTinyRadius(t *testing.T) {
	for _, req := range []Request{
		{Teeth: 20, PitchRadius: 1e-10},
		{Teeth: 20, PitchRadius: 1e-10, Ring: true},
	} {
		if _, err := Shape(req); err != ErrDegenerate {
			t.Errorf("Shape(%+v) err = %v, want ErrDegenerate", req, err)
		}
	}
	// Small radii still resolve while vertices stay apart.
	if _, err := Shape(Request{Teeth: 20, PitchRadius: 1e-3}); err != nil {
		t.Errorf("small gear: %v", err)
	}
}

func TestPolygonPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Polygon([]r2.Vec{{X: 1}, {X: 1}, {X: 1}, {Y: 1}})
}

func TestFromGear(t *testing.T) {
	ring := gear.Ring{}
	in := ring.Defaults()
	req := FromGear(gear.KindRing, in, ring.Calculate(in), gear.Millimetre)
	if !req.Ring || req.Teeth != 60 || req.PitchRadius != 60 || req.OutsideRadius != 58 {
		t.Errorf("ring request %+v", req)
	}

	worm := gear.Worm{}
	in = worm.Defaults()
	req = FromGear(gear.KindWorm, in, worm.Calculate(in), gear.Inch)
	if req.Teeth != 30 || req.Profile != Worm || math.Abs(req.PitchRadius-30/25.4) > 1e-12 {
		t.Errorf("worm request %+v", req)
	}

	bevel := gear.Bevel{}
	in = bevel.Defaults()
	req = FromGear(gear.KindBevel, in, bevel.Calculate(in), gear.Millimetre)
	if req.Teeth != 20 || req.Profile != Standard || req.Ring {
		t.Errorf("bevel request %+v", req)
	}
	if Build(req) == "" {
		t.Error("bevel defaults must produce an outline")
	}
}
