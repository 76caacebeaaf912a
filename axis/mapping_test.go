package axis

import (
	"errors"
	"testing"
	"time"
)

func TestToCoordinateSpace(t *testing.T) {
	offsetValues := baseOptions()
	offsetValues.LowerBound, offsetValues.UpperBound = 10, 50

	for _, test := range []struct {
		opts         Options
		lower, upper int
		inputs, exp  []int
	}{
		{baseOptions(), 0, 100, []int{10, 20, 40}, []int{25, 50, 100}},
		{offsetValues, 0, 100, []int{20, 30, 50}, []int{25, 50, 100}},
		{baseOptions(), 10, 110, []int{10, 20, 40}, []int{35, 60, 110}},
		{baseOptions(), 0, 100, []int{0, 13}, []int{0, 32}}, // truncated
	} {
		cfg := mustConfig(t, test.opts)
		for i, v := range test.inputs {
			got, err := cfg.ToCoordinateSpace(v, test.lower, test.upper)
			if err != nil {
				t.Fatal(err)
			}
			if got != test.exp[i] {
				t.Errorf("map(%d) in [%d, %d]: expected %d, got %d", v, test.lower, test.upper, test.exp[i], got)
			}
		}
	}
}

func TestToCoordinateSpaceVertical(t *testing.T) {
	opts := baseOptions()
	opts.Orientation = Vertical
	cfg := mustConfig(t, opts)
	// the lower coordinate is subtracted instead of added
	got, err := cfg.ToCoordinateSpace(20, 10, 110)
	if err != nil {
		t.Fatal(err)
	}
	if got != 40 {
		t.Errorf("expected 40, got %d", got)
	}
}

func TestToCoordinateSpaceMonotonic(t *testing.T) {
	cfg := mustConfig(t, baseOptions())
	last := -1
	for v := 0; v <= 40; v++ {
		got, err := cfg.ToCoordinateSpace(v, 0, 300)
		if err != nil {
			t.Fatal(err)
		}
		if got < last {
			t.Fatalf("mapping is not monotonic at %d: %d < %d", v, got, last)
		}
		last = got
	}
	if last != 300 {
		t.Errorf("upper bound should map to the upper coordinate, got %d", last)
	}
}

func TestToCoordinateSpaceDate(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2019, 1, d, 0, 0, 0, 0, time.UTC) }

	ax, err := NewLinear(Options{
		MinorEvery: 10, MajorEvery: 30, PxBetweenTicks: 5,
		LowerBound: day(1), UpperBound: day(5), Unit: Date,
	})
	if err != nil {
		t.Fatal(err)
	}
	got, err := ax.ToCoordinateSpace(day(2), 0, 100)
	if err != nil {
		t.Fatal(err)
	}
	if got != 25 {
		t.Errorf("expected 25, got %d", got)
	}

	// same result as the integer ordinal case
	integer := mustConfig(t, Options{MinorEvery: 10, MajorEvery: 30, PxBetweenTicks: 5, LowerBound: 0, UpperBound: 4})
	exp, _ := integer.ToCoordinateSpace(1, 0, 100)
	if got != exp {
		t.Errorf("date axis gives %d, integer axis gives %d", got, exp)
	}

	if _, err = ax.ToCoordinateSpace(2.5, 0, 100); !errors.Is(err, ErrUnsupportedValue) {
		t.Errorf("expected unsupported value error, got %v", err)
	}
}

func TestToCoordinateSpaceErrors(t *testing.T) {
	opts := baseOptions()
	opts.LowerBound, opts.UpperBound = 20, 20
	if _, err := mustConfig(t, opts).ToCoordinateSpace(20, 0, 100); err != ErrDegenerateRange {
		t.Errorf("expected degenerate range error, got %v", err)
	}

	cfg := mustConfig(t, baseOptions())
	cfg.Orientation = 7
	_, err := cfg.ToCoordinateSpace(20, 0, 100)
	var oErr *UnsupportedOrientationError
	if !errors.As(err, &oErr) || oErr.Orientation != 7 {
		t.Errorf("expected orientation error, got %v", err)
	}
}

func TestJulianDay(t *testing.T) {
	d := time.Date(2019, 1, 1, 15, 30, 0, 0, time.FixedZone("X", 3600*5))
	if jd := JulianDay(d); jd != 2458485 {
		t.Errorf("expected 2458485, got %d", jd)
	}
	if back := FromJulianDay(2458485); !back.Equal(time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected date %s", back)
	}
	if jd := JulianDay(time.Date(1969, 12, 31, 0, 0, 0, 0, time.UTC)); jd != 2440587 {
		t.Errorf("expected 2440587, got %d", jd)
	}
}
