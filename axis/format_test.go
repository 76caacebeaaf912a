package axis

import (
	"testing"
	"time"
)

func TestNumberFormatter(t *testing.T) {
	for _, test := range []struct {
		style NumberStyle
		value int
		exp   string
	}{
		{"", 1234567, "1234567"},
		{Plain, -42, "-42"},
		{Comma, 1234567, "1,234,567"},
		{SI, 1500, "1.5k"},
		{SI, 2000000, "2M"},
		{SI, 0, "0"},
	} {
		if got := (NumberFormatter{Style: test.style}).Format(test.value); got != test.exp {
			t.Errorf("%s(%d): expected %s, got %s", test.style, test.value, test.exp, got)
		}
	}
}

func TestDateFormatter(t *testing.T) {
	jd := JulianDay(time.Date(2019, 3, 7, 0, 0, 0, 0, time.UTC))
	if got := (DateFormatter{}).Format(jd); got != "2019-03-07" {
		t.Errorf("unexpected default date label %s", got)
	}
	if got := (DateFormatter{Layout: "%d/%m"}).Format(jd); got != "07/03" {
		t.Errorf("unexpected date label %s", got)
	}
}

func TestDateAxisTicks(t *testing.T) {
	cfg := mustConfig(t, Options{
		MinorEvery: 1, MajorEvery: 2, PxBetweenTicks: 10,
		LowerBound: time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC),
		UpperBound: time.Date(2019, 1, 3, 0, 0, 0, 0, time.UTC),
		DateLayout: "%b %d",
	})
	if cfg.Unit != Date {
		t.Fatalf("expected date unit, got %s", cfg.Unit)
	}
	ticks := cfg.Ticks()
	if len(ticks) != 2 || ticks[0].Label != "Jan 02" || ticks[1].Position != 20 {
		t.Errorf("unexpected ticks %v", ticks)
	}
}

func TestCustomFormatter(t *testing.T) {
	cfg := mustConfig(t, Options{
		MinorEvery: 10, MajorEvery: 10, UpperBound: 20,
		Formatter: FormatterFunc(func(v int) string { return "#" }),
	})
	for _, tick := range cfg.Ticks() {
		if tick.Label != "#" {
			t.Errorf("unexpected label %s", tick.Label)
		}
	}
}
