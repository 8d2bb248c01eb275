package clock

import (
	"testing"
	"time"
)

func TestDayOf(t *testing.T) {
	cases := []struct {
		name  string
		input time.Time
		want  time.Time
	}{
		{
			name:  "midday utc",
			input: time.Date(2024, 3, 15, 13, 45, 12, 0, time.UTC),
			want:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "exact midnight",
			input: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			want:  time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "offset zone converts before truncation",
			// 01:30+07:00 is still the previous day in UTC.
			input: time.Date(2024, 3, 15, 1, 30, 0, 0, time.FixedZone("WIB", 7*3600)),
			want:  time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := DayOf(c.input)
			if !got.Equal(c.want) {
				t.Errorf("DayOf(%v) = %v, want %v", c.input, got, c.want)
			}
		})
	}
}

func TestFixed(t *testing.T) {
	instant := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	clk := Fixed{Instant: instant}
	if !clk.Now().Equal(instant) {
		t.Errorf("Fixed.Now() = %v, want %v", clk.Now(), instant)
	}
}

func TestSystemReturnsUTC(t *testing.T) {
	now := System{}.Now()
	if now.Location() != time.UTC {
		t.Errorf("System.Now() location = %v, want UTC", now.Location())
	}
}
