package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeDuration(t *testing.T) {
	day := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		clockIn  time.Time
		clockOut time.Time
		want     string
	}{
		{
			name:     "full workday 09:00 to 17:30",
			clockIn:  day.Add(9 * time.Hour),
			clockOut: day.Add(17*time.Hour + 30*time.Minute),
			want:     "8.5",
		},
		{
			name:     "exact eight hours",
			clockIn:  day.Add(9 * time.Hour),
			clockOut: day.Add(17 * time.Hour),
			want:     "8",
		},
		{
			name:     "rounds to two decimals",
			clockIn:  day.Add(9 * time.Hour),
			clockOut: day.Add(9*time.Hour + 10*time.Minute),
			want:     "0.17",
		},
		{
			name:     "zero duration",
			clockIn:  day.Add(9 * time.Hour),
			clockOut: day.Add(9 * time.Hour),
			want:     "0",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ComputeDuration(c.clockIn, c.clockOut)
			assert.Equal(t, c.want, got.String())
			assert.False(t, got.IsNegative())
		})
	}
}
