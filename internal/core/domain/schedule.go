package domain

import (
	"fmt"
	"time"
)

// TimeOfDay is a wall-clock time without a date, stored as microseconds
// since midnight to match the precision of a Postgres TIME column.
type TimeOfDay int64

const (
	microsPerSecond = int64(time.Second / time.Microsecond)
	// EndOfDay is the first value past the last valid TimeOfDay.
	EndOfDay = TimeOfDay(24 * 60 * 60 * microsPerSecond)
)

// NewTimeOfDay builds a TimeOfDay from its clock components.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(int64((hour*60+minute)*60+second) * microsPerSecond)
}

// ClockOf returns the time of day of t in t's own location.
func ClockOf(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return NewTimeOfDay(h, m, s) + TimeOfDay(t.Nanosecond()/int(time.Microsecond))
}

// ParseTimeOfDay accepts "15:04" and "15:04:05".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return ClockOf(t), nil
		}
	}
	return 0, fmt.Errorf("invalid time of day %q: %w", s, ErrValidation)
}

func (t TimeOfDay) String() string {
	total := int64(t) / microsPerSecond
	h, m, s := total/3600, total/60%60, total%60
	if s == 0 {
		return fmt.Sprintf("%02d:%02d", h, m)
	}
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// MarshalText implements encoding.TextMarshaler.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TimeOfDay) UnmarshalText(b []byte) error {
	v, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// DaypartingSchedule restricts a campaign to a daily time window.
type DaypartingSchedule struct {
	CampaignID int64
	Start      TimeOfDay
	End        TimeOfDay
}

// Contains reports whether t falls inside the window. Both ends are
// inclusive; a time before Start or after End is outside.
func (s DaypartingSchedule) Contains(t TimeOfDay) bool {
	return !(t < s.Start || t > s.End)
}

// Validate checks that both ends are valid clock values and that the
// window does not end before it starts.
func (s DaypartingSchedule) Validate() error {
	if s.Start < 0 || s.Start >= EndOfDay || s.End < 0 || s.End >= EndOfDay {
		return fmt.Errorf("schedule bounds out of range: %w", ErrValidation)
	}
	if s.End < s.Start {
		return fmt.Errorf("schedule ends (%s) before it starts (%s): %w", s.End, s.Start, ErrValidation)
	}
	return nil
}
