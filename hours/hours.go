package hours

import (
	"fmt"
	"time"
)

// Band is the local clock-hour range searched for cheap prices,
// covering [StartHour, EndHour).
type Band struct {
	StartHour int // 0-23
	EndHour   int // 1-24
}

func (b Band) Contains(hour int) bool {
	return hour >= b.StartHour && hour < b.EndHour
}

func (b Band) String() string {
	return fmt.Sprintf("%02d–%02d", b.StartHour, b.EndHour)
}

// Resolve loads the named IANA timezone. Done once per run, the resulting
// location is passed into everything that converts or formats times.
func Resolve(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %s: %w", name, err)
	}
	return loc, nil
}

// DayWindow returns the UTC instants spanning the local calendar day of
// now in loc, midnight to midnight. On DST transition days the window is
// 23 or 25 hours long in UTC terms, which is fine since downstream
// filtering is by local hour-of-day, not elapsed duration.
func DayWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)
	return start.UTC(), end.UTC()
}

// SameDate reports whether a and b fall on the same calendar date.
// Both must already be in the relevant timezone.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// QuarterRange formats the 15-minute interval starting at t, e.g. "13:00–13:15".
func QuarterRange(t time.Time) string {
	return fmt.Sprintf("%s–%s", t.Format("15:04"), t.Add(15*time.Minute).Format("15:04"))
}

// BlockRange formats the interval from the first quarter's start to the
// last quarter's end, e.g. "12:45–13:45" for a four-quarter block.
func BlockRange(first, last time.Time) string {
	return fmt.Sprintf("%s–%s", first.Format("15:04"), last.Add(15*time.Minute).Format("15:04"))
}
