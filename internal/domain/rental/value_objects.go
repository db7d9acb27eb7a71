package rental

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidPeriod = errors.New("period end must be after start")

// Period is a half-open interval [start, end). Touching endpoints do not
// overlap: a rental ending 10:00 and one starting 10:00 are compatible.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if !end.After(start) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{start: start, end: end}, nil
}

func ReconstructPeriod(start, end time.Time) Period {
	return Period{start: start, end: end}
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

func (p Period) Hours() float64 {
	return p.end.Sub(p.start).Hours()
}

func (p Period) Overlaps(other Period) bool {
	return p.start.Before(other.end) && p.end.After(other.start)
}

func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.start) && t.Before(p.end)
}

func (p Period) String() string {
	return fmt.Sprintf("[%s,%s)", p.start.Format(time.RFC3339), p.end.Format(time.RFC3339))
}
