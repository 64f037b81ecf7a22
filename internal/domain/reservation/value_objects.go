package reservation

import (
	"errors"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

var (
	ErrInvalidPeriod = errors.New("start date must not be after end date")
	ErrNegativeMoney = errors.New("money cannot be negative")
)

// Period is an inclusive range of calendar dates. Both ends are kept as midnight UTC.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	s, e := DateOf(start), DateOf(end)
	if s.After(e) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{start: s, end: e}, nil
}

// DateOf keeps the calendar date of t as seen in t's own location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

// Days counts both ends, so a same-day rental is one day.
func (p Period) Days() int64 {
	return int64(p.end.Sub(p.start)/(24*time.Hour)) + 1
}

// Overlaps holds when each period starts on or before the other's end.
func (p Period) Overlaps(other Period) bool {
	return !p.start.After(other.end) && !other.start.After(p.end)
}

func (p Period) IsZero() bool {
	return p.start.IsZero() && p.end.IsZero()
}

func (p Period) String() string {
	return fmt.Sprintf("[%s,%s]", p.start.Format(DateLayout), p.end.Format(DateLayout))
}

// Money is an amount in yen; there is no minor unit below one yen.
type Money struct {
	amount int64
}

func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativeMoney
	}
	return Money{amount: amount}, nil
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) Times(n int64) Money {
	return Money{amount: m.amount * n}
}
