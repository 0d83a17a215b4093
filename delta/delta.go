// Package delta provides a calendar-relative offset between instants.
//
// A Delta is expressed in calendar units (years, months, days) alongside
// fixed units (hours down to nanoseconds). Calendar units are applied
// through the calendar, so the absolute length of a Delta depends on the
// instant it is anchored to.
package delta

import (
	"strconv"
	"strings"
	"time"
)

type Unit string

const (
	None   Unit = "None"
	Nano   Unit = "ns"
	Second Unit = "s"
	Minute Unit = "m"
	Hour   Unit = "h"
	Day    Unit = "d"
	Week   Unit = "w"
	Month  Unit = "M"
	Year   Unit = "y"
)

const NumberOfDaysInWeek = 7

type Delta struct {
	years, months, days            int
	hours, minutes, seconds, nanos int
}

func New(count int, unit Unit) Delta {
	switch unit {
	case Year:
		return Delta{years: count}
	case Month:
		return Delta{months: count}
	case Week:
		return Delta{days: count * NumberOfDaysInWeek}
	case Day:
		return Delta{days: count}
	case Hour:
		return Delta{hours: count}
	case Minute:
		return Delta{minutes: count}
	case Second:
		return Delta{seconds: count}
	case Nano:
		return Delta{nanos: count}
	}

	return Delta{}
}

// FromDuration converts a fixed duration into the equivalent Delta.
func FromDuration(d time.Duration) Delta {
	return Delta{
		seconds: int(d / time.Second),
		nanos:   int(d % time.Second),
	}
}

func (d Delta) AddTo(t time.Time) time.Time {
	t = t.AddDate(d.years, d.months, d.days)

	return t.Add(time.Duration(d.hours)*time.Hour +
		time.Duration(d.minutes)*time.Minute +
		time.Duration(d.seconds)*time.Second +
		time.Duration(d.nanos))
}

func (d Delta) SubtractFrom(t time.Time) time.Time {
	return d.Negated().AddTo(t)
}

// Add combines two deltas unit by unit.
func (d Delta) Add(other Delta) Delta {
	return Delta{
		years:   d.years + other.years,
		months:  d.months + other.months,
		days:    d.days + other.days,
		hours:   d.hours + other.hours,
		minutes: d.minutes + other.minutes,
		seconds: d.seconds + other.seconds,
		nanos:   d.nanos + other.nanos,
	}
}

func (d Delta) Negated() Delta {
	return Delta{
		years:   -d.years,
		months:  -d.months,
		days:    -d.days,
		hours:   -d.hours,
		minutes: -d.minutes,
		seconds: -d.seconds,
		nanos:   -d.nanos,
	}
}

// Normalized carries overflowing components into the next larger unit.
// Days are never carried into months since that ratio is not fixed.
func (d Delta) Normalized() Delta {
	n := d

	carry(&n.nanos, &n.seconds, int(time.Second))
	carry(&n.seconds, &n.minutes, 60)
	carry(&n.minutes, &n.hours, 60)
	carry(&n.hours, &n.days, 24)
	carry(&n.months, &n.years, 12)

	return n
}

func carry(from, to *int, ratio int) {
	*to += *from / ratio
	*from %= ratio
}

func (d Delta) IsZero() bool {
	return Compare(d, Delta{}) == 0
}

// Compare orders two deltas by their normalized components, largest unit
// first. A calendar offset has no single absolute magnitude, so this
// component ordering is the only total order available.
func Compare(lhs, rhs Delta) int {
	l, r := lhs.Normalized(), rhs.Normalized()

	pairs := [][2]int{
		{l.years, r.years},
		{l.months, r.months},
		{l.days, r.days},
		{l.hours, r.hours},
		{l.minutes, r.minutes},
		{l.seconds, r.seconds},
		{l.nanos, r.nanos},
	}

	for _, p := range pairs {
		if p[0] < p[1] {
			return -1
		}
		if p[0] > p[1] {
			return 1
		}
	}

	return 0
}

func (d Delta) String() string {
	var b strings.Builder

	write := func(count int, unit Unit) {
		if count != 0 {
			b.WriteString(strconv.Itoa(count))
			b.WriteString(string(unit))
		}
	}

	write(d.years, Year)
	write(d.months, Month)
	write(d.days, Day)
	write(d.hours, Hour)
	write(d.minutes, Minute)
	write(d.seconds, Second)
	write(d.nanos, Nano)

	if b.Len() == 0 {
		return "0s"
	}

	return b.String()
}
