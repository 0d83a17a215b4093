package cron

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/goto/timerange/internal/errors"
)

const EntitySchedule = "schedule"

type ScheduleSpec struct {
	schedule cron.Schedule
}

func ParseCronSchedule(interval string) (*ScheduleSpec, error) {
	schedule, err := cron.ParseStandard(interval)
	if err != nil {
		return nil, errors.InvalidArgument(EntitySchedule, "unable to parse schedule "+interval+": "+err.Error())
	}

	return &ScheduleSpec{schedule: schedule}, nil
}

func (s *ScheduleSpec) Next(t time.Time) time.Time {
	return s.schedule.Next(t)
}

// Prev returns the latest activation strictly before t. The underlying
// parser only exposes Next, so the search walks back by the observed
// activation period until an activation lands before t.
//
// Expressions that parse but never fire, like a February 31st schedule,
// make Next report the zero time. Those are rejected here instead of
// being searched for.
func (s *ScheduleSpec) Prev(t time.Time) (time.Time, error) {
	n1 := s.schedule.Next(t)
	n2 := s.schedule.Next(n1)
	if n1.IsZero() || n2.IsZero() {
		return time.Time{}, errors.InvalidArgument(EntitySchedule, "schedule has no activation after "+t.Format(time.RFC3339))
	}
	period := n2.Sub(n1)

	back := t.Add(-period)
	for !s.schedule.Next(back).Before(t) {
		back = back.Add(-period)
	}

	prev := s.schedule.Next(back)
	for {
		next := s.schedule.Next(prev)
		if !next.Before(t) {
			return prev, nil
		}
		prev = next
	}
}
