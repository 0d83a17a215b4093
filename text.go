package timerange

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/goto/timerange/internal/errors"
	"github.com/goto/timerange/internal/lib/cron"
)

var defaultTextSeparator = regexp.MustCompile(`\s+-\s+`)

// FromText builds a range from text holding two date-time values separated
// by " - ", for example "2021-01-23T10:00:00+0400 - 2021-01-23T10:10:00+0400".
func FromText(text string, opts ...Option) (*TimeRange, error) {
	return FromTextSeparator(text, defaultTextSeparator, opts...)
}

// FromTextSeparator builds a range from text split on the given separator
// pattern. The split must yield exactly two non-empty parts.
func FromTextSeparator(text string, separator *regexp.Regexp, opts ...Option) (*TimeRange, error) {
	parts := separator.Split(strings.TrimSpace(text), -1)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, errors.InvalidArgument(EntityTimeRange, fmt.Sprintf(
			"text should include two date-times separated by %q: got=%v", separator.String(), parts))
	}

	return New(Text(parts[0]), Text(parts[1]), opts...)
}

// FromSchedule builds the range between the two cron activations
// surrounding ref: the latest one strictly before it and the earliest one
// strictly after it. Expressions with no activations, like a February
// 31st schedule, fail with an invalid argument error.
func FromSchedule(expression string, ref time.Time, opts ...Option) (*TimeRange, error) {
	schedule, err := cron.ParseCronSchedule(expression)
	if err != nil {
		return nil, err
	}

	prev, err := schedule.Prev(ref)
	if err != nil {
		return nil, err
	}

	return New(Time(prev), Time(schedule.Next(ref)), opts...)
}
