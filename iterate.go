package timerange

import (
	"time"

	"github.com/goto/timerange/delta"
	"github.com/goto/timerange/internal/errors"
)

// Iterator walks the instants of a range from start towards end, bounds
// included, advancing by a fixed step on each pull. It is single-pass and
// holds its own cursor; independent iterators over the same range do not
// interfere.
type Iterator struct {
	current    time.Time
	end        time.Time
	step       delta.Delta
	descending bool
}

// Range returns an iterator over the range with the given step. A forward
// range requires a positive step and an inverted range a negative one;
// a zero step is always rejected. The start instant is always produced
// first, even when a single step overshoots the end.
func (tr *TimeRange) Range(step delta.Delta) (*Iterator, error) {
	cmp := delta.Compare(step, delta.Delta{})
	if cmp == 0 {
		return nil, errors.InvalidArgument(EntityTimeRange, "step must be not zero")
	}

	inverted := false
	if err := tr.Validate(); err != nil {
		// Only a pure inversion switches the direction; unset endpoints
		// and zone mismatches still fail.
		if !tr.IsSet() || !sameZone(*tr.start, *tr.end) {
			return nil, err
		}
		inverted = true
	}

	if !inverted && cmp < 0 {
		return nil, errors.InvalidArgument(EntityTimeRange, "invalid step: expect greater than 0, actual="+step.String())
	}
	if inverted && cmp > 0 {
		return nil, errors.InvalidArgument(EntityTimeRange, "invalid step: expect less than 0, actual="+step.String())
	}

	return &Iterator{
		current:    *tr.start,
		end:        *tr.end,
		step:       step,
		descending: inverted,
	}, nil
}

// Next returns the instant under the cursor and advances it. It returns
// false once the cursor has crossed the end of the range.
func (it *Iterator) Next() (time.Time, bool) {
	if it.descending {
		if it.current.Before(it.end) {
			return time.Time{}, false
		}
	} else if it.current.After(it.end) {
		return time.Time{}, false
	}

	t := it.current
	it.current = it.step.AddTo(it.current)
	return t, true
}
