package timerange

import (
	"time"

	"github.com/goto/timerange/delta"
	"github.com/goto/timerange/internal/errors"
)

// Intersection returns the overlap of the two ranges as a new range. When
// the ranges do not overlap, the result has both endpoints absent. Neither
// operand is mutated; the result inherits the receiver's layouts.
func (tr *TimeRange) Intersection(x *TimeRange) (*TimeRange, error) {
	return tr.intersect(x, nil)
}

// IntersectionWithThreshold behaves like Intersection but discards an
// overlap strictly shorter than threshold, replacing it with an unset
// result.
func (tr *TimeRange) IntersectionWithThreshold(x *TimeRange, threshold delta.Delta) (*TimeRange, error) {
	return tr.intersect(x, &threshold)
}

func (tr *TimeRange) intersect(x *TimeRange, threshold *delta.Delta) (*TimeRange, error) {
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	if err := x.Validate(); err != nil {
		return nil, err
	}

	out := tr.Clone()
	out.start, out.end = nil, nil

	// The ranges overlap iff either start lies within the other range.
	// On full overlap both checks fire; max(starts)/min(ends) is correct
	// either way.
	if between(*x.start, tr) || between(*tr.start, x) {
		s := maxTime(*tr.start, *x.start)
		e := minTime(*tr.end, *x.end)
		out.start, out.end = &s, &e
	}

	if threshold != nil && out.IsSet() {
		overlap := delta.FromDuration(out.end.Sub(*out.start))
		if delta.Compare(overlap, *threshold) < 0 {
			out.start, out.end = nil, nil
		}
	}

	return out, nil
}

// Overlaps reports whether the two ranges share any instant.
func (tr *TimeRange) Overlaps(x *TimeRange) (bool, error) {
	in, err := tr.Intersection(x)
	if err != nil {
		return false, err
	}

	return in.IsSet(), nil
}

// OverlapsWithThreshold reports whether the two ranges share an overlap of
// at least the given length.
func (tr *TimeRange) OverlapsWithThreshold(x *TimeRange, threshold delta.Delta) (bool, error) {
	in, err := tr.IntersectionWithThreshold(x, threshold)
	if err != nil {
		return false, err
	}

	return in.IsSet(), nil
}

// Encompass returns the smallest range containing both operands.
func (tr *TimeRange) Encompass(x *TimeRange) (*TimeRange, error) {
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	if err := x.Validate(); err != nil {
		return nil, err
	}

	return tr.derived(minTime(*tr.start, *x.start), maxTime(*tr.end, *x.end)), nil
}

// Subtract removes x from the range and returns what is left: the
// untouched range when there is no overlap, nothing when x covers the
// whole range, one remainder when x covers either end, and two remainders
// when x is interior.
func (tr *TimeRange) Subtract(x *TimeRange) ([]*TimeRange, error) {
	overlap, err := tr.Intersection(x)
	if err != nil {
		return nil, err
	}

	if !overlap.IsSet() {
		return []*TimeRange{tr.Clone()}, nil
	}
	if d, err := overlap.Duration(); err != nil || d <= 0 {
		return []*TimeRange{tr.Clone()}, nil
	}

	if overlap.start.Equal(*tr.start) && overlap.end.Equal(*tr.end) {
		return []*TimeRange{}, nil
	}

	if overlap.start.Equal(*tr.start) {
		return []*TimeRange{tr.derived(*overlap.end, *tr.end)}, nil
	}

	if overlap.end.Equal(*tr.end) {
		return []*TimeRange{tr.derived(*tr.start, *overlap.start)}, nil
	}

	return []*TimeRange{
		tr.derived(*tr.start, *overlap.start),
		tr.derived(*overlap.end, *tr.end),
	}, nil
}

// Split cuts the range in two at the separator instant, which belongs to
// both halves. A separator outside the range or equal to either endpoint
// leaves the range whole.
func (tr *TimeRange) Split(separator Endpoint) ([]*TimeRange, error) {
	if err := tr.Validate(); err != nil {
		return nil, err
	}

	sep, err := tr.resolve(separator, nil)
	if err != nil {
		return nil, err
	}
	if sep == nil {
		return nil, errors.InvalidArgument(EntityTimeRange, "separator must be a valid instant")
	}

	if !between(*sep, tr) || sep.Equal(*tr.start) || sep.Equal(*tr.end) {
		return []*TimeRange{tr.Clone()}, nil
	}

	return []*TimeRange{
		tr.derived(*tr.start, *sep),
		tr.derived(*sep, *tr.end),
	}, nil
}

func minTime(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}

func maxTime(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}
