// Package timerange models a closed time interval bounded by a start and
// an end instant, and provides comparison, arithmetic, set-like and
// formatting operations over it.
//
// Either endpoint may be absent (NaT, "not a time"), and a range may be
// inverted (start after end); only order-sensitive operations reject such
// ranges. The type is a mutable value and is not safe for concurrent
// mutation.
package timerange

import (
	"fmt"
	"time"

	"github.com/goto/timerange/delta"
	"github.com/goto/timerange/internal/errors"
	"github.com/goto/timerange/normalize"
)

const EntityTimeRange = "timerange"

const (
	// DefaultLayout renders an endpoint as ISO-8601 with a numeric offset.
	DefaultLayout = "2006-01-02T15:04:05Z0700"

	// NotATimeStr is rendered in place of an absent endpoint.
	NotATimeStr = "NaT"

	DefaultSeparator = " - "
)

type endpointKind int

const (
	kindNaT endpointKind = iota
	kindTime
	kindText
)

// Endpoint is a single boundary value for a range: an instant, a piece of
// date-time text still to be normalized, or absent. The zero value is NaT.
type Endpoint struct {
	kind endpointKind
	t    time.Time
	text string
}

// Time wraps an instant as an endpoint.
func Time(t time.Time) Endpoint {
	return Endpoint{kind: kindTime, t: t}
}

// Text wraps date-time text as an endpoint. The text is resolved through
// the range's normalizer when the endpoint is assigned.
func Text(s string) Endpoint {
	return Endpoint{kind: kindText, text: s}
}

// NaT is the absent endpoint.
func NaT() Endpoint {
	return Endpoint{}
}

// TimeRange is a closed interval between two optional instants.
type TimeRange struct {
	start *time.Time
	end   *time.Time

	startLayout string
	endLayout   string
	separator   string
	showElapsed bool

	loc        *time.Location
	normalizer normalize.Normalizer
}

type Option func(*TimeRange)

// WithLayout sets the render layout for both endpoints.
func WithLayout(layout string) Option {
	return func(tr *TimeRange) {
		tr.startLayout = layout
		tr.endLayout = layout
	}
}

func WithStartLayout(layout string) Option {
	return func(tr *TimeRange) { tr.startLayout = layout }
}

func WithEndLayout(layout string) Option {
	return func(tr *TimeRange) { tr.endLayout = layout }
}

// WithLocation makes endpoint assignment interpret or convert values in
// the given zone.
func WithLocation(loc *time.Location) Option {
	return func(tr *TimeRange) { tr.loc = loc }
}

func WithSeparator(separator string) Option {
	return func(tr *TimeRange) { tr.separator = separator }
}

// WithShowElapsed appends the elapsed duration when rendering a set range.
func WithShowElapsed(show bool) Option {
	return func(tr *TimeRange) { tr.showElapsed = show }
}

// WithNormalizer replaces the default date-time text parser.
func WithNormalizer(n normalize.Normalizer) Option {
	return func(tr *TimeRange) { tr.normalizer = n }
}

// New builds a range from two endpoints. Text endpoints are normalized
// once, here; an unparsable text endpoint fails the construction.
func New(start, end Endpoint, opts ...Option) (*TimeRange, error) {
	tr := &TimeRange{
		startLayout: DefaultLayout,
		endLayout:   DefaultLayout,
		separator:   DefaultSeparator,
		normalizer:  normalize.Parser{},
	}

	for _, opt := range opts {
		opt(tr)
	}

	if err := tr.SetRange(start, end); err != nil {
		return nil, err
	}

	return tr, nil
}

func (tr *TimeRange) resolve(e Endpoint, loc *time.Location) (*time.Time, error) {
	switch e.kind {
	case kindTime:
		t := e.t
		if loc != nil {
			t = t.In(loc)
		}
		return &t, nil
	case kindText:
		t, err := tr.normalizer.Normalize(e.text, loc)
		if err != nil {
			return nil, errors.Wrap(EntityTimeRange, "unable to normalize "+e.text, err)
		}
		return &t, nil
	}

	return nil, nil
}

// SetStart assigns the start endpoint. The new value is never checked
// against the current end; ordering is only enforced by Validate.
func (tr *TimeRange) SetStart(e Endpoint) error {
	t, err := tr.resolve(e, tr.loc)
	if err != nil {
		return err
	}

	tr.start = t
	return nil
}

// SetEnd assigns the end endpoint.
func (tr *TimeRange) SetEnd(e Endpoint) error {
	t, err := tr.resolve(e, tr.loc)
	if err != nil {
		return err
	}

	tr.end = t
	return nil
}

// SetRange assigns both endpoints. Both values are resolved before either
// is assigned, so a failure leaves the range untouched.
func (tr *TimeRange) SetRange(start, end Endpoint) error {
	s, err := tr.resolve(start, tr.loc)
	if err != nil {
		return err
	}

	e, err := tr.resolve(end, tr.loc)
	if err != nil {
		return err
	}

	tr.start, tr.end = s, e
	return nil
}

// Start returns the start instant; ok is false when the endpoint is NaT.
func (tr *TimeRange) Start() (time.Time, bool) {
	if tr.start == nil {
		return time.Time{}, false
	}
	return *tr.start, true
}

// End returns the end instant; ok is false when the endpoint is NaT.
func (tr *TimeRange) End() (time.Time, bool) {
	if tr.end == nil {
		return time.Time{}, false
	}
	return *tr.end, true
}

// Location returns the zone of the range, taken from the first set
// endpoint, or nil for an unset range.
func (tr *TimeRange) Location() *time.Location {
	if tr.start != nil {
		return tr.start.Location()
	}
	if tr.end != nil {
		return tr.end.Location()
	}
	return nil
}

// IsSet reports whether both endpoints are present.
func (tr *TimeRange) IsSet() bool {
	return tr.start != nil && tr.end != nil
}

// Validate fails when either endpoint is absent, when the endpoints carry
// mismatching zones, or when the range is inverted. A forward or
// zero-length range passes.
func (tr *TimeRange) Validate() error {
	if !tr.IsSet() {
		return errors.FailedPrecondition(EntityTimeRange, "both start and end must be set")
	}

	if !sameZone(*tr.start, *tr.end) {
		return errors.InvalidArgument(EntityTimeRange, fmt.Sprintf(
			"timezone mismatch: start=%s, end=%s", tr.start.Location(), tr.end.Location()))
	}

	if tr.start.After(*tr.end) {
		return errors.InvalidArgument(EntityTimeRange, fmt.Sprintf(
			"time inversion found: %s > %s", tr.start.Format(time.RFC3339), tr.end.Format(time.RFC3339)))
	}

	return nil
}

// IsValid reports whether Validate would pass.
func (tr *TimeRange) IsValid() bool {
	return tr.IsSet() && sameZone(*tr.start, *tr.end) && !tr.start.After(*tr.end)
}

// Endpoints agree when they share a location, or when their UTC offsets
// match at their respective instants. A range spanning a DST transition
// within one location therefore stays valid.
func sameZone(a, b time.Time) bool {
	if a.Location() == b.Location() {
		return true
	}

	_, aOffset := a.Zone()
	_, bOffset := b.Zone()
	return aOffset == bOffset
}

// Contains reports whether t lies within the closed interval. Validation
// failures on the range propagate instead of returning false.
func (tr *TimeRange) Contains(t time.Time) (bool, error) {
	if err := tr.Validate(); err != nil {
		return false, err
	}

	return between(t, tr), nil
}

// ContainsText normalizes the text and reports whether the resulting
// instant lies within the range.
func (tr *TimeRange) ContainsText(s string) (bool, error) {
	t, err := tr.normalizer.Normalize(s, nil)
	if err != nil {
		return false, errors.Wrap(EntityTimeRange, "unable to normalize "+s, err)
	}

	return tr.Contains(t)
}

// ContainsRange reports whether x is a sub-interval of the range, bounds
// included. Both ranges must pass validation.
func (tr *TimeRange) ContainsRange(x *TimeRange) (bool, error) {
	if err := tr.Validate(); err != nil {
		return false, err
	}
	if err := x.Validate(); err != nil {
		return false, err
	}

	return !x.start.Before(*tr.start) && !x.end.After(*tr.end), nil
}

func between(t time.Time, tr *TimeRange) bool {
	return !t.Before(*tr.start) && !t.After(*tr.end)
}

// Equal compares endpoints only; layouts, separator and display flags are
// not part of identity. Absent endpoints equal each other.
func (tr *TimeRange) Equal(x *TimeRange) bool {
	if x == nil {
		return false
	}

	return equalEndpoint(tr.start, x.start) && equalEndpoint(tr.end, x.end)
}

func equalEndpoint(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// Duration returns end minus start. An inverted range yields a negative
// duration without error; an unset endpoint is a precondition failure.
func (tr *TimeRange) Duration() (time.Duration, error) {
	if tr.start == nil {
		return 0, errors.FailedPrecondition(EntityTimeRange, "start must be set")
	}
	if tr.end == nil {
		return 0, errors.FailedPrecondition(EntityTimeRange, "end must be set")
	}

	return tr.end.Sub(*tr.start), nil
}

// DurationSeconds returns the duration as a signed seconds count.
func (tr *TimeRange) DurationSeconds() (float64, error) {
	d, err := tr.Duration()
	if err != nil {
		return 0, err
	}

	return d.Seconds(), nil
}

// Shift returns a copy with each present endpoint moved by d. An absent
// endpoint stays absent. Shifting backwards is Shift(d.Negated()).
func (tr *TimeRange) Shift(d delta.Delta) (*TimeRange, error) {
	if tr.start == nil && tr.end == nil {
		return nil, errors.FailedPrecondition(EntityTimeRange, "range is not set")
	}

	out := tr.Clone()
	shiftEndpoints(out, d)
	return out, nil
}

// ShiftInPlace moves the endpoints of the range itself.
func (tr *TimeRange) ShiftInPlace(d delta.Delta) error {
	if tr.start == nil && tr.end == nil {
		return errors.FailedPrecondition(EntityTimeRange, "range is not set")
	}

	shiftEndpoints(tr, d)
	return nil
}

func shiftEndpoints(tr *TimeRange, d delta.Delta) {
	if tr.start != nil {
		s := d.AddTo(*tr.start)
		tr.start = &s
	}
	if tr.end != nil {
		e := d.AddTo(*tr.end)
		tr.end = &e
	}
}

// Truncate discards percentage/2 percent of the total duration from each
// side of the range, in place.
func (tr *TimeRange) Truncate(percentage float64) error {
	if err := tr.Validate(); err != nil {
		return err
	}

	if percentage < 0 {
		return errors.InvalidArgument(EntityTimeRange, fmt.Sprintf(
			"percentage must be greater or equal to zero: %v", percentage))
	}

	if percentage == 0 {
		return nil
	}

	total, err := tr.Duration()
	if err != nil {
		return err
	}

	discard := total / 100 * time.Duration(percentage/2)
	s := tr.start.Add(discard)
	e := tr.end.Add(-discard)
	tr.start, tr.end = &s, &e

	return nil
}

// Clone returns a fresh copy sharing no state with the original.
func (tr *TimeRange) Clone() *TimeRange {
	out := *tr

	if tr.start != nil {
		s := *tr.start
		out.start = &s
	}
	if tr.end != nil {
		e := *tr.end
		out.end = &e
	}

	return &out
}

// derived builds a copy of tr holding the given endpoints, inheriting its
// layouts and display settings.
func (tr *TimeRange) derived(start, end time.Time) *TimeRange {
	out := tr.Clone()
	s, e := start, end
	out.start, out.end = &s, &e
	return out
}
