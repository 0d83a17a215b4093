package timerange

import (
	"github.com/goto/timerange/internal/errors"
)

// String renders both endpoints joined by the separator, using NaT for an
// absent endpoint, and appends the elapsed duration when enabled and both
// endpoints are set.
func (tr *TimeRange) String() string {
	text := tr.StartString() + tr.separator + tr.EndString()

	if tr.showElapsed && tr.IsSet() {
		text += " (" + tr.end.Sub(*tr.start).String() + ")"
	}

	return text
}

// StartString renders the start endpoint with the start layout, or NaT
// when the endpoint is absent.
func (tr *TimeRange) StartString() string {
	if tr.start == nil || tr.startLayout == "" {
		return NotATimeStr
	}

	return tr.start.Format(tr.startLayout)
}

// EndString renders the end endpoint with the end layout, or NaT when the
// endpoint is absent.
func (tr *TimeRange) EndString() string {
	if tr.end == nil || tr.endLayout == "" {
		return NotATimeStr
	}

	return tr.end.Format(tr.endLayout)
}

func (tr *TimeRange) StartLayout() string {
	return tr.startLayout
}

func (tr *TimeRange) EndLayout() string {
	return tr.endLayout
}

// SetStartLayout rejects an empty layout so a set endpoint always has a
// usable render format.
func (tr *TimeRange) SetStartLayout(layout string) error {
	if layout == "" {
		return errors.FailedPrecondition(EntityTimeRange, "start layout must not be empty")
	}

	tr.startLayout = layout
	return nil
}

// SetEndLayout rejects an empty layout.
func (tr *TimeRange) SetEndLayout(layout string) error {
	if layout == "" {
		return errors.FailedPrecondition(EntityTimeRange, "end layout must not be empty")
	}

	tr.endLayout = layout
	return nil
}

func (tr *TimeRange) Separator() string {
	return tr.separator
}

func (tr *TimeRange) SetSeparator(separator string) {
	tr.separator = separator
}

func (tr *TimeRange) ShowElapsed() bool {
	return tr.showElapsed
}

func (tr *TimeRange) SetShowElapsed(show bool) {
	tr.showElapsed = show
}
