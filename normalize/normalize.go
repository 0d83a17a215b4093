// Package normalize turns free-form date-time text into canonical instants.
package normalize

import (
	"time"

	"github.com/araddon/dateparse"

	"github.com/goto/timerange/internal/errors"
)

const EntityNormalize = "normalize"

// Normalizer converts a date-time string into an instant. Implementations
// must fail with an invalid argument error when the text cannot be
// interpreted, and should apply hint, when non-nil, as the zone for text
// that carries no offset of its own.
type Normalizer interface {
	Normalize(value string, hint *time.Location) (time.Time, error)
}

// Parser is the default Normalizer. It accepts the common date-time
// layouts as well as numeric epoch values.
type Parser struct{}

func (Parser) Normalize(value string, hint *time.Location) (time.Time, error) {
	if hint == nil {
		t, err := dateparse.ParseAny(value)
		if err != nil {
			return time.Time{}, errors.InvalidArgument(EntityNormalize, "unable to parse date-time "+value+": "+err.Error())
		}
		return t, nil
	}

	t, err := dateparse.ParseIn(value, hint)
	if err != nil {
		return time.Time{}, errors.InvalidArgument(EntityNormalize, "unable to parse date-time "+value+": "+err.Error())
	}

	return t.In(hint), nil
}
