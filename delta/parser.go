package delta

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/goto/timerange/internal/errors"
)

const EntityDelta = "delta"

var validationRegex = regexp.MustCompile(`^$|^None$|^-?\d+(ns|[smhdwMy])$`)

// From parses a count followed by a unit suffix, for example "4M" or "-90m".
// An empty string or "None" yields the zero delta.
func From(str string) (Delta, error) {
	if str == "" || strings.EqualFold(str, "None") {
		return Delta{}, nil
	}

	unitIndex := len(str) - 1
	if strings.HasSuffix(str, string(Nano)) {
		unitIndex = len(str) - 2
	}

	unit, err := UnitFrom(str[unitIndex:])
	if err != nil {
		return Delta{}, err
	}

	count, err := CountFrom(str[0:unitIndex])
	if err != nil {
		return Delta{}, err
	}

	return New(count, unit), nil
}

func Validate(str string) error {
	if !validationRegex.MatchString(str) {
		return errors.InvalidArgument(EntityDelta, "invalid string for delta "+str)
	}
	return nil
}

func UnitFrom(u string) (Unit, error) {
	switch u {
	case string(None):
		return None, nil
	case string(Nano):
		return Nano, nil
	case string(Second):
		return Second, nil
	case string(Minute):
		return Minute, nil
	case string(Hour):
		return Hour, nil
	case string(Day):
		return Day, nil
	case string(Week):
		return Week, nil
	case string(Month):
		return Month, nil
	case string(Year):
		return Year, nil
	default:
		return "", errors.InvalidArgument(EntityDelta, "invalid value for unit "+u+", accepted values are [ns,s,m,h,d,w,M,y]")
	}
}

func CountFrom(c string) (int, error) {
	v, err := strconv.Atoi(c)
	if err != nil {
		return 0, errors.InvalidArgument(EntityDelta, "invalid value: "+err.Error())
	}

	return v, nil
}
