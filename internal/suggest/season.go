package suggest

import (
	"time"

	"github.com/alexanderramin/mountainflow/internal/domain"
)

// SeasonForMonth maps a calendar month to its season bucket. Only the
// month matters: no hemisphere, year, or timezone logic is applied.
func SeasonForMonth(m time.Month) domain.Season {
	switch m {
	case time.December, time.January, time.February:
		return domain.SeasonWinter
	case time.March, time.April, time.May:
		return domain.SeasonSpring
	case time.June, time.July, time.August:
		return domain.SeasonSummer
	default:
		return domain.SeasonAutumn
	}
}

// Resolver reports the season for the current date.
type Resolver struct {
	Now func() time.Time
}

// NewResolver returns a Resolver on the wall clock (local time).
func NewResolver() Resolver {
	return Resolver{Now: time.Now}
}

func (r Resolver) Current() domain.Season {
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	return SeasonForMonth(now().Month())
}
