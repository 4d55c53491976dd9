package utils

import (
	"time"

	"github.com/craftline/contentflow-api/internal/constants"
)

// CurrentPeriod returns the period key ("YYYY-MM") for the present month.
func CurrentPeriod() string {
	return time.Now().Format(constants.PeriodFormat)
}

// PeriodFor returns the period key for an arbitrary point in time.
func PeriodFor(t time.Time) string {
	return t.Format(constants.PeriodFormat)
}
