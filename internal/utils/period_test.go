package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodFor(t *testing.T) {
	assert.Equal(t, "2026-01", PeriodFor(time.Date(2026, time.January, 31, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, "2026-09", PeriodFor(time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)))
}

func TestCurrentPeriodMatchesNow(t *testing.T) {
	assert.Equal(t, PeriodFor(time.Now()), CurrentPeriod())
}
