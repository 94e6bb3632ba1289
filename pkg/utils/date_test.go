package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRange(t *testing.T) {
	from, to, err := ParseDateRange("2026-01-01", "2026-01-31")

	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), to)
}

func TestParseDateRange_DefaultsToLast30Days(t *testing.T) {
	from, to, err := ParseDateRange("", "")

	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), to, time.Second)
	assert.WithinDuration(t, time.Now().AddDate(0, 0, -30), from, time.Second)
}

func TestParseDateRange_InvalidDate(t *testing.T) {
	_, _, err := ParseDateRange("31/01/2026", "")

	assert.Error(t, err)
}
