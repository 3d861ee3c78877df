package stripeapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindow(t *testing.T) {
	window, err := ParseWindow("2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), window.From)
	assert.Equal(t, time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC), window.Until)
}

func TestParseWindowRejectsBadDates(t *testing.T) {
	_, err := ParseWindow("01/01/2024", "2024-01-31")
	assert.Error(t, err)
	_, err = ParseWindow("2024-01-01", "yesterday")
	assert.Error(t, err)
}

func TestWindowContains(t *testing.T) {
	window, err := ParseWindow("2024-01-01", "2024-01-31")
	require.NoError(t, err)

	assert.True(t, window.Contains(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, window.Contains(time.Date(2024, 1, 15, 12, 30, 0, 0, time.UTC)))
	assert.True(t, window.Contains(time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, window.Contains(time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, window.Contains(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
}
