package dates_test

import (
	"testing"
	"time"

	"github.com/alwazw/manus-erp/internal/utils/dates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	got, err := dates.Parse("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestParse_Invalid(t *testing.T) {
	cases := []string{"", "2024-13-01", "2024-06-32", "06/01/2024", "not-a-date", "2024-6-1"}
	for _, in := range cases {
		_, err := dates.Parse(in)
		assert.ErrorIs(t, err, dates.ErrInvalidDate, "input %q", in)
	}
}

func TestOnOrBefore(t *testing.T) {
	asOf := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	assert.True(t, dates.OnOrBefore(asOf, asOf))
	assert.True(t, dates.OnOrBefore(asOf.AddDate(0, 0, -1), asOf))
	assert.False(t, dates.OnOrBefore(asOf.AddDate(0, 0, 1), asOf))
}

func TestInRange_InclusiveBounds(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	assert.True(t, dates.InRange(start, start, end))
	assert.True(t, dates.InRange(end, start, end))
	assert.True(t, dates.InRange(start.AddDate(0, 6, 0), start, end))
	// One day outside either bound is excluded.
	assert.False(t, dates.InRange(start.AddDate(0, 0, -1), start, end))
	assert.False(t, dates.InRange(end.AddDate(0, 0, 1), start, end))
}
