package httpapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	parsed, err := parseDate("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, time.March, parsed.Month())
	assert.Equal(t, 5, parsed.Day())

	_, err = parseDate("05.03.2024")
	assert.Error(t, err)
}

func TestParseOptionalDate(t *testing.T) {
	parsed, err := parseOptionalDate(nil)
	require.NoError(t, err)
	assert.Nil(t, parsed)

	value := "2024-03-05"
	parsed, err = parseOptionalDate(&value)
	require.NoError(t, err)
	require.NotNil(t, parsed)
	assert.Equal(t, "2024-03-05", parsed.Format("2006-01-02"))

	bad := "not-a-date"
	_, err = parseOptionalDate(&bad)
	assert.Error(t, err)
}
