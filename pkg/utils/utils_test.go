package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 2.35, RoundWithTwoDecimalPlace(2.345))
	assert.Equal(t, 25.0, RoundWithTwoDecimalPlace(25.0001))
	assert.Equal(t, -1.23, RoundWithTwoDecimalPlace(-1.234))
}

func TestFormatters(t *testing.T) {
	assert.Equal(t, "R$ 25.00", FormatCurrency(25))
	assert.Equal(t, "R$ -5.50", FormatCurrency(-5.5))
	assert.Equal(t, "10.0 kg", FormatWeight(10))
	assert.Equal(t, "25.0%", FormatPercentage(25))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, date)

	date, err = ParseDate("2024-03-05")
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), *date)

	_, err = ParseDate("05/03/2024")
	assert.Error(t, err)
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, 6)
}

func TestLocalID(t *testing.T) {
	now := time.UnixMilli(1718000000123)
	assert.Equal(t, "1718000000123", LocalID(now))
}
