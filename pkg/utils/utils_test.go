package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 33.33, RoundWithTwoDecimalPlace(33.3333))
	assert.Equal(t, 66.67, RoundWithTwoDecimalPlace(66.666))
	assert.Equal(t, 1.01, RoundWithTwoDecimalPlace(1.005))
	assert.Equal(t, -2.5, RoundWithTwoDecimalPlace(-2.499))
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name          string
		year, month   int
		n             int
		expectedYear  int
		expectedMonth int
	}{
		{name: "Mês anterior no mesmo ano", year: 2026, month: 5, n: -1, expectedYear: 2026, expectedMonth: 4},
		{name: "Janeiro volta para dezembro", year: 2027, month: 1, n: -1, expectedYear: 2026, expectedMonth: 12},
		{name: "Dezembro avança para janeiro", year: 2026, month: 12, n: 1, expectedYear: 2027, expectedMonth: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			year, month := AddMonths(tt.year, tt.month, tt.n)
			assert.Equal(t, tt.expectedYear, year)
			assert.Equal(t, tt.expectedMonth, month)
		})
	}
}

func TestReferencePeriod(t *testing.T) {
	year, month := ReferencePeriod(time.Date(2026, time.October, 16, 10, 0, 0, 0, time.UTC))
	assert.Equal(t, 2026, year)
	assert.Equal(t, 10, month)
}

func TestNewRevision(t *testing.T) {
	first, err := NewRevision()
	assert.NoError(t, err)
	assert.Len(t, first, 12)
	assert.Regexp(t, "^[0-9a-z]+$", first)

	second, err := NewRevision()
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestPrettyJson(t *testing.T) {
	assert.Equal(t, "{\n\t\"a\": 1\n}", PrettyJson(map[string]int{"a": 1}))
}
