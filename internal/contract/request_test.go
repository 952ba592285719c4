package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInsightsRequest_SetsTimeframe(t *testing.T) {
	req := NewInsightsRequest(TimeframeWeek)

	assert.Equal(t, TimeframeWeek, req.Timeframe)
	assert.Empty(t, req.From)
	assert.Empty(t, req.To)
	assert.Nil(t, req.Now)
}

func TestNewDashboardRequest_NoClockOverride(t *testing.T) {
	assert.Nil(t, NewDashboardRequest().Now)
}

func TestParseTimeframe(t *testing.T) {
	for _, s := range []string{"day", "week", "month", "all", "custom"} {
		tf, ok := ParseTimeframe(s)
		assert.True(t, ok, s)
		assert.Equal(t, Timeframe(s), tf)
	}
	_, ok := ParseTimeframe("year")
	assert.False(t, ok)
}

func TestInsightsError_Message(t *testing.T) {
	err := &InsightsError{Code: InsightsErrInvalidRange, Message: "from after to"}
	assert.Equal(t, "INVALID_RANGE: from after to", err.Error())
}
