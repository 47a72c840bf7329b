package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportFixture() *Snapshot {
	return newSnapshot().
		customer(1, 2).
		dish(1, 10, true).
		dish(2, 5, true).
		order(1, day(2024, time.March, 5), 2, 1).
		line(1, 1, 2, 10).
		order(2, day(2024, time.July, 1), 0, 2).
		line(2, 2, 4, 5).
		order(3, day(2023, time.December, 31), 1, 1).
		line(3, 1, 1, 10).
		build()
}

func TestReport(t *testing.T) {
	report := reportFixture().Report(2024)

	assert.Equal(t, 2024, report.Year)
	assert.Equal(t, 2, report.Orders)
	assert.InDelta(t, 42.0, report.TotalProfit, 1e-9)

	require.Len(t, report.MonthlyProfit, 12)
	assert.Equal(t, 1, report.MonthlyProfit[0].Month)
	assert.InDelta(t, 22.0, report.MonthlyProfit[2].Profit, 1e-9)
	assert.InDelta(t, 20.0, report.MonthlyProfit[6].Profit, 1e-9)

	require.Len(t, report.CumulativeProfit, 12)
	assert.Equal(t, 12, report.CumulativeProfit[0].Month)
	assert.InDelta(t, 42.0, report.CumulativeProfit[0].Profit, 1e-9)

	assert.Equal(t, []int{2}, report.TopSpenders)
	require.NotNil(t, report.MostOrderedDish)
	assert.Equal(t, 2, report.MostOrderedDish.ID)
}

func TestReportEmptyYear(t *testing.T) {
	report := reportFixture().Report(2025)

	assert.Zero(t, report.Orders)
	assert.Zero(t, report.TotalProfit)
	assert.Nil(t, report.MostOrderedDish)
	for _, entry := range report.CumulativeProfit {
		assert.Zero(t, entry.Profit)
	}
}

func TestEngineYearReport(t *testing.T) {
	source := &staticSource{snap: reportFixture()}
	engine := NewEngine(source, nil)

	_, err := engine.YearReport(context.Background(), 0)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Zero(t, source.loads)

	report, err := engine.YearReport(context.Background(), 2023)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Orders)
	assert.InDelta(t, 11.0, report.TotalProfit, 1e-9)
	assert.Equal(t, 1, source.loads)
}
