package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCumulative(t *testing.T) {
	steps := []Step{
		{Label: "2025-01-03", Points: map[string]int{"ann": 6, "bart": -2, "chris": -2, "dirk": -2}},
		{Label: "2025-01-10", Points: map[string]int{"ann": -3, "bart": 3, "chris": 3, "dirk": -3}},
		{Label: "2025-01-17", Points: map[string]int{"chris": 12, "dirk": -12}},
	}

	chart := Cumulative(table, steps)

	assert.Equal(t, []string{"2025-01-03", "2025-01-10", "2025-01-17"}, chart.Labels)
	require.Len(t, chart.Series, 4)
	assert.Equal(t, PlayerSeries{PlayerID: "ann", Values: []int{6, 3, 3}}, chart.Series[0])
	assert.Equal(t, PlayerSeries{PlayerID: "bart", Values: []int{-2, 1, 1}}, chart.Series[1])
	assert.Equal(t, PlayerSeries{PlayerID: "chris", Values: []int{-2, 1, 13}}, chart.Series[2])
	assert.Equal(t, PlayerSeries{PlayerID: "dirk", Values: []int{-2, -5, -17}}, chart.Series[3])
	assert.Equal(t, map[string]int{"ann": 3, "bart": 1, "chris": 13, "dirk": -17}, chart.Final())
}

func TestCumulative_InactivePlayerKeepsPreviousValue(t *testing.T) {
	steps := []Step{
		{Label: "1", Points: map[string]int{"ann": 6, "bart": -6}},
		{Label: "2", Points: map[string]int{"bart": 4, "chris": -4}},
		{Label: "3", Points: nil},
	}

	chart := Cumulative([]string{"ann"}, steps)

	require.Len(t, chart.Series, 1)
	assert.Equal(t, []int{6, 6, 6}, chart.Series[0].Values)
}

func TestCumulative_Empty(t *testing.T) {
	chart := Cumulative(table, nil)

	assert.Empty(t, chart.Labels)
	require.Len(t, chart.Series, 4)
	for _, s := range chart.Series {
		assert.Empty(t, s.Values)
	}
	assert.Equal(t, map[string]int{"ann": 0, "bart": 0, "chris": 0, "dirk": 0}, chart.Final())
}

func TestCumulative_Restartable(t *testing.T) {
	steps := []Step{{Label: "1", Points: map[string]int{"ann": 2, "bart": -2}}}

	first := Cumulative(table, steps)
	second := Cumulative(table, steps)

	assert.Equal(t, first, second)
	assert.Equal(t, map[string]int{"ann": 2, "bart": -2}, steps[0].Points)
}

func TestSessionSteps(t *testing.T) {
	overview := Aggregate(
		[]string{"new", "old"},
		table,
		[]RoundRecord{
			{ID: "r1", SessionID: "old", Number: 1, Bid: BidSingle},
			{ID: "r2", SessionID: "new", Number: 1, Bid: BidSingle},
		},
		[]ScoreRecord{
			{RoundID: "r1", PlayerID: "ann", Points: 6},
			{RoundID: "r2", PlayerID: "ann", Points: -9},
		},
	)

	steps := SessionSteps(overview, []SessionLabel{
		{SessionID: "old", Label: "2025-02-01"},
		{SessionID: "new", Label: "2025-02-08"},
		{SessionID: "unknown", Label: "2025-02-15"},
	})
	chart := Cumulative([]string{"ann"}, steps)

	assert.Equal(t, []string{"2025-02-01", "2025-02-08", "2025-02-15"}, chart.Labels)
	assert.Equal(t, []int{6, -3, -3}, chart.Series[0].Values)
}

func TestRoundSteps(t *testing.T) {
	rounds := []RoundPoints{
		{RoundID: "a", Number: 1, Points: map[string]int{"ann": 6}},
		{RoundID: "b", Number: 2, Points: map[string]int{"ann": -2}},
	}

	steps := RoundSteps(rounds)

	require.Len(t, steps, 2)
	assert.Equal(t, "1", steps[0].Label)
	assert.Equal(t, "2", steps[1].Label)
	assert.Equal(t, []int{6, 4}, Cumulative([]string{"ann"}, steps).Series[0].Values)
}
