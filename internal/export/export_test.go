package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var players = []Player{{ID: "p1", Name: "Ann"}, {ID: "p2", Name: "Bart"}}

var sessions = []Session{
	{
		Date:  "2025-01-09",
		Title: "Avond 2025-01-09",
		Rounds: []Round{
			{Bid: "SINGLE", Overtricks: 1, Multiplier: 1, Points: map[string]int{"p1": 27, "p2": -9}},
			{Bid: "ABUNDANCE", Multiplier: 2, Points: map[string]int{"p1": -12, "p2": 36}},
		},
	},
	{
		Date:  "2025-01-16",
		Title: "Kort",
		Rounds: []Round{
			{Bid: "DOUBLE", Multiplier: 1, Points: map[string]int{"p1": 2}},
		},
	},
}

func TestGrid(t *testing.T) {
	got := Grid(players, sessions)

	want := [][]string{
		{
			"date", "title", "rounds",
			"r1_bid", "r1_overtricks", "r1_multiplier", "r1_Ann", "r1_Bart",
			"r2_bid", "r2_overtricks", "r2_multiplier", "r2_Ann", "r2_Bart",
		},
		{
			"2025-01-09", "Avond 2025-01-09", "2",
			"SINGLE", "1", "1", "27", "-9",
			"ABUNDANCE", "0", "2", "-12", "36",
		},
		{
			"2025-01-16", "Kort", "1",
			"DOUBLE", "0", "1", "2", "",
			"", "", "", "", "",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Grid mismatch (-want +got):\n%s", diff)
	}
}

func TestGrid_NoSessions(t *testing.T) {
	got := Grid(players, nil)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"date", "title", "rounds"}, got[0])
}

func TestWriteTSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, Grid(players, sessions)))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "date\ttitle\trounds\tr1_bid"))
	assert.Equal(t, 13, len(strings.Split(lines[2], "\t")))
}

func TestWriteTSV_FieldsAreNotQuoted(t *testing.T) {
	grid := [][]string{
		{"date", "title", "rounds"},
		{"2025-01-09", `Avond "x"`, "0"},
		{"2025-01-16", "tab\there\r\nen\nregel", "0"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTSV(&buf, grid))

	want := "date\ttitle\trounds\n" +
		"2025-01-09\tAvond \"x\"\t0\n" +
		"2025-01-16\ttab here en regel\t0\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, Grid(players, sessions)))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "r1_Ann", rows[0][6])
	assert.Equal(t, "27", rows[1][6])

	v, err := f.GetCellValue(SheetName, "H2")
	require.NoError(t, err)
	assert.Equal(t, "-9", v)
}
