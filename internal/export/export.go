// Package export renders a group's session history as a flat grid, one row
// per session, and writes it as tab-separated text or an xlsx workbook.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Player is a grid column owner.
type Player struct {
	ID   string
	Name string
}

// Round is one round slot of a session row.
type Round struct {
	Bid        string
	Overtricks int
	Multiplier int

	// Points by player id. Players without a score get an empty cell.
	Points map[string]int
}

// Session is one grid row. Rounds must be ordered by round number.
type Session struct {
	Date   string
	Title  string
	Rounds []Round
}

// Grid builds the header row and one row per session, in the given order.
// Every row has the same width; slots past a session's last round are empty.
func Grid(players []Player, sessions []Session) [][]string {
	slots := 0
	for _, s := range sessions {
		slots = max(slots, len(s.Rounds))
	}
	perSlot := 3 + len(players)
	width := 3 + slots*perSlot

	header := make([]string, 0, width)
	header = append(header, "date", "title", "rounds")
	for k := 1; k <= slots; k++ {
		header = append(header,
			fmt.Sprintf("r%d_bid", k),
			fmt.Sprintf("r%d_overtricks", k),
			fmt.Sprintf("r%d_multiplier", k),
		)
		for _, p := range players {
			header = append(header, fmt.Sprintf("r%d_%s", k, p.Name))
		}
	}

	grid := [][]string{header}
	for _, s := range sessions {
		row := make([]string, width)
		row[0] = s.Date
		row[1] = s.Title
		row[2] = strconv.Itoa(len(s.Rounds))
		for k, r := range s.Rounds {
			col := 3 + k*perSlot
			row[col] = r.Bid
			row[col+1] = strconv.Itoa(r.Overtricks)
			row[col+2] = strconv.Itoa(r.Multiplier)
			for j, p := range players {
				if pts, ok := r.Points[p.ID]; ok {
					row[col+3+j] = strconv.Itoa(pts)
				}
			}
		}
		grid = append(grid, row)
	}
	return grid
}

// fieldCleaner turns separators inside a field into spaces.
var fieldCleaner = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ", "\t", " ")

// WriteTSV writes the grid with tab separated fields and newline records.
// Fields are written as is, without quoting.
func WriteTSV(w io.Writer, grid [][]string) error {
	for _, row := range grid {
		fields := make([]string, len(row))
		for i, f := range row {
			fields[i] = fieldCleaner.Replace(f)
		}
		if _, err := io.WriteString(w, strings.Join(fields, "\t")+"\n"); err != nil {
			return fmt.Errorf("failed to write tsv: %w", err)
		}
	}
	return nil
}
