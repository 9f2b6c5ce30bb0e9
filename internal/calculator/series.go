package calculator

import "strconv"

// Step is one chronological unit (a session or a round) and the points each
// player gained in it.
type Step struct {
	Label  string
	Points map[string]int
}

// PlayerSeries is a player's running total after each step.
type PlayerSeries struct {
	PlayerID string
	Values   []int
}

// Chart is the cumulative view over a list of steps.
type Chart struct {
	Labels []string
	Series []PlayerSeries
}

// Cumulative builds one running-sum series per player, in playerIDs order.
// Entry i of a series is the player's total over steps 0..i; a player absent
// from a step contributes 0 for it. Steps must already be oldest first.
func Cumulative(playerIDs []string, steps []Step) Chart {
	chart := Chart{
		Labels: make([]string, len(steps)),
		Series: make([]PlayerSeries, len(playerIDs)),
	}
	for i, p := range playerIDs {
		chart.Series[i] = PlayerSeries{PlayerID: p, Values: make([]int, len(steps))}
	}

	for i, step := range steps {
		chart.Labels[i] = step.Label
		for j := range chart.Series {
			s := &chart.Series[j]
			prev := 0
			if i > 0 {
				prev = s.Values[i-1]
			}
			s.Values[i] = prev + step.Points[s.PlayerID]
		}
	}
	return chart
}

// SessionLabel pairs a session id with its chart label, usually its date.
type SessionLabel struct {
	SessionID string
	Label     string
}

// SessionSteps turns an overview into steps in the given chronological
// order. Sessions missing from the overview yield an empty step.
func SessionSteps(overview Overview, sessions []SessionLabel) []Step {
	steps := make([]Step, len(sessions))
	for i, s := range sessions {
		steps[i] = Step{Label: s.Label}
		if summary, ok := overview.Session(s.SessionID); ok {
			steps[i].Points = summary.Totals
		}
	}
	return steps
}

// RoundSteps turns folded rounds into steps labelled by round number.
func RoundSteps(rounds []RoundPoints) []Step {
	steps := make([]Step, len(rounds))
	for i, r := range rounds {
		steps[i] = Step{Label: strconv.Itoa(r.Number), Points: r.Points}
	}
	return steps
}

// Final returns each player's last cumulative value.
func (c Chart) Final() map[string]int {
	out := make(map[string]int, len(c.Series))
	for _, s := range c.Series {
		if n := len(s.Values); n > 0 {
			out[s.PlayerID] = s.Values[n-1]
		} else {
			out[s.PlayerID] = 0
		}
	}
	return out
}
