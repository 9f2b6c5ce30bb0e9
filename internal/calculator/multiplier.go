package calculator

// Multipliers are the independent table events that amplify a round.
type Multipliers struct {
	Pass       bool // everybody passed once: x2
	SecondPass bool // everybody passed twice: x4
	FullRound  bool // all thirteen tricks: x2
}

// Factor returns the product of the toggled factors, at least 1.
func (m Multipliers) Factor() int {
	f := 1
	if m.Pass {
		f *= 2
	}
	if m.SecondPass {
		f *= 4
	}
	if m.FullRound {
		f *= 2
	}
	return f
}

// normalizeMultiplier coerces non-positive multipliers to 1.
func normalizeMultiplier(m int) int {
	if m < 1 {
		return 1
	}
	return m
}
