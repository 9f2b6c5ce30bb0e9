package calculator

// PlayersPerRound is the only table size the scorer supports.
const PlayersPerRound = 4

// RoundInput is everything the scorer needs for one round.
type RoundInput struct {
	// Players are the four player ids at the table.
	Players []string

	Bid BidKind

	// Winners are the ids of the declaring side that is paid. Duplicates are
	// collapsed.
	Winners []string

	// Overtricks scales formula bids; negative values are undertricks and
	// invert the payout. Ignored for fixed and misery bids.
	Overtricks int

	// Multiplier is coerced to at least 1.
	Multiplier int
}

// ScoreRound computes each player's signed point delta for a round.
//
// The result always has exactly four entries summing to zero. Failures are
// one of ErrInvalidPlayerCount, ErrUnknownBid, *WinnerCountError,
// ErrNoLosers, *DistributionError or *ZeroSumError; use Kind to classify.
func ScoreRound(in RoundInput) (map[string]int, error) {
	seated, err := seat(in.Players)
	if err != nil {
		return nil, err
	}

	bid, err := LookupBid(in.Bid)
	if err != nil {
		return nil, err
	}

	winners, err := pickWinners(bid, seated, in.Winners)
	if err != nil {
		return nil, err
	}

	losers := PlayersPerRound - len(winners)
	if losers <= 0 {
		return nil, ErrNoLosers
	}

	win, lose, err := payout(bid, len(winners), losers, in.Overtricks)
	if err != nil {
		return nil, err
	}

	mult := normalizeMultiplier(in.Multiplier)
	points := make(map[string]int, PlayersPerRound)
	sum := 0
	for _, p := range in.Players {
		amount := lose
		if winners[p] {
			amount = win
		}
		amount *= mult
		points[p] = amount
		sum += amount
	}

	if sum != 0 {
		return nil, &ZeroSumError{Sum: sum}
	}
	return points, nil
}

// seat checks the table has four distinct, non-empty ids.
func seat(players []string) (map[string]bool, error) {
	if len(players) != PlayersPerRound {
		return nil, ErrInvalidPlayerCount
	}
	seated := make(map[string]bool, PlayersPerRound)
	for _, p := range players {
		if p == "" || seated[p] {
			return nil, ErrInvalidPlayerCount
		}
		seated[p] = true
	}
	return seated, nil
}

func pickWinners(bid Bid, seated map[string]bool, ids []string) (map[string]bool, error) {
	winners := make(map[string]bool, len(ids))
	for _, id := range ids {
		if !seated[id] {
			return nil, &WinnerCountError{Bid: bid.Kind, Min: bid.MinWinners, Max: bid.MaxWinners, Got: len(ids), Stranger: id}
		}
		winners[id] = true
	}
	if n := len(winners); n < bid.MinWinners || n > bid.MaxWinners {
		return nil, &WinnerCountError{Bid: bid.Kind, Min: bid.MinWinners, Max: bid.MaxWinners, Got: n}
	}
	return winners, nil
}

// payout returns the per-winner and per-loser amounts before the multiplier.
func payout(bid Bid, winners, losers, overtricks int) (win, lose int, err error) {
	switch bid.Class {
	case ClassFormula:
		win = bid.Base + bid.Slope*abs(overtricks)
		if overtricks < 0 {
			win = -win
		}
		// Winners and losers hold the same total on each side.
		total := win * winners
		if total%losers != 0 {
			return 0, 0, &DistributionError{Bid: bid.Kind, WinnerAmount: win, Share: -float64(total) / float64(losers)}
		}
		return win, -total / losers, nil

	case ClassFixed:
		return bid.WinnerPoints, bid.LoserPoints, nil

	case ClassMisery:
		if bid.Pool%winners != 0 {
			return 0, 0, &DistributionError{Bid: bid.Kind, WinnerAmount: bid.Pool, Share: float64(bid.Pool) / float64(winners)}
		}
		if bid.Pool%losers != 0 {
			return 0, 0, &DistributionError{Bid: bid.Kind, WinnerAmount: bid.Pool / winners, Share: -float64(bid.Pool) / float64(losers)}
		}
		return bid.Pool / winners, -bid.Pool / losers, nil
	}
	return 0, 0, ErrUnknownBid
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
