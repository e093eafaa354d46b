package main

import (
	"fmt"
	"math/rand"
)

// EquityResult is one Monte-Carlo equity estimate for the hero hand.
type EquityResult struct {
	Wins, Ties, Losses int
}

func (r EquityResult) Equity() float64 {
	n := r.Wins + r.Ties + r.Losses
	if n == 0 {
		return 0
	}
	return (float64(r.Wins) + 0.5*float64(r.Ties)) / float64(n)
}

// Estimate plays out the hand sims times: shuffle the residual deck, deal two
// cards to each opponent, complete the board to five, compare hero against
// the best opponent.
func Estimate(hero, board []Card, active, sims int, rng *rand.Rand) (EquityResult, error) {
	if len(hero) != 2 {
		return EquityResult{}, fmt.Errorf("hero must hold exactly 2 cards, got %d", len(hero))
	}
	if len(board) > 5 {
		return EquityResult{}, fmt.Errorf("board holds at most 5 cards, got %d", len(board))
	}
	if active < 2 {
		return EquityResult{}, fmt.Errorf("need at least 2 active players, got %d", active)
	}
	if sims <= 0 {
		return EquityResult{}, fmt.Errorf("simulation count %d must be positive", sims)
	}
	known := append(append([]Card{}, hero...), board...)
	seen := make(map[Card]bool)
	for _, c := range known {
		if seen[c] {
			return EquityResult{}, fmt.Errorf("duplicate card %s", c)
		}
		seen[c] = true
	}
	rest := residualDeck(known)
	opponents := active - 1
	if need := 2*opponents + (5 - len(board)); need > len(rest) {
		return EquityResult{}, fmt.Errorf("not enough cards for %d opponents", opponents)
	}

	var res EquityResult
	for s := 0; s < sims; s++ {
		rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })

		next := 0
		simBoard := append([]Card{}, board...)
		for len(simBoard) < 5 {
			simBoard = append(simBoard, rest[next])
			next++
		}

		heroRank := EvaluateBest(append(append([]Card{}, hero...), simBoard...))
		bestVillain := -1
		for o := 0; o < opponents; o++ {
			hole := rest[next : next+2]
			next += 2
			r := EvaluateBest(append(append([]Card{}, hole...), simBoard...))
			if bestVillain < 0 || r < bestVillain {
				bestVillain = r
			}
		}

		switch {
		case heroRank < bestVillain:
			res.Wins++
		case heroRank == bestVillain:
			res.Ties++
		default:
			res.Losses++
		}
	}
	return res, nil
}
