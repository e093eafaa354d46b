package main

import (
	"fmt"
	"math/rand"
)

// SimulationReport aggregates one batch run. Win probabilities are
// conditional: wins divided by the games the faction actually played in.
type SimulationReport struct {
	Mode           string
	Players        int
	Games          int
	Wins           map[string]int
	Participations map[string]int
}

func (r *SimulationReport) WinProbability(f string) float64 {
	if r.Participations[f] == 0 {
		return 0
	}
	return float64(r.Wins[f]) / float64(r.Participations[f])
}

type simTally struct {
	wins  map[string]int
	parts map[string]int
}

// RunSimulations plays the given number of independent games and tallies wins
// and participations per faction. Games are split across workers; every game
// is seeded from its own index so results do not depend on the worker count.
func RunSimulations(mode string, numPlayers, games int, seed int64, workers int, cfg *Tuning) (*SimulationReport, error) {
	if numPlayers < 2 || numPlayers > 5 {
		return nil, fmt.Errorf("player count %d out of range [2,5]", numPlayers)
	}
	if games <= 0 {
		return nil, fmt.Errorf("game count %d must be positive", games)
	}
	rules, err := rulesForMode(mode)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = defaultTuning()
	}
	if workers < 1 {
		workers = 1
	}
	if workers > games {
		workers = games
	}

	results := make(chan simTally, workers)
	per := games / workers
	rem := games % workers
	start := 0
	for w := 0; w < workers; w++ {
		count := per
		if w < rem {
			count++
		}
		go func(lo, hi int) {
			local := simTally{wins: make(map[string]int), parts: make(map[string]int)}
			for idx := lo; idx < hi; idx++ {
				rng := rand.New(rand.NewSource(seed + int64(idx)))
				g := newGame(numPlayers, rules, cfg, rng)
				g.verbose = idx == 0
				winner := g.playOneGame()
				local.wins[winner]++
				for _, f := range g.players {
					local.parts[f]++
				}
			}
			results <- local
		}(start, start+count)
		start += count
	}

	report := &SimulationReport{
		Mode:           mode,
		Players:        numPlayers,
		Games:          games,
		Wins:           make(map[string]int),
		Participations: make(map[string]int),
	}
	for w := 0; w < workers; w++ {
		local := <-results
		for f, n := range local.wins {
			report.Wins[f] += n
		}
		for f, n := range local.parts {
			report.Participations[f] += n
		}
	}
	return report, nil
}
