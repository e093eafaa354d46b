package main

// Only factions assigned to a player can win, instantly or on points.
func (g *Game) isContender(f string) bool {
	for _, p := range g.players {
		if p == f {
			return true
		}
	}
	return false
}

func (g *Game) greenInstant() bool {
	for _, z := range g.zones {
		if z.Counts[green] >= g.cfg.GreenInstant {
			return true
		}
	}
	return false
}

func (g *Game) yellowInstant() bool {
	if !g.yellowCoverage() {
		return false
	}
	total := 0
	for _, z := range g.zones {
		total += z.Counts[yellow]
	}
	return total >= g.cfg.YellowInstant
}

func (g *Game) blueInstant() bool {
	if !g.rules.BlueDistinct {
		return false
	}
	for i, z := range g.zones {
		if len(z.BlueValues) > 0 && g.zoneBlueSum(i) == g.cfg.BlueTarget {
			return true
		}
	}
	return false
}

// instantWinner checks the three instant-win conditions in fixed order.
// Red and purple have none.
func (g *Game) instantWinner() (string, bool) {
	if !g.rules.InstantWins {
		return "", false
	}
	if g.isContender(green) && g.greenInstant() {
		return green, true
	}
	if g.isContender(yellow) && g.yellowInstant() {
		return yellow, true
	}
	if g.isContender(blue) && g.blueInstant() {
		return blue, true
	}
	return "", false
}

// tiebreakBySpiral picks the tied candidate that dominates every other tied
// candidate, if one exists.
func tiebreakBySpiral(cands []string, spiral []string) (string, bool) {
	for _, f := range cands {
		all := true
		for _, o := range cands {
			if f != o && !beats(f, o, spiral) {
				all = false
				break
			}
		}
		if all {
			return f, true
		}
	}
	return "", false
}

// scoreGame declares the end-of-game winner: highest total board presence
// among contenders, spiral tie-break, then a uniform draw.
func (g *Game) scoreGame() string {
	totals := g.factionTotals()

	best := -1
	for _, f := range g.players {
		if totals[f] > best {
			best = totals[f]
		}
	}
	var tied []string
	for _, f := range factions {
		if g.isContender(f) && totals[f] == best {
			tied = append(tied, f)
		}
	}
	if len(tied) == 1 {
		return tied[0]
	}
	if w, ok := tiebreakBySpiral(tied, g.spiral); ok {
		return w
	}
	return tied[g.rng.Intn(len(tied))]
}
