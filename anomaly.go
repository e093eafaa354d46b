package main

import "go.uber.org/zap"

// squadRef addresses one squad on the board: a color (or the shadow stack)
// inside one zone.
type squadRef struct {
	zone  int
	color string
}

// movableSquads lists every (zone, color) with ordinary cards present. The
// bare captain is not a card and never qualifies; neither do shadow tokens.
func (g *Game) movableSquads() []squadRef {
	var refs []squadRef
	for i := range g.zones {
		for _, c := range factions {
			if c == blue && g.rules.BlueDistinct {
				if len(g.zones[i].BlueValues) > 0 {
					refs = append(refs, squadRef{i, blue})
				}
				continue
			}
			if g.zones[i].Counts[c] > 0 {
				refs = append(refs, squadRef{i, c})
			}
		}
	}
	return refs
}

// applySwapSpiral exchanges two uniformly chosen positions of the domination
// cycle.
func (g *Game) applySwapSpiral() {
	i := g.rng.Intn(len(g.spiral))
	j, ok := pickOther(g.rng, len(g.spiral), i)
	if !ok {
		return
	}
	g.spiral[i], g.spiral[j] = g.spiral[j], g.spiral[i]
	g.logEvent("spiral swapped", zap.Strings("spiral", g.spiral))
}

// applyWormhole relocates one entire squad to a different zone. The captain
// stays put; only ordinary red cards travel.
func (g *Game) applyWormhole() {
	squads := g.movableSquads()
	if len(squads) == 0 {
		return
	}
	ref := squads[g.rng.Intn(len(squads))]
	dst, ok := pickOther(g.rng, len(g.zones), ref.zone)
	if !ok {
		return
	}
	src := g.zones[ref.zone]
	if ref.color == blue && g.rules.BlueDistinct {
		g.zones[dst].BlueValues = append(g.zones[dst].BlueValues, src.BlueValues...)
		src.BlueValues = nil
	} else {
		cnt := src.Counts[ref.color]
		delete(src.Counts, ref.color)
		g.zones[dst].Counts[ref.color] += cnt
	}
	g.logEvent("wormhole",
		zap.String("color", ref.color), zap.Int("from", ref.zone), zap.Int("to", dst))
}

// applyBlackHole destroys one entire squad. Shadow stacks are valid targets;
// the bare captain is not, and a red squad loses only its ordinary cards.
func (g *Game) applyBlackHole() {
	targets := g.movableSquads()
	for i, z := range g.zones {
		if z.Shadows > 0 {
			targets = append(targets, squadRef{i, shadowTarget})
		}
	}
	if len(targets) == 0 {
		return
	}
	ref := targets[g.rng.Intn(len(targets))]
	z := g.zones[ref.zone]
	switch {
	case ref.color == shadowTarget:
		g.shadowDiscard += z.Shadows
		z.Shadows = 0
	case ref.color == blue && g.rules.BlueDistinct:
		for _, v := range z.BlueValues {
			g.discard = append(g.discard, blueCard(v))
		}
		z.BlueValues = nil
	default:
		cnt := z.Counts[ref.color]
		for k := 0; k < cnt; k++ {
			g.discard = append(g.discard, colorCard(ref.color))
		}
		delete(z.Counts, ref.color)
	}
	g.logEvent("black hole",
		zap.String("target", ref.color), zap.Int("zone", ref.zone))
}

// applyResetDiscard shuffles every discarded faction card back into the deck.
// Spent anomaly cards stay out, and shadow-discard markers never return.
func (g *Game) applyResetDiscard() {
	var keep []Card
	returned := 0
	for _, c := range g.discard {
		if c.isAnomaly() {
			keep = append(keep, c)
			continue
		}
		g.deck = append(g.deck, c)
		returned++
	}
	g.discard = keep
	shuffleCards(g.rng, g.deck)
	g.logEvent("discard reset", zap.Int("returned", returned))
}

// applyExtraTurn grants the current player the next turn.
func (g *Game) applyExtraTurn(current int) {
	g.turnQ = append([]int{current}, g.turnQ...)
	g.logEvent("extra turn", zap.Int("player", current))
}

// playAnomaly applies one anomaly card from a hand and discards it.
func (g *Game) playAnomaly(player int, name string) {
	switch name {
	case anomSwapSpiral:
		g.applySwapSpiral()
	case anomWormhole:
		g.applyWormhole()
	case anomBlackHole:
		g.applyBlackHole()
	case anomResetDiscard:
		g.applyResetDiscard()
	case anomExtraTurn:
		g.applyExtraTurn(player)
	}
	g.hands[player].remove(anomalyCard(name))
	g.discard = append(g.discard, anomalyCard(name))
}
