package main

// reinforceChoice is one reinforcement-phase decision: deploy the captain, or
// commit one card from hand into a zone.
type reinforceChoice struct {
	card    Card
	dst     int
	captain bool
	ok      bool
}

// relocation is one card moved between two zones. blueVal selects the blue
// card when blue is distinguishable (0 means top of the stack).
type relocation struct {
	src, dst int
	color    string
	blueVal  int
	ok       bool
}

// phase3Action is the movement-or-anomaly decision: exactly one of the two.
type phase3Action struct {
	anomaly     string
	playAnomaly bool
	move        relocation
}

type attackChoice struct {
	atk, def string
	ok       bool
}

// Tactician decides every phase for one player. Implementations are pure
// functions of the game state plus its rng; the orchestrator applies the
// choices. One implementation per faction, plus a uniform-random one for the
// non-tactical variants.
type Tactician interface {
	ClashCard(g *Game, p int) (Card, bool)
	Reinforce(g *Game, p int) reinforceChoice
	MoveOrAnomaly(g *Game, p int) phase3Action
	Attack(g *Game, p int) attackChoice
}

func tacticianFor(faction string, tactical bool) Tactician {
	if !tactical {
		return randomTactics{}
	}
	switch faction {
	case red:
		return redTactics{}
	case green:
		return greenTactics{}
	case yellow:
		return yellowTactics{}
	case blue:
		return blueTactics{}
	case purple:
		return purpleTactics{}
	}
	return randomTactics{}
}

// canWinFight applies the assault rule inside one zone: strict size advantage
// or domination. Shadow stacks have no color, so they are never dominated.
func (g *Game) canWinFight(zoneIdx int, atk, def string) bool {
	atkSz := g.squadSize(zoneIdx, atk)
	var defSz int
	if def == shadowTarget {
		defSz = g.zones[zoneIdx].Shadows
	} else {
		defSz = g.squadSize(zoneIdx, def)
	}
	if atkSz > defSz {
		return true
	}
	return def != shadowTarget && beats(atk, def, g.spiral)
}

// findBlueBestAdd picks the held value that moves a blue sum closest to the
// target without overshooting. An exact hit wins outright.
func findBlueBestAdd(target, sum int, vals []int) (int, bool) {
	best, bestSum, found := 0, -1, false
	for _, v := range vals {
		s := sum + v
		if s == target {
			return v, true
		}
		if s < target && s > bestSum {
			best, bestSum, found = v, s, true
		}
	}
	return best, found
}

// clashPriorityCard is the shared clash reveal heuristic: blue progress toward
// the target sum in the player's own zone, then green, then yellow while
// coverage is open, then purple with live targets at home, then red, then
// whatever faction card is left. Anomalies are never revealed.
func clashPriorityCard(g *Game, p int) (Card, bool) {
	hand := g.hands[p]
	if hand.size() == 0 {
		return Card{}, false
	}
	if g.rules.BlueDistinct {
		if vals := hand.blueValuesHeld(); len(vals) > 0 {
			if v, ok := findBlueBestAdd(g.cfg.BlueTarget, g.zoneBlueSum(p), vals); ok {
				return blueCard(v), true
			}
		}
	}
	if hand[colorCard(green)] > 0 {
		return colorCard(green), true
	}
	if hand[colorCard(yellow)] > 0 && !g.yellowCoverage() {
		return colorCard(yellow), true
	}
	if hand[colorCard(purple)] > 0 && purpleHasHomeTargets(g, p) {
		return colorCard(purple), true
	}
	if hand[colorCard(red)] > 0 {
		return colorCard(red), true
	}
	if vals := hand.blueValuesHeld(); len(vals) > 0 {
		return blueCard(vals[0]), true
	}
	for _, c := range factions {
		if hand[colorCard(c)] > 0 {
			return colorCard(c), true
		}
	}
	return Card{}, false
}

// purpleHasHomeTargets reports whether the player's own zone holds any
// non-purple card a purple squad could later attack. The bare captain and
// shadow tokens do not count.
func purpleHasHomeTargets(g *Game, p int) bool {
	z := g.zones[p]
	for _, c := range factions {
		if c == purple {
			continue
		}
		if c == blue && g.rules.BlueDistinct {
			if len(z.BlueValues) > 0 {
				return true
			}
			continue
		}
		if z.Counts[c] > 0 {
			return true
		}
	}
	return false
}

func anyGreenStack(g *Game, n int) bool {
	for _, z := range g.zones {
		if z.Counts[green] >= n {
			return true
		}
	}
	return false
}

func anyBlueDangerZone(g *Game) bool {
	for i := range g.zones {
		if g.cfg.blueDanger(g.zoneBlueSum(i)) {
			return true
		}
	}
	return false
}

// ownDiscardCount counts the player's own faction cards sitting in discard.
func ownDiscardCount(g *Game, p int) int {
	mine := g.players[p]
	n := 0
	for _, c := range g.discard {
		if c.Color == mine {
			n++
		}
	}
	return n
}

// tacticalAnomaly runs the fixed anomaly priority: black hole when an
// opposing instant win looks imminent, then wormhole and spiral swap on
// weighted coins, then discard reset once enough own cards are buried, then
// the extra turn whenever held.
func tacticalAnomaly(g *Game, p int) (string, bool) {
	hand := g.hands[p]
	has := func(name string) bool { return hand[anomalyCard(name)] > 0 }

	if has(anomBlackHole) {
		if anyGreenStack(g, g.cfg.GreenInstant) || anyGreenStack(g, g.cfg.GreenNearWin) ||
			g.yellowCoverage() || anyBlueDangerZone(g) {
			return anomBlackHole, true
		}
	}
	if has(anomWormhole) && chance(g.rng, g.cfg.WormholeChance) {
		return anomWormhole, true
	}
	if has(anomSwapSpiral) && chance(g.rng, g.cfg.SpiralSwapChance) {
		return anomSwapSpiral, true
	}
	if has(anomResetDiscard) && ownDiscardCount(g, p) >= g.cfg.ResetDiscardMin && len(g.deck) > 0 {
		return anomResetDiscard, true
	}
	if has(anomExtraTurn) {
		return anomExtraTurn, true
	}
	return "", false
}

func tacticalPhase3(g *Game, p int, relocate func(*Game, int) relocation) phase3Action {
	if name, ok := tacticalAnomaly(g, p); ok {
		return phase3Action{anomaly: name, playAnomaly: true}
	}
	return phase3Action{move: relocate(g, p)}
}

// tacticalAttack picks an attacker/defender pair in the player's own zone:
// first deny an imminent opposing instant win, then hit the global leader,
// then any winning attack that spares the player's own faction if possible.
func tacticalAttack(g *Game, p int) attackChoice {
	type pair struct{ atk, def string }
	var candidates []pair
	for _, atk := range factions {
		if g.squadSize(p, atk) == 0 {
			continue
		}
		for _, def := range factions {
			if def == atk || g.squadSize(p, def) == 0 {
				continue
			}
			candidates = append(candidates, pair{atk, def})
		}
	}
	if len(candidates) == 0 {
		return attackChoice{}
	}

	z := g.zones[p]
	for _, c := range candidates {
		if c.def == green && z.Counts[green] >= g.cfg.GreenNearWin && g.canWinFight(p, c.atk, c.def) {
			return attackChoice{c.atk, c.def, true}
		}
	}
	for _, c := range candidates {
		if c.def == yellow && z.Counts[yellow] == 1 && g.canWinFight(p, c.atk, c.def) {
			return attackChoice{c.atk, c.def, true}
		}
	}
	for _, c := range candidates {
		if c.def == blue && g.cfg.blueDanger(g.zoneBlueSum(p)) && g.canWinFight(p, c.atk, c.def) {
			return attackChoice{c.atk, c.def, true}
		}
	}

	totals := g.factionTotals()
	leader, best := "", -1
	for _, f := range factions {
		if totals[f] > best {
			leader, best = f, totals[f]
		}
	}
	mine := g.players[p]
	if leader != mine {
		for _, c := range candidates {
			if c.def == leader && g.canWinFight(p, c.atk, c.def) {
				return attackChoice{c.atk, c.def, true}
			}
		}
	}

	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for _, c := range candidates {
		if c.def != mine && g.canWinFight(p, c.atk, c.def) {
			return attackChoice{c.atk, c.def, true}
		}
	}
	for _, c := range candidates {
		if g.canWinFight(p, c.atk, c.def) {
			return attackChoice{c.atk, c.def, true}
		}
	}
	return attackChoice{}
}

// reinforceFallback commits any held faction card into the player's own zone.
func reinforceFallback(g *Game, p int) reinforceChoice {
	hand := g.hands[p]
	for _, c := range []string{green, yellow, purple, red} {
		if hand[colorCard(c)] > 0 {
			return reinforceChoice{card: colorCard(c), dst: p, ok: true}
		}
	}
	if g.rules.BlueDistinct {
		if vals := hand.blueValuesHeld(); len(vals) > 0 {
			return reinforceChoice{card: blueCard(vals[0]), dst: p, ok: true}
		}
	} else if hand[colorCard(blue)] > 0 {
		return reinforceChoice{card: colorCard(blue), dst: p, ok: true}
	}
	return reinforceChoice{}
}

// ---- red

type redTactics struct{}

func (redTactics) ClashCard(g *Game, p int) (Card, bool) { return clashPriorityCard(g, p) }

// Reinforce deploys the captain early on a weighted coin, into the zone with
// the strongest red presence.
func (redTactics) Reinforce(g *Game, p int) reinforceChoice {
	if g.rules.Captain && g.captainOwner == p && g.captainLoc < 0 &&
		chance(g.rng, g.cfg.CaptainDeployChance) {
		best, bestSz := p, g.squadSize(p, red)
		for i := range g.zones {
			if sz := g.squadSize(i, red); sz > bestSz {
				best, bestSz = i, sz
			}
		}
		return reinforceChoice{dst: best, captain: true, ok: true}
	}
	return reinforceFallback(g, p)
}

func (redTactics) MoveOrAnomaly(g *Game, p int) phase3Action {
	return tacticalPhase3(g, p, func(*Game, int) relocation { return relocation{} })
}

func (redTactics) Attack(g *Game, p int) attackChoice { return tacticalAttack(g, p) }

// ---- green

type greenTactics struct{}

func (greenTactics) ClashCard(g *Game, p int) (Card, bool) { return clashPriorityCard(g, p) }

func (greenTactics) Reinforce(g *Game, p int) reinforceChoice {
	if g.hands[p][colorCard(green)] > 0 {
		return reinforceChoice{card: colorCard(green), dst: p, ok: true}
	}
	return reinforceFallback(g, p)
}

// green consolidates: pull one green from anywhere into the home stack.
func (greenTactics) MoveOrAnomaly(g *Game, p int) phase3Action {
	return tacticalPhase3(g, p, func(g *Game, p int) relocation {
		for i := range g.zones {
			if i != p && g.zones[i].Counts[green] > 0 {
				return relocation{src: i, dst: p, color: green, ok: true}
			}
		}
		return relocation{}
	})
}

func (greenTactics) Attack(g *Game, p int) attackChoice { return tacticalAttack(g, p) }

// ---- yellow

type yellowTactics struct{}

func (yellowTactics) ClashCard(g *Game, p int) (Card, bool) { return clashPriorityCard(g, p) }

// Reinforce builds coverage first, then stacks toward the instant-win total.
func (yellowTactics) Reinforce(g *Game, p int) reinforceChoice {
	if g.hands[p][colorCard(yellow)] > 0 {
		if !g.yellowCoverage() {
			for i, z := range g.zones {
				if z.Counts[yellow] < 1 {
					return reinforceChoice{card: colorCard(yellow), dst: i, ok: true}
				}
			}
		}
		return reinforceChoice{card: colorCard(yellow), dst: p, ok: true}
	}
	return reinforceFallback(g, p)
}

func (yellowTactics) MoveOrAnomaly(g *Game, p int) phase3Action {
	return tacticalPhase3(g, p, func(g *Game, p int) relocation {
		if g.yellowCoverage() {
			return relocation{}
		}
		src, dst := -1, -1
		for i, z := range g.zones {
			if src < 0 && z.Counts[yellow] >= 2 {
				src = i
			}
			if dst < 0 && z.Counts[yellow] < 1 {
				dst = i
			}
		}
		if src >= 0 && dst >= 0 && src != dst {
			return relocation{src: src, dst: dst, color: yellow, ok: true}
		}
		return relocation{}
	})
}

func (yellowTactics) Attack(g *Game, p int) attackChoice { return tacticalAttack(g, p) }

// ---- blue

type blueTactics struct{}

func (blueTactics) ClashCard(g *Game, p int) (Card, bool) { return clashPriorityCard(g, p) }

// Reinforce plays the value with the best progress toward the target sum,
// preferring the player's own zone.
func (blueTactics) Reinforce(g *Game, p int) reinforceChoice {
	vals := g.hands[p].blueValuesHeld()
	if len(vals) > 0 {
		if v, ok := findBlueBestAdd(g.cfg.BlueTarget, g.zoneBlueSum(p), vals); ok {
			return reinforceChoice{card: blueCard(v), dst: p, ok: true}
		}
		bestSum, bestDst, bestVal := -1, -1, 0
		for i := range g.zones {
			s := g.zoneBlueSum(i)
			v, ok := findBlueBestAdd(g.cfg.BlueTarget, s, vals)
			if !ok {
				continue
			}
			if s+v == g.cfg.BlueTarget {
				return reinforceChoice{card: blueCard(v), dst: i, ok: true}
			}
			if s+v > bestSum {
				bestSum, bestDst, bestVal = s+v, i, v
			}
		}
		if bestDst >= 0 {
			return reinforceChoice{card: blueCard(bestVal), dst: bestDst, ok: true}
		}
	}
	return reinforceFallback(g, p)
}

// blue shifts a card between zones when that raises some zone's sum without
// overshooting the target.
func (blueTactics) MoveOrAnomaly(g *Game, p int) phase3Action {
	return tacticalPhase3(g, p, func(g *Game, p int) relocation {
		best, move, found := -1, relocation{}, false
		for i, z := range g.zones {
			if len(z.BlueValues) == 0 {
				continue
			}
			val := z.BlueValues[len(z.BlueValues)-1]
			for j := range g.zones {
				if i == j {
					continue
				}
				newSum := g.zoneBlueSum(j) + val
				score := -1
				if newSum <= g.cfg.BlueTarget {
					score = newSum
				}
				if !found || score > best {
					best = score
					move = relocation{src: i, dst: j, color: blue, blueVal: val, ok: true}
					found = true
				}
			}
		}
		return move
	})
}

func (blueTactics) Attack(g *Game, p int) attackChoice { return tacticalAttack(g, p) }

// ---- purple

type purpleTactics struct{}

func (purpleTactics) ClashCard(g *Game, p int) (Card, bool) { return clashPriorityCard(g, p) }

// Reinforce lands purple where the most attackable cards sit.
func (purpleTactics) Reinforce(g *Game, p int) reinforceChoice {
	if g.hands[p][colorCard(purple)] > 0 {
		bestDst, bestTargets := p, -1
		for i, z := range g.zones {
			targets := z.Counts[red] + z.Counts[green] + z.Counts[yellow] + len(z.BlueValues)
			if !g.rules.BlueDistinct {
				targets += z.Counts[blue]
			}
			if targets > bestTargets {
				bestDst, bestTargets = i, targets
			}
		}
		return reinforceChoice{card: colorCard(purple), dst: bestDst, ok: true}
	}
	return reinforceFallback(g, p)
}

// purple drags a victim into its own zone.
func (purpleTactics) MoveOrAnomaly(g *Game, p int) phase3Action {
	return tacticalPhase3(g, p, func(g *Game, p int) relocation {
		for _, color := range []string{green, yellow} {
			for i := range g.zones {
				if i != p && g.zones[i].Counts[color] > 0 {
					return relocation{src: i, dst: p, color: color, ok: true}
				}
			}
		}
		for i := range g.zones {
			if i != p && len(g.zones[i].BlueValues) > 0 {
				return relocation{src: i, dst: p, color: blue, ok: true}
			}
		}
		return relocation{}
	})
}

func (purpleTactics) Attack(g *Game, p int) attackChoice { return tacticalAttack(g, p) }

// ---- uniform random (baseline and epic variants)

type randomTactics struct{}

func (randomTactics) ClashCard(g *Game, p int) (Card, bool) {
	opts := factionCardOptions(g.hands[p])
	if len(opts) == 0 {
		return Card{}, false
	}
	return opts[g.rng.Intn(len(opts))], true
}

func (randomTactics) Reinforce(g *Game, p int) reinforceChoice {
	if g.rules.Captain && g.captainOwner == p && g.captainLoc < 0 &&
		chance(g.rng, g.cfg.EpicCaptainChance) {
		return reinforceChoice{dst: p, captain: true, ok: true}
	}
	opts := factionCardOptions(g.hands[p])
	if len(opts) == 0 {
		return reinforceChoice{}
	}
	return reinforceChoice{
		card: opts[g.rng.Intn(len(opts))],
		dst:  g.rng.Intn(len(g.zones)),
		ok:   true,
	}
}

func (randomTactics) MoveOrAnomaly(g *Game, p int) phase3Action {
	if chance(g.rng, g.cfg.RandomAnomalyChance) {
		held := g.hands[p].anomaliesHeld()
		if len(held) == 0 {
			return phase3Action{}
		}
		return phase3Action{anomaly: held[g.rng.Intn(len(held))], playAnomaly: true}
	}
	squads := g.movableSquads()
	if len(squads) == 0 {
		return phase3Action{}
	}
	ref := squads[g.rng.Intn(len(squads))]
	// Destination drawn over all zones; landing on the source wastes the move.
	dst := g.rng.Intn(len(g.zones))
	if dst == ref.zone {
		return phase3Action{}
	}
	m := relocation{src: ref.zone, dst: dst, color: ref.color, ok: true}
	if ref.color == blue && g.rules.BlueDistinct {
		vals := g.zones[ref.zone].BlueValues
		m.blueVal = vals[g.rng.Intn(len(vals))]
	}
	return phase3Action{move: m}
}

func (randomTactics) Attack(g *Game, p int) attackChoice {
	var attackers []string
	for _, c := range factions {
		if g.squadSize(p, c) > 0 {
			attackers = append(attackers, c)
		}
	}
	if len(attackers) == 0 {
		return attackChoice{}
	}
	atk := attackers[g.rng.Intn(len(attackers))]

	var targets []string
	for _, c := range factions {
		if c != atk && g.squadSize(p, c) > 0 {
			targets = append(targets, c)
		}
	}
	if g.zones[p].Shadows > 0 && atk != purple {
		targets = append(targets, shadowTarget)
	}
	if len(targets) == 0 {
		return attackChoice{}
	}
	return attackChoice{atk, targets[g.rng.Intn(len(targets))], true}
}

// factionCardOptions lists the distinct faction cards in a hand, in a stable
// order so draws depend only on the rng stream.
func factionCardOptions(h Hand) []Card {
	var opts []Card
	for _, c := range factions {
		if h[colorCard(c)] > 0 {
			opts = append(opts, colorCard(c))
		}
	}
	for _, v := range h.blueValuesHeld() {
		opts = append(opts, blueCard(v))
	}
	// Deduplicate repeated blue values.
	var out []Card
	seen := make(map[Card]bool)
	for _, c := range opts {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
