package main

import "go.uber.org/zap"

// runPhaseClash has every player reveal a card simultaneously. Cards of
// winning colors go to the contributing player's own zone, the rest to
// discard.
func (g *Game) runPhaseClash() {
	type clashPlay struct {
		player int
		card   Card
	}
	var plays []clashPlay
	for i := range g.hands {
		c, ok := g.tacticians[i].ClashCard(g, i)
		if !ok {
			continue
		}
		g.hands[i].remove(c)
		plays = append(plays, clashPlay{i, c})
	}
	if len(plays) == 0 {
		return
	}

	colors := make([]string, len(plays))
	for i, pl := range plays {
		colors[i] = pl.card.Color
	}
	winners := clashWinners(colors, g.spiral)
	winnerSet := make(map[string]bool)
	for _, w := range winners {
		winnerSet[w] = true
	}

	for _, pl := range plays {
		if winnerSet[pl.card.Color] {
			g.placeCard(pl.player, pl.card)
		} else {
			g.discard = append(g.discard, pl.card)
		}
	}
	g.logEvent("clash", zap.Strings("revealed", colors), zap.Strings("winners", winners))
}

// runPhaseReinforce lets the current player deploy the captain or commit one
// card into a zone.
func (g *Game) runPhaseReinforce(current int) {
	ch := g.tacticians[current].Reinforce(g, current)
	if !ch.ok {
		return
	}
	if ch.captain {
		if g.rules.Captain && g.captainOwner == current && g.captainLoc < 0 {
			g.captainLoc = ch.dst
			g.logEvent("captain deployed", zap.Int("zone", ch.dst))
		}
		return
	}
	g.hands[current].remove(ch.card)
	g.placeCard(ch.dst, ch.card)
	g.logEvent("reinforced",
		zap.Int("player", current), zap.String("card", ch.card.String()), zap.Int("zone", ch.dst))
}

// runPhaseMoveOrAnomaly plays one anomaly card or relocates one card,
// never both.
func (g *Game) runPhaseMoveOrAnomaly(current int) {
	act := g.tacticians[current].MoveOrAnomaly(g, current)
	if act.playAnomaly {
		g.logEvent("anomaly played", zap.Int("player", current), zap.String("anomaly", act.anomaly))
		g.playAnomaly(current, act.anomaly)
		return
	}
	if act.move.ok {
		g.moveCard(act.move.src, act.move.dst, act.move.color, act.move.blueVal)
		g.logEvent("relocated", zap.String("color", act.move.color),
			zap.Int("from", act.move.src), zap.Int("to", act.move.dst))
	}
}

// runPhaseAttack resolves one assault inside the current player's zone. A
// purple-owned kill converts the defender into a shadow token; the bare
// captain can never be the removed unit.
func (g *Game) runPhaseAttack(current int) {
	ch := g.tacticians[current].Attack(g, current)
	if !ch.ok {
		return
	}
	if !g.canWinFight(current, ch.atk, ch.def) {
		return
	}
	z := g.zones[current]
	if ch.def == shadowTarget {
		if z.Shadows > 0 {
			z.Shadows--
			g.shadowDiscard++
		}
		return
	}
	card, ok := g.removeOneFromZone(current, ch.def)
	if !ok {
		return
	}
	if g.rules.Shadows && g.players[current] == purple {
		z.Shadows++
	} else {
		g.discard = append(g.discard, card)
	}
	g.logEvent("attack", zap.Int("player", current),
		zap.String("attacker", ch.atk), zap.String("defender", ch.def))
}

// runPhaseRecover refills hands to the target size, current player first then
// clockwise. Reports who drew the last card when this refill empties the
// deck.
func (g *Game) runPhaseRecover(current int) (lastTaker int, emptied bool) {
	n := len(g.hands)
	lastTaker = -1
	for k := 0; k < n; k++ {
		i := (current + k) % n
		need := g.cfg.TargetHand - g.hands[i].size()
		for d := 0; d < need; d++ {
			if len(g.deck) == 0 {
				return lastTaker, true
			}
			c, _ := g.drawCard()
			g.hands[i].add(c)
			lastTaker = i
			if len(g.deck) == 0 {
				return lastTaker, true
			}
		}
	}
	return lastTaker, false
}

// advanceTurn closes the current turn and reports whether the game is over.
// When the deck empties, the player who drew the last card becomes the sole
// next queue entry and their turn is the last of the game.
func (g *Game) advanceTurn(current, lastTaker int, emptied bool) bool {
	if g.finalScheduled && current == g.finalPlayer {
		return true
	}
	if emptied && !g.finalScheduled && lastTaker >= 0 {
		g.finalScheduled = true
		g.finalPlayer = lastTaker
		g.turnQ = []int{lastTaker}
		g.logEvent("final turn scheduled", zap.Int("player", lastTaker))
		return false
	}
	head := g.turnQ[0]
	g.turnQ = append(g.turnQ[1:], head)

	if len(g.deck) == 0 {
		for _, h := range g.hands {
			if h.size() > 0 {
				return false
			}
		}
		return true
	}
	return false
}

// playOneGame runs turns until an instant win or the final-turn rule ends the
// game, then scores if needed. Instant wins are checked after every phase.
func (g *Game) playOneGame() string {
	for {
		current := g.turnQ[0]
		g.logEvent("turn start",
			zap.Int("player", current), zap.String("entity", g.players[current]),
			zap.Int("deck", len(g.deck)))

		g.runPhaseClash()
		if w, ok := g.instantWinner(); ok {
			g.logEvent("instant win", zap.String("winner", w))
			return w
		}
		g.runPhaseReinforce(current)
		if w, ok := g.instantWinner(); ok {
			g.logEvent("instant win", zap.String("winner", w))
			return w
		}
		g.runPhaseMoveOrAnomaly(current)
		if w, ok := g.instantWinner(); ok {
			g.logEvent("instant win", zap.String("winner", w))
			return w
		}
		g.runPhaseAttack(current)
		if w, ok := g.instantWinner(); ok {
			g.logEvent("instant win", zap.String("winner", w))
			return w
		}
		lastTaker, emptied := g.runPhaseRecover(current)
		if w, ok := g.instantWinner(); ok {
			g.logEvent("instant win", zap.String("winner", w))
			return w
		}

		if g.advanceTurn(current, lastTaker, emptied) {
			break
		}
	}
	w := g.scoreGame()
	g.logEvent("scored", zap.String("winner", w))
	return w
}
