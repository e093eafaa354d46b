package main

import (
	"math/rand"
	"testing"
)

func TestRunPhaseRecoverRefillOrder(t *testing.T) {
	g := testGame([]string{red, green, yellow}, tacticsRules(), 1)
	for i := 0; i < 5; i++ {
		g.deck = append(g.deck, colorCard(red))
	}

	lastTaker, emptied := g.runPhaseRecover(1)
	if !emptied {
		t.Fatal("five cards for nine needed, deck must empty")
	}
	if lastTaker != 2 {
		t.Errorf("last taker = %d, want 2", lastTaker)
	}
	if g.hands[1].size() != 4 || g.hands[2].size() != 1 || g.hands[0].size() != 0 {
		t.Errorf("hand sizes %d/%d/%d, want current player filled first",
			g.hands[0].size(), g.hands[1].size(), g.hands[2].size())
	}
}

func TestRunPhaseRecoverFullRefill(t *testing.T) {
	g := testGame([]string{red, green}, tacticsRules(), 1)
	for i := 0; i < 20; i++ {
		g.deck = append(g.deck, colorCard(green))
	}

	lastTaker, emptied := g.runPhaseRecover(0)
	if emptied {
		t.Error("deck still holds cards, must not report empty")
	}
	if lastTaker != 1 {
		t.Errorf("last taker = %d, want 1", lastTaker)
	}
	if g.hands[0].size() != g.cfg.TargetHand || g.hands[1].size() != g.cfg.TargetHand {
		t.Errorf("hands %d/%d, want both at %d",
			g.hands[0].size(), g.hands[1].size(), g.cfg.TargetHand)
	}
}

func TestAdvanceTurnSchedulesFinalTurn(t *testing.T) {
	g := testGame([]string{red, green, yellow}, tacticsRules(), 1)
	g.turnQ = []int{2, 0, 1}

	if g.advanceTurn(2, 2, true) {
		t.Fatal("scheduling the final turn must not end the game")
	}
	if !g.finalScheduled || g.finalPlayer != 2 {
		t.Fatalf("final turn not recorded: scheduled=%v player=%d", g.finalScheduled, g.finalPlayer)
	}
	if len(g.turnQ) != 1 || g.turnQ[0] != 2 {
		t.Fatalf("queue %v, want the last taker alone", g.turnQ)
	}

	if !g.advanceTurn(2, -1, true) {
		t.Error("final player finished their turn, game must end")
	}
}

func TestAdvanceTurnRotatesQueue(t *testing.T) {
	g := testGame([]string{red, green, yellow}, tacticsRules(), 1)
	g.deck = []Card{colorCard(red)}
	g.turnQ = []int{1, 2, 0}

	if g.advanceTurn(1, 0, false) {
		t.Fatal("game ended mid-deck")
	}
	want := []int{2, 0, 1}
	for i, p := range want {
		if g.turnQ[i] != p {
			t.Fatalf("queue %v, want %v", g.turnQ, want)
		}
	}
}

func TestAdvanceTurnEndsWhenAllHandsEmpty(t *testing.T) {
	g := testGame([]string{red, green}, tacticsRules(), 1)

	if !g.advanceTurn(0, -1, true) {
		t.Error("empty deck and empty hands, game must end")
	}
}

func TestPurpleKillConvertsToShadow(t *testing.T) {
	g := testGame([]string{purple, red}, tacticsRules(), 1)
	g.zones[0].Counts[purple] = 2
	g.zones[0].Counts[green] = 1

	g.runPhaseAttack(0)

	if g.zones[0].Counts[green] != 0 {
		t.Errorf("green survived: %d", g.zones[0].Counts[green])
	}
	if g.zones[0].Shadows != 1 {
		t.Errorf("shadows = %d, want the kill converted", g.zones[0].Shadows)
	}
	if len(g.discard) != 0 {
		t.Errorf("converted card leaked into discard: %v", g.discard)
	}
}

func TestNonPurpleKillDiscards(t *testing.T) {
	g := testGame([]string{red, green}, tacticsRules(), 1)
	g.zones[0].Counts[red] = 2
	g.zones[0].Counts[yellow] = 1

	g.runPhaseAttack(0)

	if g.zones[0].Counts[yellow] != 0 {
		t.Errorf("yellow survived: %d", g.zones[0].Counts[yellow])
	}
	if g.zones[0].Shadows != 0 {
		t.Errorf("red kill produced shadows: %d", g.zones[0].Shadows)
	}
	if len(g.discard) != 1 {
		t.Errorf("discard %v, want the one removed card", g.discard)
	}
}

func TestClashLosersGoToDiscard(t *testing.T) {
	g := testGame([]string{red, green}, tacticsRules(), 1)
	g.hands[0].add(colorCard(red))
	g.hands[1].add(colorCard(green))

	g.runPhaseClash()

	// On the fixed spiral red dominates green.
	if g.zones[0].Counts[red] != 1 {
		t.Errorf("winning card not placed: %v", g.zones[0].Counts)
	}
	if len(g.discard) != 1 || g.discard[0] != colorCard(green) {
		t.Errorf("discard %v, want the losing green card", g.discard)
	}
	if g.hands[0].size() != 0 || g.hands[1].size() != 0 {
		t.Error("revealed cards must leave both hands")
	}
}

func TestClashFullCycleDiscardsEverything(t *testing.T) {
	g := testGame([]string{red, green, yellow, blue, purple}, tacticsRules(), 1)
	for i, f := range g.players {
		if f == blue {
			g.hands[i].add(blueCard(5))
		} else {
			g.hands[i].add(colorCard(f))
		}
	}

	g.runPhaseClash()

	if len(g.discard) != 5 {
		t.Errorf("discarded %d cards, want all 5 of the cycle", len(g.discard))
	}
	for i, z := range g.zones {
		if len(z.Counts) != 0 || len(z.BlueValues) != 0 {
			t.Errorf("zone %d gained cards on a no-winner clash", i)
		}
	}
}

// playChecked mirrors the game loop while asserting card conservation after
// every phase.
func playChecked(t *testing.T, g *Game, mode string, seed int64) string {
	t.Helper()
	check := func(phase string, turn int) {
		if n := g.cardCensus(); n != 56 {
			t.Fatalf("mode %s seed %d turn %d after %s: census %d, want 56",
				mode, seed, turn, phase, n)
		}
	}
	for turn := 0; ; turn++ {
		if turn > 2000 {
			t.Fatalf("mode %s seed %d: game did not terminate", mode, seed)
		}
		current := g.turnQ[0]
		g.runPhaseClash()
		check("clash", turn)
		if w, ok := g.instantWinner(); ok {
			return w
		}
		g.runPhaseReinforce(current)
		check("reinforce", turn)
		if w, ok := g.instantWinner(); ok {
			return w
		}
		g.runPhaseMoveOrAnomaly(current)
		check("move", turn)
		if w, ok := g.instantWinner(); ok {
			return w
		}
		g.runPhaseAttack(current)
		check("attack", turn)
		if w, ok := g.instantWinner(); ok {
			return w
		}
		lastTaker, emptied := g.runPhaseRecover(current)
		check("recover", turn)
		if w, ok := g.instantWinner(); ok {
			return w
		}
		if g.advanceTurn(current, lastTaker, emptied) {
			return g.scoreGame()
		}
	}
}

func TestGamesTerminateAndConserveCards(t *testing.T) {
	for _, mode := range []string{"baseline", "epic", "tactics"} {
		rules, err := rulesForMode(mode)
		if err != nil {
			t.Fatal(err)
		}
		for seed := int64(0); seed < 20; seed++ {
			for _, n := range []int{2, 4, 5} {
				rng := rand.New(rand.NewSource(seed))
				g := newGame(n, rules, defaultTuning(), rng)
				if c := g.cardCensus(); c != 56 {
					t.Fatalf("mode %s seed %d: opening census %d", mode, seed, c)
				}
				w := playChecked(t, g, mode, seed)
				if !g.isContender(w) {
					t.Fatalf("mode %s seed %d n %d: winner %s never played", mode, seed, n, w)
				}
			}
		}
	}
}

func TestPlayOneGameMatchesSeed(t *testing.T) {
	rules := tacticsRules()
	run := func() string {
		rng := rand.New(rand.NewSource(99))
		return newGame(4, rules, defaultTuning(), rng).playOneGame()
	}
	if a, b := run(), run(); a != b {
		t.Errorf("same seed gave different winners: %s vs %s", a, b)
	}
}
