package main

import (
	"math/rand"
	"testing"
)

// testGame builds a bare game with a fixed faction assignment, a fixed spiral
// (red > green > yellow > blue > purple > red), empty zones and an empty deck.
func testGame(players []string, rules Rules, seed int64) *Game {
	g := &Game{
		rng:          rand.New(rand.NewSource(seed)),
		cfg:          defaultTuning(),
		rules:        rules,
		players:      players,
		spiral:       []string{red, green, yellow, blue, purple},
		captainOwner: -1,
		captainLoc:   -1,
		finalPlayer:  -1,
	}
	for i, f := range players {
		g.hands = append(g.hands, make(Hand))
		g.zones = append(g.zones, newZone())
		if rules.Captain && f == red {
			g.captainOwner = i
		}
		g.tacticians = append(g.tacticians, tacticianFor(f, rules.Tactical))
		g.turnQ = append(g.turnQ, i)
	}
	return g
}

func tacticsRules() Rules {
	r, err := rulesForMode("tactics")
	if err != nil {
		panic(err)
	}
	return r
}

func TestInitDeckComposition(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	deck := initDeck(rng, true)
	if len(deck) != 56 {
		t.Fatalf("deck size = %d, want 56", len(deck))
	}

	colorCounts := make(map[string]int)
	blueVals := make(map[int]int)
	anomCount := 0
	for _, c := range deck {
		if c.isAnomaly() {
			anomCount++
			continue
		}
		colorCounts[c.Color]++
		if c.Color == blue {
			blueVals[c.Value]++
		}
	}
	if anomCount != 1 {
		t.Errorf("anomaly cards = %d, want exactly 1", anomCount)
	}
	for _, f := range factions {
		if colorCounts[f] != 11 {
			t.Errorf("%s cards = %d, want 11", f, colorCounts[f])
		}
	}
	want := make(map[int]int)
	for _, v := range blueCardValues {
		want[v]++
	}
	for v, n := range want {
		if blueVals[v] != n {
			t.Errorf("blue value %d appears %d times, want %d", v, blueVals[v], n)
		}
	}
}

func TestInitDeckFungibleBlue(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	deck := initDeck(rng, false)
	for _, c := range deck {
		if c.Color == blue && c.Value != 0 {
			t.Fatalf("fungible deck contains valued blue card %v", c)
		}
	}
}

func TestAssignmentUniqueness(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		for n := 2; n <= 5; n++ {
			assigned := sampleFactions(rng, n)
			seen := make(map[string]bool)
			for _, f := range assigned {
				if seen[f] {
					t.Fatalf("seed %d n %d: duplicate faction %s", seed, n, f)
				}
				seen[f] = true
				found := false
				for _, known := range factions {
					if known == f {
						found = true
					}
				}
				if !found {
					t.Fatalf("unknown faction %s", f)
				}
			}
		}
	}
}

func TestSpiralWellFormed(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		spiral := makeSpiral(rand.New(rand.NewSource(seed)))
		seen := make(map[string]bool)
		for _, f := range spiral {
			seen[f] = true
		}
		if len(seen) != 5 {
			t.Fatalf("seed %d: spiral %v is not a permutation", seed, spiral)
		}
		for _, a := range factions {
			out, in := 0, 0
			for _, b := range factions {
				if beats(a, b, spiral) {
					if a == b {
						t.Fatalf("faction %s dominates itself", a)
					}
					out++
				}
				if beats(b, a, spiral) {
					in++
				}
			}
			if out != 1 || in != 1 {
				t.Fatalf("faction %s: out-degree %d in-degree %d, want 1/1", a, out, in)
			}
		}
	}
}

func TestClashWinners(t *testing.T) {
	spiral := []string{red, green, yellow, blue, purple}
	cases := []struct {
		name    string
		colors  []string
		winners []string
	}{
		{"all same", []string{green, green, green}, []string{green}},
		{"simple domination", []string{red, green}, []string{red}},
		{"chain", []string{red, green, yellow}, []string{red}},
		{"full cycle", []string{red, green, yellow, blue, purple}, nil},
		// purple beats red beats green, blue beats purple; only blue is
		// unbeaten among those present.
		{"partial cycle", []string{red, green, blue, purple}, []string{blue}},
	}

	for _, tc := range cases {
		got := clashWinners(tc.colors, spiral)
		if len(got) != len(tc.winners) {
			t.Errorf("%s: winners %v, want %v", tc.name, got, tc.winners)
			continue
		}
		for i := range got {
			if got[i] != tc.winners[i] {
				t.Errorf("%s: winners %v, want %v", tc.name, got, tc.winners)
			}
		}
	}
}

func TestMoveCardSpecificBlueValue(t *testing.T) {
	g := testGame([]string{blue, red}, tacticsRules(), 1)
	g.zones[0].BlueValues = []int{5, 17, 23}

	if !g.moveCard(0, 1, blue, 17) {
		t.Fatal("move refused")
	}
	if got := g.zoneBlueSum(0); got != 28 {
		t.Errorf("source sum = %d, want 28", got)
	}
	if len(g.zones[1].BlueValues) != 1 || g.zones[1].BlueValues[0] != 17 {
		t.Errorf("destination blue = %v, want [17]", g.zones[1].BlueValues)
	}
}

func TestSquadSizeCountsCaptain(t *testing.T) {
	g := testGame([]string{red, green}, tacticsRules(), 1)
	g.zones[0].Counts[red] = 2
	g.captainLoc = 0
	if got := g.squadSize(0, red); got != 3 {
		t.Errorf("red squad = %d, want 3 with captain", got)
	}
	if got := g.squadSize(1, red); got != 0 {
		t.Errorf("red squad elsewhere = %d, want 0", got)
	}
}

func TestFactionTotalsIncludeShadowsAndCaptain(t *testing.T) {
	g := testGame([]string{red, purple}, tacticsRules(), 1)
	g.zones[0].Counts[red] = 2
	g.zones[1].Counts[purple] = 1
	g.zones[1].Shadows = 3
	g.captainLoc = 0

	tot := g.factionTotals()
	if tot[red] != 3 {
		t.Errorf("red total = %d, want 3", tot[red])
	}
	if tot[purple] != 4 {
		t.Errorf("purple total = %d, want 4", tot[purple])
	}
}
