package main

import (
	"fmt"
	"math/rand"
)

const (
	red    = "red"
	green  = "green"
	yellow = "yellow"
	blue   = "blue"
	purple = "purple"
)

var factions = []string{red, green, yellow, blue, purple}

// Each blue card carries one of these values; 17 appears twice.
var blueCardValues = []int{2, 3, 5, 7, 11, 13, 17, 17, 19, 23, 29}

const (
	anomSwapSpiral   = "swap_spiral"
	anomWormhole     = "wormhole"
	anomBlackHole    = "black_hole"
	anomResetDiscard = "reset_discard"
	anomExtraTurn    = "extra_turn"
)

var anomalies = []string{anomSwapSpiral, anomWormhole, anomBlackHole, anomResetDiscard, anomExtraTurn}

// shadowTarget names the shadow-token stack as an attack target. Shadows are
// not cards and have no color.
const shadowTarget = "shadow"

// Card is either a faction card (Color set, Value set for distinguishable
// blue) or an anomaly card (Anomaly set). Comparable, so hands can count it.
type Card struct {
	Color   string
	Value   int
	Anomaly string
}

func colorCard(color string) Card { return Card{Color: color} }
func blueCard(v int) Card         { return Card{Color: blue, Value: v} }
func anomalyCard(name string) Card {
	return Card{Anomaly: name}
}

func (c Card) isAnomaly() bool { return c.Anomaly != "" }

func (c Card) String() string {
	if c.Anomaly != "" {
		return "anom:" + c.Anomaly
	}
	if c.Color == blue && c.Value > 0 {
		return fmt.Sprintf("blue#%d", c.Value)
	}
	return c.Color
}

// Hand counts cards by identity.
type Hand map[Card]int

func (h Hand) add(c Card) { h[c]++ }

func (h Hand) remove(c Card) {
	h[c]--
	if h[c] <= 0 {
		delete(h, c)
	}
}

func (h Hand) size() int {
	n := 0
	for _, cnt := range h {
		n += cnt
	}
	return n
}

func (h Hand) colorCount(color string) int {
	n := 0
	for c, cnt := range h {
		if c.Color == color {
			n += cnt
		}
	}
	return n
}

// blueValuesHeld returns the values of all blue cards in the hand, sorted
// ascending so decisions stay deterministic for a given state.
func (h Hand) blueValuesHeld() []int {
	var vals []int
	for c, cnt := range h {
		if c.Color == blue && c.Value > 0 {
			for k := 0; k < cnt; k++ {
				vals = append(vals, c.Value)
			}
		}
	}
	sortInts(vals)
	return vals
}

func (h Hand) anomaliesHeld() []string {
	var held []string
	for _, name := range anomalies {
		if h[anomalyCard(name)] > 0 {
			held = append(held, name)
		}
	}
	return held
}

// Zone is one player's dimension. Shadows are purple-only derived tokens and
// deliberately live outside Counts so card conservation never sees them.
type Zone struct {
	Counts     map[string]int
	BlueValues []int
	Shadows    int
}

func newZone() *Zone {
	return &Zone{Counts: make(map[string]int)}
}

// Rules selects a variant of the engine. The tactics mode of the rulebook is
// everything on; baseline is everything off.
type Rules struct {
	InstantWins  bool
	BlueDistinct bool
	Captain      bool
	Shadows      bool
	Tactical     bool
}

// Game is the full mutable state of one simulated game. One instance per
// game, one rng per instance, nothing shared.
type Game struct {
	rng   *rand.Rand
	cfg   *Tuning
	rules Rules

	players []string
	hands   []Hand
	zones   []*Zone

	deck          []Card
	discard       []Card
	shadowDiscard int

	spiral []string

	captainOwner int // player index of the red entity, -1 if red sat out
	captainLoc   int // zone index, -1 while undeployed

	turnQ []int

	finalScheduled bool
	finalPlayer    int

	tacticians []Tactician

	verbose bool
}

func newGame(numPlayers int, rules Rules, cfg *Tuning, rng *rand.Rand) *Game {
	g := &Game{
		rng:          rng,
		cfg:          cfg,
		rules:        rules,
		players:      sampleFactions(rng, numPlayers),
		deck:         initDeck(rng, rules.BlueDistinct),
		spiral:       makeSpiral(rng),
		captainOwner: -1,
		captainLoc:   -1,
		finalPlayer:  -1,
	}
	for i := 0; i < numPlayers; i++ {
		g.hands = append(g.hands, make(Hand))
		g.zones = append(g.zones, newZone())
	}
	for i, f := range g.players {
		if rules.Captain && f == red {
			g.captainOwner = i
		}
		g.tacticians = append(g.tacticians, tacticianFor(f, rules.Tactical))
	}

	// Opening deal.
	for i := range g.hands {
		for k := 0; k < cfg.TargetHand; k++ {
			c, ok := g.drawCard()
			if !ok {
				break
			}
			g.hands[i].add(c)
		}
	}

	first := rng.Intn(numPlayers)
	for k := 0; k < numPlayers; k++ {
		g.turnQ = append(g.turnQ, (first+k)%numPlayers)
	}
	return g
}

// initDeck builds the 56-card starting deck: 11 per faction plus exactly one
// uniformly chosen anomaly, shuffled.
func initDeck(rng *rand.Rand, blueDistinct bool) []Card {
	var deck []Card
	for _, f := range []string{red, green, yellow, purple} {
		for k := 0; k < 11; k++ {
			deck = append(deck, colorCard(f))
		}
	}
	if blueDistinct {
		for _, v := range blueCardValues {
			deck = append(deck, blueCard(v))
		}
	} else {
		for k := 0; k < 11; k++ {
			deck = append(deck, colorCard(blue))
		}
	}
	deck = append(deck, anomalyCard(anomalies[rng.Intn(len(anomalies))]))
	shuffleCards(rng, deck)
	return deck
}

func makeSpiral(rng *rand.Rand) []string {
	s := make([]string, len(factions))
	copy(s, factions)
	rng.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
	return s
}

// beats reports whether a dominates b: a sits immediately before b in the
// spiral cycle.
func beats(a, b string, spiral []string) bool {
	for i, c := range spiral {
		if c == a {
			return spiral[(i+1)%len(spiral)] == b
		}
	}
	return false
}

// clashWinners resolves the simultaneous reveal. One color revealed by
// everyone means everyone wins; otherwise a color wins iff it dominates at
// least one revealed color and is dominated by none. A full cycle yields no
// winners.
func clashWinners(colors []string, spiral []string) []string {
	uniq := make(map[string]bool)
	for _, c := range colors {
		uniq[c] = true
	}
	if len(uniq) == 1 {
		return colors[:1]
	}
	var winners []string
	for _, c := range factions {
		if !uniq[c] {
			continue
		}
		beatsSome, lostSome := false, false
		for d := range uniq {
			if d == c {
				continue
			}
			if beats(c, d, spiral) {
				beatsSome = true
			}
			if beats(d, c, spiral) {
				lostSome = true
			}
		}
		if beatsSome && !lostSome {
			winners = append(winners, c)
		}
	}
	return winners
}

func (g *Game) drawCard() (Card, bool) {
	if len(g.deck) == 0 {
		return Card{}, false
	}
	c := g.deck[len(g.deck)-1]
	g.deck = g.deck[:len(g.deck)-1]
	return c, true
}

func (g *Game) placeCard(zoneIdx int, c Card) {
	z := g.zones[zoneIdx]
	if c.Color == blue && g.rules.BlueDistinct {
		z.BlueValues = append(z.BlueValues, c.Value)
		return
	}
	if c.Color != "" {
		z.Counts[c.Color]++
	}
}

// removeOneFromZone takes one card of the given color off a zone and returns
// it for the discard pile. In distinct-blue play the top of the blue stack
// comes off.
func (g *Game) removeOneFromZone(zoneIdx int, color string) (Card, bool) {
	z := g.zones[zoneIdx]
	if color == blue && g.rules.BlueDistinct {
		if len(z.BlueValues) == 0 {
			return Card{}, false
		}
		v := z.BlueValues[len(z.BlueValues)-1]
		z.BlueValues = z.BlueValues[:len(z.BlueValues)-1]
		return blueCard(v), true
	}
	if z.Counts[color] > 0 {
		z.Counts[color]--
		if z.Counts[color] == 0 {
			delete(z.Counts, color)
		}
		return colorCard(color), true
	}
	return Card{}, false
}

// moveCard relocates one card between zones. blueVal selects which blue card
// when blue is distinguishable; pass 0 to take the top of the stack.
func (g *Game) moveCard(src, dst int, color string, blueVal int) bool {
	if src == dst {
		return false
	}
	if color == blue && g.rules.BlueDistinct {
		z := g.zones[src]
		idx := -1
		for i, v := range z.BlueValues {
			if blueVal == 0 || v == blueVal {
				idx = i
			}
		}
		if idx < 0 {
			return false
		}
		v := z.BlueValues[idx]
		z.BlueValues = append(z.BlueValues[:idx], z.BlueValues[idx+1:]...)
		g.zones[dst].BlueValues = append(g.zones[dst].BlueValues, v)
		return true
	}
	z := g.zones[src]
	if z.Counts[color] == 0 {
		return false
	}
	z.Counts[color]--
	if z.Counts[color] == 0 {
		delete(z.Counts, color)
	}
	g.zones[dst].Counts[color]++
	return true
}

// squadSize is the effective fighting size of a color in a zone. The deployed
// captain adds one to red.
func (g *Game) squadSize(zoneIdx int, color string) int {
	z := g.zones[zoneIdx]
	sz := 0
	if color == blue && g.rules.BlueDistinct {
		sz = len(z.BlueValues)
	} else {
		sz = z.Counts[color]
	}
	if color == red && g.captainLoc == zoneIdx {
		sz++
	}
	return sz
}

func (g *Game) zoneBlueSum(zoneIdx int) int {
	s := 0
	for _, v := range g.zones[zoneIdx].BlueValues {
		s += v
	}
	return s
}

func (g *Game) yellowCoverage() bool {
	for _, z := range g.zones {
		if z.Counts[yellow] < 1 {
			return false
		}
	}
	return true
}

// factionTotals sums board presence per faction across all zones: card
// counts, +1 for the deployed captain on red, shadow tokens on purple.
func (g *Game) factionTotals() map[string]int {
	tot := make(map[string]int)
	for i, z := range g.zones {
		for c, cnt := range z.Counts {
			tot[c] += cnt
		}
		tot[blue] += len(z.BlueValues)
		tot[purple] += z.Shadows
		if g.captainLoc == i {
			tot[red]++
		}
	}
	return tot
}

// cardCensus counts every card and converted token in the game. It must be 56
// at every phase boundary.
func (g *Game) cardCensus() int {
	n := len(g.deck) + len(g.discard) + g.shadowDiscard
	for _, h := range g.hands {
		n += h.size()
	}
	for _, z := range g.zones {
		for _, cnt := range z.Counts {
			n += cnt
		}
		n += len(z.BlueValues) + z.Shadows
	}
	return n
}
