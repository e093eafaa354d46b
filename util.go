package main

import (
	"math/rand"
	"sort"
)

func sortInts(vals []int) {
	sort.Ints(vals)
}

// sampleFactions draws n distinct factions without replacement.
func sampleFactions(rng *rand.Rand, n int) []string {
	pool := make([]string, len(factions))
	copy(pool, factions)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return pool[:n]
}

func shuffleCards(rng *rand.Rand, cards []Card) {
	rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}

// chance is a weighted coin flip.
func chance(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// pickOther returns a uniformly chosen index in [0,n) different from exclude.
func pickOther(rng *rand.Rand, n, exclude int) (int, bool) {
	if n < 2 {
		return 0, false
	}
	k := rng.Intn(n - 1)
	if k >= exclude {
		k++
	}
	return k, true
}
