package main

import "sort"

// Hand categories. Lower is better, matching the rank convention of the
// evaluate functions below.
const (
	catStraightFlush = iota
	catFourOfAKind
	catFullHouse
	catFlush
	catStraight
	catThreeOfAKind
	catTwoPair
	catOnePair
	catHighCard
)

// EvaluateBest returns the rank of the best 5-card hand within 5 to 7 cards.
// Lower rank means stronger hand; equal ranks tie.
func EvaluateBest(cards []Card) int {
	n := len(cards)
	if n < 5 || n > 7 {
		panic("EvaluateBest requires 5 to 7 cards")
	}
	if n == 5 {
		return evaluate5(cards)
	}
	best := -1
	pick := make([]Card, 5)
	// Choose 5 of n by skipping every (n-5)-subset.
	var iterate func(start, chosen int)
	iterate = func(start, chosen int) {
		if chosen == 5 {
			if r := evaluate5(pick); best < 0 || r < best {
				best = r
			}
			return
		}
		for i := start; i <= n-(5-chosen); i++ {
			pick[chosen] = cards[i]
			iterate(i+1, chosen+1)
		}
	}
	iterate(0, 0)
	return best
}

// evaluate5 ranks exactly 5 cards. The rank packs the category and the
// tie-break ranks into one int so that direct comparison orders hands, lower
// being stronger.
func evaluate5(cards []Card) int {
	ranks := make([]int, 5)
	flush := true
	for i, c := range cards {
		ranks[i] = c.Rank
		if c.Suit != cards[0].Suit {
			flush = false
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	straight, top := straightTop(ranks)
	if flush && straight {
		return pack(catStraightFlush, []int{top})
	}

	counts := make(map[int]int)
	for _, r := range ranks {
		counts[r]++
	}
	type group struct{ rank, count int }
	groups := make([]group, 0, len(counts))
	for r, c := range counts {
		groups = append(groups, group{r, c})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})

	switch {
	case groups[0].count == 4:
		return pack(catFourOfAKind, []int{groups[0].rank, groups[1].rank})
	case groups[0].count == 3 && groups[1].count == 2:
		return pack(catFullHouse, []int{groups[0].rank, groups[1].rank})
	case flush:
		return pack(catFlush, ranks)
	case straight:
		return pack(catStraight, []int{top})
	case groups[0].count == 3:
		return pack(catThreeOfAKind, []int{groups[0].rank, groups[1].rank, groups[2].rank})
	case groups[0].count == 2 && groups[1].count == 2:
		return pack(catTwoPair, []int{groups[0].rank, groups[1].rank, groups[2].rank})
	case groups[0].count == 2:
		return pack(catOnePair, []int{groups[0].rank, groups[1].rank, groups[2].rank, groups[3].rank})
	}
	return pack(catHighCard, ranks)
}

// straightTop detects a straight in 5 ranks sorted descending, returning its
// high card. The wheel (A-5-4-3-2) counts with top 5.
func straightTop(sorted []int) (bool, int) {
	run := true
	for i := 1; i < 5; i++ {
		if sorted[i] != sorted[i-1]-1 {
			run = false
			break
		}
	}
	if run {
		return true, sorted[0]
	}
	if sorted[0] == 14 && sorted[1] == 5 && sorted[2] == 4 && sorted[3] == 3 && sorted[4] == 2 {
		return true, 5
	}
	return false, 0
}

// pack encodes category then up to five tie-break ranks, high rank first.
// Ranks are inverted so that a smaller packed value is the stronger hand.
func pack(cat int, tiebreaks []int) int {
	v := cat
	for i := 0; i < 5; i++ {
		t := 0
		if i < len(tiebreaks) {
			t = tiebreaks[i]
		}
		v = v<<4 | (14 - t)
	}
	return v
}
