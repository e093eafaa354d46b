package main

import (
	"fmt"
	"strings"
)

// Card is one of the 52 poker cards. Rank runs 2..14 (ace high), suit is one
// of "shdc". The text form is rank-first: "As", "Td", "9c".
type Card struct {
	Rank int
	Suit byte
}

const rankChars = "23456789TJQKA"
const suitChars = "shdc"

func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("bad card %q: want rank+suit like As or 9c", s)
	}
	r := strings.IndexByte(rankChars, s[0])
	if r < 0 {
		return Card{}, fmt.Errorf("bad rank in %q", s)
	}
	if strings.IndexByte(suitChars, s[1]) < 0 {
		return Card{}, fmt.Errorf("bad suit in %q", s)
	}
	return Card{Rank: r + 2, Suit: s[1]}, nil
}

// ParseCards parses a space-separated card list; empty input is an empty
// board.
func ParseCards(s string) ([]Card, error) {
	var cards []Card
	for _, f := range strings.Fields(s) {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func (c Card) String() string {
	return string([]byte{rankChars[c.Rank-2], c.Suit})
}

// fullDeck returns all 52 cards.
func fullDeck() []Card {
	deck := make([]Card, 0, 52)
	for i := 0; i < len(suitChars); i++ {
		for r := 2; r <= 14; r++ {
			deck = append(deck, Card{Rank: r, Suit: suitChars[i]})
		}
	}
	return deck
}

// residualDeck removes the known cards from a full deck.
func residualDeck(known []Card) []Card {
	used := make(map[Card]bool, len(known))
	for _, c := range known {
		used[c] = true
	}
	var rest []Card
	for _, c := range fullDeck() {
		if !used[c] {
			rest = append(rest, c)
		}
	}
	return rest
}
