package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
)

func main() {
	hero := flag.String("hero", "5s 6d", "hero hole cards, e.g. \"As Kd\"")
	board := flag.String("board", "", "known board cards, 0 to 5, e.g. \"Qs Jc Ts\"")
	active := flag.Int("active", 3, "active players including hero")
	sims := flag.Int("sims", 10000, "number of simulations")
	seed := flag.Int64("seed", 1, "rng seed")
	flag.Parse()

	heroCards, err := ParseCards(*hero)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	boardCards, err := ParseCards(*board)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))
	res, err := Estimate(heroCards, boardCards, *active, *sims, rng)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Printf("Hero:  %v\n", heroCards)
	fmt.Printf("Board: %v\n", boardCards)
	fmt.Printf("Active players: %d, simulations: %d\n", *active, *sims)
	fmt.Printf("Wins: %d Ties: %d Losses: %d\n", res.Wins, res.Ties, res.Losses)
	fmt.Printf("Equity: %.4f\n", res.Equity())
}
