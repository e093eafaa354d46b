package main

import (
	"math/rand"
	"testing"
)

func TestEstimateValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	hero := mustCards(t, "As Kd")

	if _, err := Estimate(mustCards(t, "As Kd Qh"), nil, 2, 10, rng); err == nil {
		t.Error("accepted a three-card hero hand")
	}
	if _, err := Estimate(hero, mustCards(t, "2s 3s 4s 5s 6s 7s"), 2, 10, rng); err == nil {
		t.Error("accepted a six-card board")
	}
	if _, err := Estimate(hero, nil, 1, 10, rng); err == nil {
		t.Error("accepted a heads-up game without an opponent")
	}
	if _, err := Estimate(hero, nil, 2, 0, rng); err == nil {
		t.Error("accepted zero simulations")
	}
	if _, err := Estimate(hero, mustCards(t, "As 7c 2d"), 2, 10, rng); err == nil {
		t.Error("accepted a duplicated card")
	}
}

func TestEstimateCountsSumToSims(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	res, err := Estimate(mustCards(t, "Jh Js"), mustCards(t, "2c 7d 9h"), 4, 500, rng)
	if err != nil {
		t.Fatal(err)
	}
	if n := res.Wins + res.Ties + res.Losses; n != 500 {
		t.Errorf("outcomes sum to %d, want 500", n)
	}
}

func TestEstimateLockedNuts(t *testing.T) {
	// The hero's ten of spades completes a royal flush on this board; no
	// runout or holding can tie it.
	rng := rand.New(rand.NewSource(3))
	res, err := Estimate(mustCards(t, "Ts 2d"), mustCards(t, "As Ks Qs Js 9s"), 3, 200, rng)
	if err != nil {
		t.Fatal(err)
	}
	if res.Wins != 200 || res.Ties != 0 || res.Losses != 0 {
		t.Errorf("nuts lost or tied: %+v", res)
	}
	if res.Equity() != 1 {
		t.Errorf("equity %f, want 1", res.Equity())
	}
}

func TestEstimatePocketAcesFavoredHeadsUp(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	res, err := Estimate(mustCards(t, "Ah Ad"), nil, 2, 2000, rng)
	if err != nil {
		t.Fatal(err)
	}
	if eq := res.Equity(); eq < 0.75 {
		t.Errorf("aces equity %f heads-up, expected well above 0.75", eq)
	}
}

func TestEquityOfEmptyResult(t *testing.T) {
	var res EquityResult
	if res.Equity() != 0 {
		t.Errorf("empty result equity %f, want 0", res.Equity())
	}
}
