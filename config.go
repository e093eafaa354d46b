package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Tuning holds every heuristic probability and threshold the tacticians use.
// Values are deliberately parameters, not rules: the danger thresholds below
// are the ones the playtesting settled on, not derived bounds.
type Tuning struct {
	TargetHand int `yaml:"targetHand"`

	BlueTarget     int `yaml:"blueTarget"`
	BlueDangerLow  int `yaml:"blueDangerLow"`
	BlueDangerHigh int `yaml:"blueDangerHigh"`
	GreenInstant   int `yaml:"greenInstant"`
	GreenNearWin   int `yaml:"greenNearWin"`
	YellowInstant  int `yaml:"yellowInstant"`

	CaptainDeployChance float64 `yaml:"captainDeployChance"`
	WormholeChance      float64 `yaml:"wormholeChance"`
	SpiralSwapChance    float64 `yaml:"spiralSwapChance"`
	ResetDiscardMin     int     `yaml:"resetDiscardMin"`

	// Non-tactical variants only.
	EpicCaptainChance   float64 `yaml:"epicCaptainChance"`
	RandomAnomalyChance float64 `yaml:"randomAnomalyChance"`
}

func defaultTuning() *Tuning {
	return &Tuning{
		TargetHand:          4,
		BlueTarget:          42,
		BlueDangerLow:       35,
		BlueDangerHigh:      41,
		GreenInstant:        5,
		GreenNearWin:        4,
		YellowInstant:       5,
		CaptainDeployChance: 0.8,
		WormholeChance:      0.6,
		SpiralSwapChance:    0.5,
		ResetDiscardMin:     3,
		EpicCaptainChance:   0.3,
		RandomAnomalyChance: 0.5,
	}
}

func loadTuning(path string) *Tuning {
	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	cfg := defaultTuning()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		panic(err)
	}
	return cfg
}

func (t *Tuning) blueDanger(sum int) bool {
	return sum >= t.BlueDangerLow && sum <= t.BlueDangerHigh
}

// rulesForMode maps a variant name to its rule set. baseline is the plain
// rulebook with random play, epic adds the faction mechanics, tactics adds
// the decision heuristics on top.
func rulesForMode(mode string) (Rules, error) {
	switch mode {
	case "baseline":
		return Rules{}, nil
	case "epic":
		return Rules{
			InstantWins:  true,
			BlueDistinct: true,
			Captain:      true,
			Shadows:      true,
		}, nil
	case "tactics":
		return Rules{
			InstantWins:  true,
			BlueDistinct: true,
			Captain:      true,
			Shadows:      true,
			Tactical:     true,
		}, nil
	}
	return Rules{}, fmt.Errorf("unknown mode %q (want baseline, epic or tactics)", mode)
}
