package main

import (
	"flag"
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

func main() {
	mode := flag.String("mode", "tactics", "rule variant: baseline, epic or tactics")
	playerCounts := flag.String("players", "5,4,3", "comma-separated player counts to simulate")
	games := flag.Int("games", 100000, "games per player count")
	seed := flag.Int64("seed", 42, "base rng seed; game i uses seed+i")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel simulation workers")
	configPath := flag.String("config", "", "optional tuning yaml, defaults compiled in")
	logFirst := flag.Bool("log", false, "write a structured event log of the first game to "+_gameLogPath)
	flag.Parse()

	cfg := defaultTuning()
	if *configPath != "" {
		cfg = loadTuning(*configPath)
	}
	if *logFirst {
		initLogger()
		defer closeLogger()
	}

	for _, field := range strings.Split(*playerCounts, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			fmt.Printf("bad player count %q: %v\n", field, err)
			return
		}
		report, err := RunSimulations(*mode, n, *games, *seed, *workers, cfg)
		if err != nil {
			fmt.Println(err)
			return
		}
		printReport(report)
	}
}

func printReport(r *SimulationReport) {
	fmt.Printf("mode=%s N=%d games=%d\n", r.Mode, r.Players, r.Games)
	for _, f := range factions {
		fmt.Printf("  %-7s P(win|played)=%.4f  wins=%d played=%d\n",
			f, r.WinProbability(f), r.Wins[f], r.Participations[f])
	}
}
