package main

import (
	"go.uber.org/zap"
)

// gameLogger records the full event stream of a game. It stays nil in bulk
// simulation; the driver enables it for the first game only so one playthrough
// can be inspected without drowning in a million logs.
var gameLogger *zap.Logger

const _gameLogPath = "./game_log.json"

func initLogger() {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{_gameLogPath}
	cfg.DisableCaller = true
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	gameLogger = logger
}

func closeLogger() {
	if gameLogger != nil {
		gameLogger.Sync()
		gameLogger = nil
	}
}

// logEvent writes one structured game event. Only games flagged verbose log.
func (g *Game) logEvent(msg string, fields ...zap.Field) {
	if !g.verbose || gameLogger == nil {
		return
	}
	gameLogger.Info(msg, fields...)
}
