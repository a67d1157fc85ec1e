package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	app "github.com/rocketscienceinc/tictactoe-minimax/internal"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	configPath := flag.String("config", "./config.yml", "path to the config file, skipped when missing")
	games := flag.Int("games", 0, "number of silent games to play, 0 plays one game on the terminal")
	flag.Parse()

	// .env is optional
	_ = godotenv.Load()

	conf := config.MustLoad(*configPath)
	logger := initLogger(conf, *games)

	if err := app.RunApp(logger, conf, *games); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize logger. A single game owns stdout, so its logs go to stderr.
func initLogger(conf *config.Config, games int) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	out := os.Stdout
	if games == 0 {
		out = os.Stderr
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
}
