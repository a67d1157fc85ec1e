package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	BoardSize int    `yaml:"board-size" env:"BOARD_SIZE" env-default:"3"`
	Seed      int64  `yaml:"seed" env:"SEED" env-default:"0"`
	Color     bool   `yaml:"color" env:"COLOR"`
	PlayerX   Player `yaml:"player-x" env-prefix:"PLAYER_X_"`
	PlayerO   Player `yaml:"player-o" env-prefix:"PLAYER_O_"`
	Search    Search `yaml:"search" env-prefix:"SEARCH_"`
	Series    Series `yaml:"series" env-prefix:"SERIES_"`
}

type Player struct {
	Kind string `yaml:"kind" env:"KIND" env-default:"minimax"`
}

type Search struct {
	MaxDepth int           `yaml:"max-depth" env:"MAX_DEPTH" env-default:"0"`
	Movetime time.Duration `yaml:"movetime" env:"MOVETIME" env-default:"0s"`
	Threads  int           `yaml:"threads" env:"THREADS" env-default:"1"`
}

type Series struct {
	Workers int `yaml:"workers" env:"WORKERS" env-default:"1"`
}

// Load - reads the config file when it exists, otherwise the environment only, and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if fileExists(path) {
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	} else if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to load config from env: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Validate - reports every setting the game cannot run with.
func (that *Config) Validate() error {
	var errs []error

	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("%w: log-level %q", ErrInvalidConfig, that.LogLevel))
	}

	if that.BoardSize < 1 {
		errs = append(errs, fmt.Errorf("%w: board-size %d", ErrInvalidConfig, that.BoardSize))
	}

	for name, player := range map[string]Player{"player-x": that.PlayerX, "player-o": that.PlayerO} {
		if !player.IsValid() {
			errs = append(errs, fmt.Errorf("%w: %s.kind %q", ErrInvalidConfig, name, player.Kind))
		}
	}

	if that.Search.MaxDepth < 0 {
		errs = append(errs, fmt.Errorf("%w: search.max-depth %d", ErrInvalidConfig, that.Search.MaxDepth))
	}

	if that.Search.Movetime < 0 {
		errs = append(errs, fmt.Errorf("%w: search.movetime %s", ErrInvalidConfig, that.Search.Movetime))
	}

	if that.Search.Threads < 1 {
		errs = append(errs, fmt.Errorf("%w: search.threads %d", ErrInvalidConfig, that.Search.Threads))
	}

	if that.Series.Workers < 1 {
		errs = append(errs, fmt.Errorf("%w: series.workers %d", ErrInvalidConfig, that.Series.Workers))
	}

	return errors.Join(errs...)
}

// RandSeed - returns the configured seed, or one taken from the clock when it is zero.
func (that *Config) RandSeed() int64 {
	if that.Seed == 0 {
		return time.Now().UnixNano()
	}

	return that.Seed
}

// HasHuman - reports whether someone plays from the terminal.
func (that *Config) HasHuman() bool {
	return that.PlayerX.Kind == entity.PlayerKindHuman || that.PlayerO.Kind == entity.PlayerKindHuman
}

func (that Player) IsValid() bool {
	return entity.IsPlayerKind(that.Kind)
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}

	info, err := os.Stat(path)

	return err == nil && !info.IsDir()
}
