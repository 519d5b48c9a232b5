package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis    Redis  `yaml:"redis" env-prefix:"REDIS_"`
	Game     Game   `yaml:"game" env-prefix:"GAME_"`
}

type Redis struct {
	Enabled    bool          `yaml:"enabled" env:"ENABLED" env-default:"false"`
	Host       string        `yaml:"host" env:"HOST" env-default:"localhost"`
	Port       string        `yaml:"port" env:"PORT" env-default:"6379"`
	HistoryTTL time.Duration `yaml:"history-ttl" env:"HISTORY_TTL" env-default:"24h"`
}

type Game struct {
	BoardSize int    `yaml:"board-size" env:"BOARD_SIZE" env-default:"9"`
	AIRole    string `yaml:"ai-role" env:"AI_ROLE" env-default:"WHITE"`
}

// MustLoad - loads config.yml, or only the environment when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		err = cleanenv.ReadConfig(path, config)
	case errors.Is(err, os.ErrNotExist):
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		return nil, err
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate - checks the game settings before any board is built.
func (that *Config) Validate() error {
	size := that.Game.BoardSize
	if size%2 == 0 || size < gomoku.MinSize {
		return fmt.Errorf("%w: board-size %d", apperror.ErrInvalidSize, size)
	}

	if _, err := that.Game.HumanRole(); err != nil {
		return err
	}

	return nil
}

// HumanRole - the color left to the human once the AI has its own.
func (that *Game) HumanRole() (gomoku.Player, error) {
	role, err := gomoku.ParsePlayer(that.AIRole)
	if err != nil {
		return "", fmt.Errorf("ai-role: %w", err)
	}

	return role.Opponent(), nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
