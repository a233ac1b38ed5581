package experiments

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds the self-play experiment parameters, optionally loaded
// from a config file.
type Config struct {
	Games       int     `mapstructure:"games"`
	Episodes    int     `mapstructure:"episodes"`
	Exploration float64 `mapstructure:"exploration"`
	Seed        uint64  `mapstructure:"seed"`
	Opponent    string  `mapstructure:"opponent"` // "random" or "greedy"
}

func DefaultConfig() Config {
	return Config{
		Games:       20,
		Episodes:    200,
		Exploration: 0.3,
		Opponent:    "random",
	}
}

// LoadConfig reads cfgPath into a Config. An empty path returns the
// defaults; keys missing from the file keep their default values.
func LoadConfig(cfgPath string) (Config, error) {
	cfg := DefaultConfig()
	if cfgPath == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(cfgPath)
	v.SetDefault("games", cfg.Games)
	v.SetDefault("episodes", cfg.Episodes)
	v.SetDefault("exploration", cfg.Exploration)
	v.SetDefault("opponent", cfg.Opponent)

	if err := v.ReadInConfig(); err != nil {
		return cfg, errors.Wrapf(err, "failed to read config %s", cfgPath)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "failed to parse config")
	}
	return cfg, nil
}
