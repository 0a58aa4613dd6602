package config

import (
	"errors"
	"runtime"
	"strings"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigSearchDepth           = "search-depth"
	ConfigDisablePruning        = "disable-pruning"
	ConfigJitterSeed            = "jitter-seed"
	ConfigBoardSize             = "board-size"
	ConfigLogLevel              = "log-level"
	ConfigNatsURL               = "nats-url"
	ConfigBotSubject            = "bot-subject"
	ConfigAutoplayDepth1        = "autoplay-depth1"
	ConfigAutoplayDepth2        = "autoplay-depth2"
	ConfigAutoplayOpeningStones = "autoplay-opening-stones"
	ConfigAutoplayGames         = "autoplay-games"
	ConfigAutoplayThreads       = "autoplay-threads"
	ConfigAutoplayLogfile       = "autoplay-logfile"
	ConfigConfigPath            = "config-path"
)

// Config wraps a viper instance. Values come, in increasing priority, from
// defaults, an optional gomoku.yaml, GOMOKU_* environment variables, and
// command-line flags.
type Config struct {
	viper.Viper
	args []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigSearchDepth, 3)
	v.SetDefault(ConfigDisablePruning, false)
	v.SetDefault(ConfigJitterSeed, 0)
	v.SetDefault(ConfigBoardSize, 15)
	v.SetDefault(ConfigLogLevel, "info")
	v.SetDefault(ConfigNatsURL, nats.DefaultURL)
	v.SetDefault(ConfigBotSubject, "gomoku.bot")
	v.SetDefault(ConfigAutoplayDepth1, 2)
	v.SetDefault(ConfigAutoplayDepth2, 3)
	v.SetDefault(ConfigAutoplayOpeningStones, 2)
	v.SetDefault(ConfigAutoplayGames, 100)
	v.SetDefault(ConfigAutoplayThreads, runtime.NumCPU())
	v.SetDefault(ConfigAutoplayLogfile, "/tmp/gomoku_autoplay.txt")
}

// DefaultConfig returns a config holding only the defaults. Tests use it.
func DefaultConfig() *Config {
	c := &Config{Viper: *viper.New()}
	setDefaults(&c.Viper)
	return c
}

// Load parses flags from args and merges the config file and environment.
// Positional arguments are kept and available from Args.
func (c *Config) Load(args []string) error {
	c.Viper = *viper.New()
	setDefaults(&c.Viper)

	fs := pflag.NewFlagSet("gomoku", pflag.ContinueOnError)
	fs.Int(ConfigSearchDepth, 3, "maximum search depth in plies")
	fs.Bool(ConfigDisablePruning, false, "search the full minimax tree")
	fs.Int64(ConfigJitterSeed, 0, "seed for the evaluation jitter; 0 uses system entropy")
	fs.Int(ConfigBoardSize, 15, "board dimension")
	fs.String(ConfigLogLevel, "info", "log level: debug, info or disabled")
	fs.String(ConfigNatsURL, nats.DefaultURL, "NATS server for the bot")
	fs.String(ConfigBotSubject, "gomoku.bot", "NATS subject the bot listens on")
	fs.Int(ConfigAutoplayDepth1, 2, "search depth of the first autoplay engine")
	fs.Int(ConfigAutoplayDepth2, 3, "search depth of the second autoplay engine")
	fs.Int(ConfigAutoplayOpeningStones, 2, "random stones placed before autoplay engines take over")
	fs.Int(ConfigAutoplayGames, 100, "number of autoplay games")
	fs.Int(ConfigAutoplayThreads, runtime.NumCPU(), "autoplay games played at once")
	fs.String(ConfigAutoplayLogfile, "/tmp/gomoku_autoplay.txt", "CSV log of autoplay games")
	fs.String(ConfigConfigPath, ".", "directory searched for gomoku.yaml")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(fs); err != nil {
		return err
	}
	c.args = fs.Args()

	c.SetEnvPrefix("gomoku")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	c.SetConfigName("gomoku")
	c.SetConfigType("yaml")
	c.AddConfigPath(c.GetString(ConfigConfigPath))
	if err := c.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	return nil
}

// Args are the positional arguments left after flag parsing.
func (c *Config) Args() []string {
	return c.args
}

// LogLevel maps the log-level setting to a zerolog level. Unknown names
// fall back to info.
func (c *Config) LogLevel() zerolog.Level {
	switch c.GetString(ConfigLogLevel) {
	case "debug":
		return zerolog.DebugLevel
	case "disabled":
		return zerolog.Disabled
	}
	return zerolog.InfoLevel
}
