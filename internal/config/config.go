// Package config binds the engine's runtime settings — history file
// location, whether to load the bundled list library, and color output —
// to viper, readable from flags, environment variables (GIC_-prefixed)
// and an optional config file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "GIC"

// Config holds the resolved runtime settings for one invocation.
type Config struct {
	HistoryFile string
	LoadLibrary bool
	NoColor     bool
	ConfigFile  string
	Verbose     bool
}

// Bind registers the engine's flags onto flags and returns a Config
// loader that resolves flags, GIC_-prefixed environment variables, and
// (if present) a config file into a Config once flags have been parsed.
func Bind(flags *pflag.FlagSet) func() (*Config, error) {
	defaultHistory := defaultHistoryPath()

	flags.String("history-file", defaultHistory, "path to the REPL's persisted readline history file")
	flags.Bool("load-library", true, "load the bundled list-predicate library before evaluating user input")
	flags.Bool("no-color", false, "disable ANSI color in REPL and CLI output")
	flags.String("config", "", "path to an optional YAML/TOML/JSON config file")
	flags.BoolP("verbose", "v", false, "log resolver and clausifier internals at debug level")

	return func() (*Config, error) {
		v := viper.New()
		v.SetEnvPrefix(envPrefix)
		v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
		v.AutomaticEnv()

		if err := v.BindPFlags(flags); err != nil {
			return nil, err
		}

		if cfgFile, _ := flags.GetString("config"); cfgFile != "" {
			v.SetConfigFile(cfgFile)
			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}
		}

		return &Config{
			HistoryFile: v.GetString("history-file"),
			LoadLibrary: v.GetBool("load-library"),
			NoColor:     v.GetBool("no-color"),
			ConfigFile:  v.GetString("config"),
			Verbose:     v.GetBool("verbose"),
		}, nil
	}
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gic_history"
	}
	return filepath.Join(home, ".gic_history")
}
