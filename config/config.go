package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tranvictor/addressbook/log"
)

const (
	EnvPrefix = "ADDRESSBOOK"

	// FORK_RPC_URL points at a local fork (anvil, hardhat) of whichever
	// network is selected.
	ForkNodeVar = "FORK_RPC_URL"
)

// Values bound to the root command's persistent flags.
var (
	Network     string
	LogLevel    string
	ConfigFile  string
	FoundryRoot string
)

type Config struct {
	LogLevel    string
	Network     string
	FoundryRoot string

	// RPC maps a network name or alias to an RPC URL, from the "rpc" table
	// of the config file.
	RPC map[string]string

	// Foundry holds foundry.toml [rpc_endpoints] with env vars expanded.
	Foundry map[string]string
}

// Load resolves the configuration. Flags that were set win over
// ADDRESSBOOK_* env vars, which win over the config file. .env files in the
// working directory and in the foundry root are loaded first without
// overriding variables that are already set.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault("network", "mainnet")
	v.SetDefault("log_level", log.LogLevelError)
	v.SetDefault("foundry_root", ".")

	if flags != nil {
		for key, flag := range map[string]string{
			"network":      "network",
			"log_level":    "log-level",
			"foundry_root": "foundry-root",
		} {
			if f := flags.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", flag, err)
				}
			}
		}
	}

	file := ConfigFile
	if flags != nil {
		if f := flags.Lookup("config"); f != nil && f.Value.String() != "" {
			file = f.Value.String()
		}
	}
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("addressbook")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.addressbook")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	root := v.GetString("foundry_root")
	if err := loadDotEnv(".", root); err != nil {
		return nil, err
	}

	foundry, err := LoadRPCEndpoints(root)
	if err != nil {
		return nil, err
	}

	rpc := map[string]string{}
	for name, url := range v.GetStringMapString("rpc") {
		rpc[strings.ToLower(name)] = os.ExpandEnv(url)
	}

	cfg := &Config{
		LogLevel:    v.GetString("log_level"),
		Network:     v.GetString("network"),
		FoundryRoot: root,
		RPC:         rpc,
		Foundry:     foundry,
	}
	log.Debugw("config loaded",
		"file", v.ConfigFileUsed(),
		"network", cfg.Network,
		"foundryEndpoints", len(foundry),
	)
	return cfg, nil
}

func loadDotEnv(dirs ...string) error {
	seen := map[string]bool{}
	for _, dir := range dirs {
		path, err := filepath.Abs(filepath.Join(dir, ".env"))
		if err != nil || seen[path] {
			continue
		}
		seen[path] = true
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}
	}
	return nil
}
