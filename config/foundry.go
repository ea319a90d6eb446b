package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type foundryTOML struct {
	RpcEndpoints map[string]string `toml:"rpc_endpoints"`
}

// LoadRPCEndpoints reads [rpc_endpoints] from root/foundry.toml. Values may
// reference env vars as ${VAR}. A missing file yields an empty map.
func LoadRPCEndpoints(root string) (map[string]string, error) {
	path := filepath.Join(root, "foundry.toml")

	var raw foundryTOML
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to parse foundry.toml: %w", err)
	}

	endpoints := make(map[string]string, len(raw.RpcEndpoints))
	for name, url := range raw.RpcEndpoints {
		expanded := strings.TrimSpace(os.ExpandEnv(url))
		if expanded == "" {
			// references an unset variable
			continue
		}
		endpoints[strings.ToLower(name)] = expanded
	}
	return endpoints, nil
}
