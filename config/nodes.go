package config

import (
	"os"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/tranvictor/addressbook/networks"
)

const (
	CustomNode  = "custom-node"
	ConfigNode  = "config-node"
	FoundryNode = "foundry-node"
	ForkNode    = "fork-node"
)

// Nodes returns every RPC endpoint known for n, keyed by node name: the
// network's defaults plus whatever the environment, the config file and
// foundry.toml add.
func (c *Config) Nodes(n networks.Network) map[string]string {
	nodes := n.GetDefaultNodes()
	names := append([]string{n.GetName()}, n.GetAlternativeNames()...)

	if url, found := lookupAny(c.RPC, names); found {
		nodes[ConfigNode] = url
	}
	if url, found := lookupAny(c.Foundry, names); found {
		nodes[FoundryNode] = url
	}
	if custom := strings.TrimSpace(os.Getenv(n.GetNodeVariableName())); custom != "" {
		nodes[CustomNode] = custom
	}
	if fork := strings.TrimSpace(os.Getenv(ForkNodeVar)); fork != "" {
		nodes[ForkNode] = fork
	}
	return nodes
}

func lookupAny(m map[string]string, names []string) (string, bool) {
	for _, name := range names {
		if url, found := m[strings.ToLower(name)]; found && url != "" {
			return url, true
		}
	}
	return "", false
}

var preference = []string{ForkNode, CustomNode, ConfigNode, FoundryNode}

// NodeOrder sorts node names by preference: a fork first, then the user's
// own endpoints, then the defaults by name.
func NodeOrder(nodes map[string]string) []string {
	rank := func(name string) int {
		if i := slices.Index(preference, name); i >= 0 {
			return i
		}
		return len(preference)
	}
	names := lo.Keys(nodes)
	slices.SortFunc(names, func(a, b string) int {
		if ra, rb := rank(a), rank(b); ra != rb {
			return ra - rb
		}
		return strings.Compare(a, b)
	})
	return names
}
