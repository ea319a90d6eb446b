package config

import (
	"fmt"
	"sync"
)

// Endpoints cycles through a fixed set of RPC nodes, so a caller that gets
// an error from one node can move on to the next.
type Endpoints struct {
	mu     sync.Mutex
	names  []string
	urls   map[string]string
	cursor int
}

func NewEndpoints(nodes map[string]string) (*Endpoints, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("no rpc node configured")
	}
	urls := make(map[string]string, len(nodes))
	for name, url := range nodes {
		urls[name] = url
	}
	return &Endpoints{
		names: NodeOrder(urls),
		urls:  urls,
	}, nil
}

func (e *Endpoints) Len() int {
	return len(e.names)
}

// Current returns the node the cursor points at.
func (e *Endpoints) Current() (name, url string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	name = e.names[e.cursor]
	return name, e.urls[name]
}

// Advance moves past from, unless another caller already did, and returns
// the node the cursor now points at. Two callers failing on the same node
// move the cursor once.
func (e *Endpoints) Advance(from string) (name, url string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.names[e.cursor] == from {
		e.cursor = (e.cursor + 1) % len(e.names)
	}
	name = e.names[e.cursor]
	return name, e.urls[name]
}

// Next advances the cursor, wrapping around, and returns the new node.
func (e *Endpoints) Next() (name, url string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursor = (e.cursor + 1) % len(e.names)
	name = e.names[e.cursor]
	return name, e.urls[name]
}
