package session

import "sync"

// Gate lets at most one request per session and action run at a time.
type Gate struct {
	mu      sync.Mutex
	running map[string]struct{}
}

func NewGate() *Gate {
	return &Gate{running: make(map[string]struct{})}
}

// Acquire reports whether action may start for sid. When it may, release
// must be called once the action finished.
func (g *Gate) Acquire(sid, action string) (release func(), ok bool) {
	key := sid + "\x00" + action
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.running[key]; busy {
		return nil, false
	}
	g.running[key] = struct{}{}
	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.running, key)
			g.mu.Unlock()
		})
	}, true
}
