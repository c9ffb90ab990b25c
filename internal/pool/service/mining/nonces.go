package mining

import "sync"

// nonceClaims tracks nonces whose shares are between the duplicate check and
// the share insert.
type nonceClaims struct {
	mu      sync.Mutex
	pending map[string]struct{}
}

func newNonceClaims() *nonceClaims {
	return &nonceClaims{pending: make(map[string]struct{})}
}

// claim reports false when another submission holds the nonce.
func (c *nonceClaims) claim(nonce string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, held := c.pending[nonce]; held {
		return false
	}
	c.pending[nonce] = struct{}{}
	return true
}

func (c *nonceClaims) release(nonce string) {
	c.mu.Lock()
	delete(c.pending, nonce)
	c.mu.Unlock()
}
