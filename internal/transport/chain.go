package transport

import (
	"context"
	"log"
	"time"
)

// Chain tries strategies in a fixed priority order and returns the first
// body that arrives. It never returns an error: exhaustion of every
// strategy is reported as ok == false.
type Chain struct {
	strategies []Strategy
	timeout    time.Duration
}

// NewChain assembles the default strategy order: the circuit-protected
// client first, the plain one-shot client second, and the system curl
// binary last when one exists on this host.
func NewChain(timeout time.Duration) *Chain {
	strategies := []Strategy{
		NewClientStrategy(timeout),
		NewStreamStrategy(timeout),
	}
	if curl := NewCurlStrategy(timeout); curl != nil {
		strategies = append(strategies, curl)
	}
	return &Chain{strategies: strategies, timeout: timeout}
}

// NewChainWith builds a chain over explicit strategies, mainly for tests.
func NewChainWith(timeout time.Duration, strategies ...Strategy) *Chain {
	return &Chain{strategies: strategies, timeout: timeout}
}

// Get performs one GET through the chain. Each strategy attempt is bounded
// by the chain timeout; a failed attempt is logged and the next strategy is
// tried.
func (c *Chain) Get(ctx context.Context, url string) ([]byte, bool) {
	for _, s := range c.strategies {
		attemptCtx := ctx
		cancel := func() {}
		if c.timeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, c.timeout)
		}

		body, err := s.Fetch(attemptCtx, url)
		cancel()
		if err != nil {
			log.Printf("transport: strategy %s failed: %v", s.Name(), err)
			continue
		}
		return body, true
	}
	return nil, false
}
