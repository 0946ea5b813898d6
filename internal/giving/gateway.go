package giving

import (
	"context"
	"crypto/rand"
	"fmt"
	"sync"
	"time"
)

// ReferencePrefix starts every gateway transaction code.
const ReferencePrefix = "PAY-"

const referenceSuffixLen = 7

// Gateway is the payment provider boundary. Charge blocks until the provider
// confirms (or the context is cancelled) and returns the transaction
// reference. Nothing is persisted unless Charge succeeded.
type Gateway interface {
	Charge(ctx context.Context, email string, amount float64, purpose string) (string, error)
}

// SimulatedGateway stands in for the real provider: it sleeps for the
// configured confirmation latency and issues a unique reference. References
// are tracked for the lifetime of the process so one run never reissues a
// code.
type SimulatedGateway struct {
	delay time.Duration

	mu     sync.Mutex
	issued map[string]struct{}
}

func NewSimulatedGateway(delay time.Duration) *SimulatedGateway {
	return &SimulatedGateway{delay: delay, issued: make(map[string]struct{})}
}

func (g *SimulatedGateway) Charge(ctx context.Context, email string, amount float64, purpose string) (string, error) {
	if g.delay > 0 {
		t := time.NewTimer(g.delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-t.C:
		}
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	for {
		ref, err := newReference()
		if err != nil {
			return "", fmt.Errorf("generate reference: %w", err)
		}
		if _, dup := g.issued[ref]; !dup {
			g.issued[ref] = struct{}{}
			return ref, nil
		}
	}
}

func newReference() (string, error) {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, referenceSuffixLen)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	for i := range b {
		b[i] = charset[int(b[i])%len(charset)]
	}
	return ReferencePrefix + string(b), nil
}
