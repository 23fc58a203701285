package services

import (
	"context"
	"math/rand"
	"time"

	"github.com/techmagnet/seacheck/src/cards"
)

// BalanceChecker simulates the external real-time balance lookup. The amount
// itself is the deterministic function in the cards package; the checker adds
// a uniformly random delay in [minDelay, maxDelay] to model network latency.
// A real issuer integration would slot in behind the same contract: same
// input/output shape, variable latency, fallible.
type BalanceChecker struct {
	minDelay time.Duration
	maxDelay time.Duration
}

// NewBalanceChecker creates a balance checker with the given delay bounds.
// Non-positive bounds disable the delay (used by tests).
func NewBalanceChecker(minDelay, maxDelay time.Duration) *BalanceChecker {
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	return &BalanceChecker{minDelay: minDelay, maxDelay: maxDelay}
}

// Check returns the simulated balance for a card after the artificial delay.
// The only failure mode is context cancellation while waiting.
func (bc *BalanceChecker) Check(ctx context.Context, cardType, code string) (float64, error) {
	if err := bc.wait(ctx); err != nil {
		return 0, err
	}
	return cards.ComputeBalance(cardType, code), nil
}

func (bc *BalanceChecker) wait(ctx context.Context) error {
	delay := bc.minDelay
	if spread := bc.maxDelay - bc.minDelay; spread > 0 {
		delay += time.Duration(rand.Int63n(int64(spread)))
	}
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
