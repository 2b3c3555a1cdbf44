package gateway

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"seat-booking/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrUnknownMethod = errors.New("unknown payment method")
)

type Options struct {
	FailureRate float64
	Latency     time.Duration
}

// Simulated stands in for a card/e-wallet provider. It declines a configurable
// share of charges and can add latency to each call.
type Simulated struct {
	opts Options
	rand func() float64
	log  *zap.Logger
}

func NewSimulated(opts Options, log *zap.Logger) *Simulated {
	return &Simulated{
		opts: opts,
		rand: rand.Float64,
		log:  log.With(zap.String("gateway", "simulated")),
	}
}

// WithRand replaces the random source deciding declines.
func (g *Simulated) WithRand(fn func() float64) *Simulated {
	g.rand = fn
	return g
}

func (g *Simulated) Charge(ctx context.Context, amount int64, method entity.PaymentMethod) (*entity.PaymentResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("charge %d: %w", amount, ErrInvalidAmount)
	}
	if !method.Valid() {
		return nil, fmt.Errorf("charge method %q: %w", method, ErrUnknownMethod)
	}

	if g.opts.Latency > 0 {
		timer := time.NewTimer(g.opts.Latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("charge %d: %w", amount, ctx.Err())
		case <-timer.C:
		}
	}

	result := &entity.PaymentResult{
		Amount: amount,
		Method: method,
	}

	if g.opts.FailureRate > 0 && g.rand() < g.opts.FailureRate {
		g.log.Warn("Payment declined (simulated)",
			zap.Int64("amount", amount),
			zap.String("method", string(method)),
		)
		result.Status = entity.PaymentStatusFailed
		return result, nil
	}

	result.Status = entity.PaymentStatusCompleted
	result.TransactionID = "txn_" + uuid.NewString()

	g.log.Info("Payment charged",
		zap.Int64("amount", amount),
		zap.String("method", string(method)),
		zap.String("transaction_id", result.TransactionID),
	)
	return result, nil
}
