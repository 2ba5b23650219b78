package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Sweeper periodically drives the engine's stale-payment recovery. Runs as a
// background goroutine next to the HTTP handlers; finalize idempotency makes
// it safe against callbacks arriving mid-sweep.
type Sweeper struct {
	Engine   *SettlementEngine
	Interval time.Duration
	Window   time.Duration
	Expiry   time.Duration
}

func NewSweeper(engine *SettlementEngine, interval, window, expiry time.Duration) *Sweeper {
	return &Sweeper{
		Engine:   engine,
		Interval: interval,
		Window:   window,
		Expiry:   expiry,
	}
}

// Run blocks until the context is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	logrus.WithFields(logrus.Fields{
		"interval": s.Interval,
		"window":   s.Window,
	}).Info("stale payment sweeper started")

	for {
		select {
		case <-ctx.Done():
			logrus.Info("stale payment sweeper stopped")
			return
		case <-ticker.C:
			if err := s.Engine.RecoverStale(ctx, s.Window, s.Expiry); err != nil {
				logrus.WithError(err).Error("stale payment sweep failed")
			}
		}
	}
}
