package sweeper

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dkhamitov/helpmate/internal/config"
)

//go:generate mockgen -source=sweeper.go -destination=sweeper_mock.go -package=sweeper

const (
	taskMature = "mature_settlements"
	taskExpire = "expire_errands"
)

// guards against the same task overlapping itself when a tick fires while
// the previous run is still in flight
var runningTasks sync.Map

type SettlementMaturer interface {
	MatureDue(ctx context.Context) (int64, error)
}

type ErrandExpirer interface {
	ExpireOpen(ctx context.Context, cutoff time.Time) (int64, error)
}

// Service drives the two periodic maintenance passes: releasing matured
// settlements and expiring stale OPEN errands.
type Service struct {
	wallet     SettlementMaturer
	errands    ErrandExpirer
	workerPool WorkerPoolI

	interval    time.Duration
	errandGrace time.Duration
}

func New(cfg *config.Config, wallet SettlementMaturer, errands ErrandExpirer) *Service {
	return &Service{
		wallet:      wallet,
		errands:     errands,
		workerPool:  NewWorkerPool(2),
		interval:    cfg.SweepInterval,
		errandGrace: time.Duration(cfg.ErrandExpiryHours) * time.Hour,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Sweeper started",
		zap.Duration("interval", s.interval),
		zap.Duration("errandGrace", s.errandGrace))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweeper")
			s.workerPool.Close()
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	var g errgroup.Group

	g.Go(func() error { return s.dispatch(ctx, taskMature, s.matureSettlements) })
	g.Go(func() error { return s.dispatch(ctx, taskExpire, s.expireErrands) })

	if err := g.Wait(); err != nil {
		zap.L().Error("Sweep pass failed", zap.Error(err))
	}
}

func (s *Service) dispatch(ctx context.Context, name string, task func(context.Context) error) error {
	if _, loaded := runningTasks.LoadOrStore(name, struct{}{}); loaded {
		return nil
	}

	err := s.workerPool.AddTask(ctx, func() error {
		defer runningTasks.Delete(name)
		return task(ctx)
	})
	if err != nil {
		runningTasks.Delete(name)
		return err
	}
	return nil
}

func (s *Service) matureSettlements(ctx context.Context) error {
	_, err := s.wallet.MatureDue(ctx)
	return err
}

func (s *Service) expireErrands(ctx context.Context) error {
	cutoff := time.Now().Add(-s.errandGrace)
	n, err := s.errands.ExpireOpen(ctx, cutoff)
	if err != nil {
		return err
	}
	if n > 0 {
		zap.L().Info("Expired stale errands", zap.Int64("count", n))
	}
	return nil
}
