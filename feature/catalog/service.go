package catalog

import (
	"context"

	"catalog-manager/feature/catalog/assets"
	"catalog-manager/feature/catalog/reconcile"
	"catalog-manager/feature/catalog/store"
	"catalog-manager/feature/catalog/walker"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Service handles catalog operations.
type Service struct {
	walker *walker.Walker
	st     store.Store
	engine *reconcile.Engine
	logger *zap.Logger
	group  singleflight.Group
}

// NewService creates a new catalog service.
func NewService(cfg walker.Config, st store.Store, registrar assets.Registrar, logger *zap.Logger) *Service {
	return &Service{
		walker: walker.New(cfg, logger),
		st:     st,
		engine: reconcile.NewEngine(st, registrar, cfg.Delimiter, logger),
		logger: logger,
	}
}

// Reconcile walks the catalog root and reconciles everything found into the
// store. Triggers arriving while a pass is running join it and share its
// report instead of starting a second concurrent pass. The pass itself runs
// detached from the triggering request's cancellation: the result is shared
// by every joined caller, so the initiator disconnecting must not fail them.
func (s *Service) Reconcile(ctx context.Context) (*reconcile.Report, error) {
	runCtx := context.WithoutCancel(ctx)
	v, err, shared := s.group.Do("reconcile", func() (interface{}, error) {
		companies, err := s.walker.Walk(runCtx)
		if err != nil {
			return nil, err
		}
		return s.engine.Run(runCtx, companies)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("Joined in-flight reconciliation pass")
	}
	return v.(*reconcile.Report), nil
}

// Summary returns the persisted row count per catalog entity table.
func (s *Service) Summary(ctx context.Context) (map[string]int64, error) {
	return s.st.Counts(ctx)
}
