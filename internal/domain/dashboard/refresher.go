package dashboard

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const defaultInterval = 5 * time.Minute

// Refresher mantiene el último Snapshot bueno y lo renueva en un intervalo
// fijo. El core de agregación es puro y sin estado; el timer vive acá afuera.
// Una pasada fallida no pisa el último resultado bueno (last-result-wins).
type Refresher struct {
	svc      *Service
	interval time.Duration
	logger   *zap.Logger

	mu   sync.RWMutex
	last *Snapshot
}

func NewRefresher(svc *Service, interval time.Duration, logger *zap.Logger) *Refresher {
	if interval <= 0 {
		interval = defaultInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Refresher{
		svc:      svc,
		interval: interval,
		logger:   logger,
	}
}

// Run bloquea hasta que el contexto se cancele.
func (r *Refresher) Run(ctx context.Context) {
	// Primera pasada al arrancar; si falla no hay cache y el handler
	// forzará una pasada síncrona en el primer request.
	if _, err := r.Refresh(ctx); err != nil {
		r.logger.Warn("initial dashboard refresh failed", zap.Error(err))
	}

	t := time.NewTicker(r.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if _, err := r.Refresh(ctx); err != nil {
				r.logger.Warn("scheduled dashboard refresh failed", zap.Error(err))
			}
		}
	}
}

// Refresh corre una pasada síncrona y, si sale bien, reemplaza el snapshot.
func (r *Refresher) Refresh(ctx context.Context) (Snapshot, error) {
	snap, err := r.svc.Aggregate(ctx, time.Now())
	if err != nil {
		return Snapshot{}, err
	}

	r.mu.Lock()
	r.last = &snap
	r.mu.Unlock()

	return snap, nil
}

// Latest devuelve el último snapshot bueno, si existe.
func (r *Refresher) Latest() (Snapshot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.last == nil {
		return Snapshot{}, false
	}
	return *r.last, true
}
