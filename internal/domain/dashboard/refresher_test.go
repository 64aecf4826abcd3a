package dashboard

import (
	"context"
	"sync"
	"testing"
	"time"

	"clinic-manager/internal/domain/clients"
)

// flakyClients permite apagar la fuente entre pasadas.
type flakyClients struct {
	mu    sync.Mutex
	fail  bool
	items []clients.Client
}

func (f *flakyClients) ListAll(_ context.Context) ([]clients.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, context.DeadlineExceeded
	}
	return f.items, nil
}

func (f *flakyClients) setFail(v bool) {
	f.mu.Lock()
	f.fail = v
	f.mu.Unlock()
}

func TestRefresher_LatestEmptyBeforeFirstRefresh(t *testing.T) {
	ref := NewRefresher(NewService(emptySources(), nil), time.Minute, nil)

	if _, ok := ref.Latest(); ok {
		t.Fatal("Latest devolvió un snapshot antes de la primera pasada")
	}
}

func TestRefresher_RefreshStoresSnapshot(t *testing.T) {
	ref := NewRefresher(NewService(emptySources(), nil), time.Minute, nil)

	snap, err := ref.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	got, ok := ref.Latest()
	if !ok {
		t.Fatal("Latest vacío después de un Refresh exitoso")
	}
	if !got.GeneratedAt.Equal(snap.GeneratedAt) {
		t.Fatalf("Latest = %v, want %v", got.GeneratedAt, snap.GeneratedAt)
	}
}

func TestRefresher_FailureKeepsLastGoodSnapshot(t *testing.T) {
	fc := &flakyClients{items: []clients.Client{{ID: "c1", Name: "Ana"}}}

	src := emptySources()
	src.Clients = fc
	ref := NewRefresher(NewService(src, nil), time.Minute, nil)

	if _, err := ref.Refresh(context.Background()); err != nil {
		t.Fatalf("primer Refresh: %v", err)
	}

	fc.setFail(true)
	if _, err := ref.Refresh(context.Background()); err == nil {
		t.Fatal("Refresh con fuente caída debería fallar")
	}

	got, ok := ref.Latest()
	if !ok {
		t.Fatal("el snapshot bueno se perdió tras una pasada fallida")
	}
	if got.Metrics.TotalClients != 1 {
		t.Fatalf("TotalClients = %d, want 1", got.Metrics.TotalClients)
	}
}

func TestNewRefresher_DefaultInterval(t *testing.T) {
	ref := NewRefresher(NewService(emptySources(), nil), 0, nil)
	if ref.interval != defaultInterval {
		t.Fatalf("interval = %v, want %v", ref.interval, defaultInterval)
	}
}
