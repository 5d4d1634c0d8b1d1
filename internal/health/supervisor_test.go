package health

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bytedance/sonic"
)

type fakeProber struct {
	fail atomic.Bool
}

func (p *fakeProber) Ping(ctx context.Context) error {
	if p.fail.Load() {
		return errors.New("connection refused")
	}
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunRecordsProbeResult(t *testing.T) {
	prober := &fakeProber{}
	sup := NewSupervisor(prober, 10*time.Millisecond, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sup.Run(ctx)

	waitFor(t, func() bool { return sup.Up() })

	// The datastore going away flips the recorded state within one
	// interval; it never stops the loop.
	prober.fail.Store(true)
	waitFor(t, func() bool { return !sup.Up() })

	prober.fail.Store(false)
	waitFor(t, func() bool { return sup.Up() })
}

func TestHandlerReprobesSynchronously(t *testing.T) {
	prober := &fakeProber{}
	sup := NewSupervisor(prober, time.Hour, testLogger())
	handler := sup.Handler()

	t.Run("datastore up -> 200", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		snap := decodeSnapshot(t, w)
		if !snap.DatastoreUp {
			t.Fatal("expected datastoreUp true")
		}
	})

	t.Run("datastore down -> 500", func(t *testing.T) {
		// The periodic loop never ran (interval is an hour); only the
		// synchronous re-probe can observe the failure.
		prober.fail.Store(true)

		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		snap := decodeSnapshot(t, w)
		if snap.DatastoreUp {
			t.Fatal("expected datastoreUp false")
		}
	})
}

func TestSnapshotCarriesMemory(t *testing.T) {
	sup := NewSupervisor(&fakeProber{}, time.Hour, testLogger())

	w := httptest.NewRecorder()
	sup.Handler()(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	snap := decodeSnapshot(t, w)
	if snap.ProcessMemory.HeapTotal == 0 || snap.ProcessMemory.HeapUsed == 0 {
		t.Fatalf("expected heap figures, got %+v", snap.ProcessMemory)
	}
}

func decodeSnapshot(t *testing.T, w *httptest.ResponseRecorder) Snapshot {
	t.Helper()
	var snap Snapshot
	if err := sonic.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode snapshot failed: %v", err)
	}
	return snap
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}
