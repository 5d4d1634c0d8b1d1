// Package health supervises the datastore connection: a periodic liveness
// probe records reachability for the rest of the process, and the /health
// endpoint re-probes synchronously and serves a snapshot.
package health

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/bytedance/sonic"
	"github.com/shirou/gopsutil/v3/process"
)

// Prober is the datastore liveness contract.
type Prober interface {
	Ping(ctx context.Context) error
}

// Snapshot is recomputed on each probe and never persisted.
type Snapshot struct {
	DatastoreUp   bool   `json:"datastoreUp"`
	ProcessMemory Memory `json:"processMemory"`
}

type Memory struct {
	Resident  uint64 `json:"resident"`
	HeapTotal uint64 `json:"heapTotal"`
	HeapUsed  uint64 `json:"heapUsed"`
}

type Supervisor struct {
	prober   Prober
	interval time.Duration
	log      *slog.Logger

	up   atomic.Bool
	proc *process.Process
}

func NewSupervisor(prober Prober, interval time.Duration, log *slog.Logger) *Supervisor {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		// Memory fields degrade to zero; the probe still works.
		log.Warn("process handle unavailable", slog.Any("err", err))
	}
	return &Supervisor{
		prober:   prober,
		interval: interval,
		log:      log,
		proc:     proc,
	}
}

// Run probes immediately and then on every tick until the context is
// cancelled. A failed probe only flips the recorded state; it never stops
// the loop or the process.
func (s *Supervisor) Run(ctx context.Context) {
	s.probe(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.probe(ctx)
		}
	}
}

// Up reports the result of the most recent probe.
func (s *Supervisor) Up() bool {
	return s.up.Load()
}

func (s *Supervisor) probe(ctx context.Context) bool {
	err := s.prober.Ping(ctx)
	ok := err == nil

	was := s.up.Swap(ok)
	if ok != was {
		if ok {
			s.log.Info("datastore reachable")
		} else {
			s.log.Error("datastore unreachable", slog.Any("err", err))
		}
	}
	return ok
}

// Handler serves /health: it re-probes synchronously rather than trusting
// the cached periodic result, then answers 200 or 500 with the snapshot.
func (s *Supervisor) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ok := s.probe(r.Context())
		snap := Snapshot{
			DatastoreUp:   ok,
			ProcessMemory: s.memory(),
		}

		body, err := sonic.Marshal(snap)
		if err != nil {
			http.Error(w, "snapshot failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
		}
		_, _ = w.Write(body)
	}
}

func (s *Supervisor) memory() Memory {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	mem := Memory{
		HeapTotal: ms.HeapSys,
		HeapUsed:  ms.HeapAlloc,
	}
	if s.proc != nil {
		if info, err := s.proc.MemoryInfo(); err == nil {
			mem.Resident = info.RSS
		}
	}
	return mem
}
