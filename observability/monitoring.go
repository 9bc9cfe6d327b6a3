package observability

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// Monitor aggregates relay counters for the periodic activity report.
// Purely observational: no relay semantics read from it.
type Monitor struct {
	log      *slog.Logger
	interval time.Duration

	forwarded  atomic.Uint64
	rejected   atomic.Uint64
	replies    atomic.Uint64
	failures   atomic.Uint64
	broadcasts atomic.Uint64
}

func NewMonitor(log *slog.Logger, interval time.Duration) *Monitor {
	return &Monitor{log: log, interval: interval}
}

func (m *Monitor) MessageForwarded() { m.forwarded.Add(1) }
func (m *Monitor) MessageRejected()  { m.rejected.Add(1) }
func (m *Monitor) ReplyDelivered()   { m.replies.Add(1) }
func (m *Monitor) DeliveryFailed()   { m.failures.Add(1) }
func (m *Monitor) BroadcastSent()    { m.broadcasts.Add(1) }

// Listen logs an activity snapshot with process health every interval until
// the context is cancelled.
func (m *Monitor) Listen(ctx context.Context) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		m.log.Warn("Process metrics unavailable", "error", err)
		proc = nil
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.log.Info("Monitor stopped")
			return
		case <-ticker.C:
			m.report(proc)
		}
	}
}

func (m *Monitor) report(proc *process.Process) {
	attrs := []any{
		"forwarded", m.forwarded.Load(),
		"rejected", m.rejected.Load(),
		"replies", m.replies.Load(),
		"delivery_failures", m.failures.Load(),
		"broadcasts", m.broadcasts.Load(),
	}
	if proc != nil {
		if mem, err := proc.MemoryInfo(); err == nil {
			attrs = append(attrs, "rss_mb", mem.RSS/1024/1024)
		}
		if cpu, err := proc.CPUPercent(); err == nil {
			attrs = append(attrs, "cpu_percent", cpu)
		}
	}
	m.log.Info("📊 Relay activity", attrs...)
}
