package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"talk-lab/contract"
	"talk-lab/observability"

	"github.com/shirou/gopsutil/process"
)

// ProcessWorker samples CPU and resident memory of the server process.
type ProcessWorker struct {
	log            *slog.Logger
	monitoring     *observability.MonitoringManager
	metricInterval time.Duration
}

var _ contract.Worker = (*ProcessWorker)(nil)

func NewProcessWorker(log *slog.Logger, monitoring *observability.MonitoringManager,
	metricInterval time.Duration) *ProcessWorker {
	return &ProcessWorker{log: log, monitoring: monitoring, metricInterval: metricInterval}
}

func (w *ProcessWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			cpu, rss, err := selfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "error", err)
				continue
			}
			w.monitoring.UpdateProcess(cpu, rss)
		}
	}
}

func selfStats(p *process.Process) (float64, uint64, error) {
	cpu, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	mem, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	return cpu, mem.RSS, nil
}
