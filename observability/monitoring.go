package observability

import (
	"context"
	"log/slog"
	"maps"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// BufferUsage is the fill level of one pipeline buffer.
type BufferUsage struct {
	Length   int `json:"length"`
	Capacity int `json:"capacity"`
}

// MonitoringStats aggregates every metric exposed on /debug/stats.
type MonitoringStats struct {
	// --- SESSION METRICS ---
	ActiveSessions int64 `json:"active_sessions"`
	Rejections     uint64 `json:"rejections"`

	// --- RELAY METRICS ---
	EventsDelivered   uint64  `json:"events_delivered"`
	EventsDropped     uint64  `json:"events_dropped"`
	FragmentsRelayed  uint64  `json:"fragments_relayed"`
	FragmentsRejected uint64  `json:"fragments_rejected"`
	FragmentRate      float64 `json:"fragment_rate"` // fragments/s over the last interval

	// --- CHAT METRICS ---
	MessagesStored   uint64 `json:"messages_stored"`
	MessagesCensored uint64 `json:"messages_censored"`

	// --- SYSTEM METRICS ---
	CPUPercent   float64 `json:"cpu_percent"`
	RSSBytes     uint64  `json:"rss_bytes"`
	AllocMemMb   uint64  `json:"alloc_mem_mb"`
	NumGC        uint32  `json:"num_gc"`
	NumGoroutine int     `json:"num_goroutine"`
	UpdatedAt    string  `json:"updated_at"`

	Buffers map[string]BufferUsage `json:"buffers"`
}

// MonitoringManager collects counters from the hot paths with atomics only,
// and folds them into MonitoringStats on each tick.
type MonitoringManager struct {
	log         *slog.Logger
	interval    time.Duration
	mu          sync.RWMutex
	latestStats MonitoringStats

	activeSessions    int64
	rejections        uint64
	eventsDelivered   uint64
	eventsDropped     uint64
	fragmentsRelayed  uint64
	fragmentsRejected uint64
	messagesStored    uint64
	messagesCensored  uint64

	lastFragments uint64
	lastCheck     time.Time
	buffers       map[string]BufferUsage
}

func NewMonitoringManager(log *slog.Logger, interval time.Duration) *MonitoringManager {
	return &MonitoringManager{
		log:       log,
		interval:  interval,
		lastCheck: time.Now(),
		buffers:   make(map[string]BufferUsage),
	}
}

func (mm *MonitoringManager) SessionOpened() {
	atomic.AddInt64(&mm.activeSessions, 1)
}

func (mm *MonitoringManager) SessionClosed() {
	atomic.AddInt64(&mm.activeSessions, -1)
}

func (mm *MonitoringManager) IncrRejections() {
	atomic.AddUint64(&mm.rejections, 1)
}

func (mm *MonitoringManager) AddDeliveries(delivered, dropped int) {
	atomic.AddUint64(&mm.eventsDelivered, uint64(delivered))
	atomic.AddUint64(&mm.eventsDropped, uint64(dropped))
}

func (mm *MonitoringManager) IncrFragmentsRelayed() {
	atomic.AddUint64(&mm.fragmentsRelayed, 1)
}

func (mm *MonitoringManager) IncrFragmentsRejected() {
	atomic.AddUint64(&mm.fragmentsRejected, 1)
}

func (mm *MonitoringManager) IncrMessagesStored() {
	atomic.AddUint64(&mm.messagesStored, 1)
}

func (mm *MonitoringManager) IncrMessagesCensored() {
	atomic.AddUint64(&mm.messagesCensored, 1)
}

// UpdateProcess records the last process sample taken by the process worker.
func (mm *MonitoringManager) UpdateProcess(cpu float64, rss uint64) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.latestStats.CPUPercent = cpu
	mm.latestStats.RSSBytes = rss
}

func (mm *MonitoringManager) UpdateBuffer(name string, length, capacity int) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.buffers[name] = BufferUsage{Length: length, Capacity: capacity}
}

// Run refreshes the stats every interval until ctx is done.
func (mm *MonitoringManager) Run(ctx context.Context) error {
	ticker := time.NewTicker(mm.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			mm.log.Debug("Monitoring manager stopped")
			return nil
		case <-ticker.C:
			mm.updateStats()
		}
	}
}

func (mm *MonitoringManager) updateStats() {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	now := time.Now()
	relayed := atomic.LoadUint64(&mm.fragmentsRelayed)
	if duration := now.Sub(mm.lastCheck).Seconds(); duration > 0 {
		mm.latestStats.FragmentRate = float64(relayed-mm.lastFragments) / duration
	}
	mm.lastFragments = relayed
	mm.lastCheck = now

	mm.latestStats.ActiveSessions = atomic.LoadInt64(&mm.activeSessions)
	mm.latestStats.Rejections = atomic.LoadUint64(&mm.rejections)
	mm.latestStats.EventsDelivered = atomic.LoadUint64(&mm.eventsDelivered)
	mm.latestStats.EventsDropped = atomic.LoadUint64(&mm.eventsDropped)
	mm.latestStats.FragmentsRelayed = relayed
	mm.latestStats.FragmentsRejected = atomic.LoadUint64(&mm.fragmentsRejected)
	mm.latestStats.MessagesStored = atomic.LoadUint64(&mm.messagesStored)
	mm.latestStats.MessagesCensored = atomic.LoadUint64(&mm.messagesCensored)

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	mm.latestStats.AllocMemMb = m.Alloc / 1024 / 1024
	mm.latestStats.NumGC = m.NumGC
	mm.latestStats.NumGoroutine = runtime.NumGoroutine()
	mm.latestStats.UpdatedAt = now.UTC().Format(time.RFC3339)

	mm.log.Debug("Stats updated",
		"sessions", mm.latestStats.ActiveSessions,
		"fragment_rate", mm.latestStats.FragmentRate,
		"events_dropped", mm.latestStats.EventsDropped,
		"mem_mb", mm.latestStats.AllocMemMb,
	)
}

// GetLatest returns the stats, refreshed so counters are never older than the call.
func (mm *MonitoringManager) GetLatest() MonitoringStats {
	mm.updateStats()
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	stats := mm.latestStats
	stats.Buffers = maps.Clone(mm.buffers)
	return stats
}
