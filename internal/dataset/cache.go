package dataset

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jengzang/attraction-heatmap/internal/metrics"
	"github.com/jengzang/attraction-heatmap/internal/models"
)

// Snapshot is an immutable view of the dataset. Records must not be modified.
type Snapshot struct {
	Records  []models.Attraction
	Version  string
	LoadedAt time.Time
	Source   string
}

// Info summarises the snapshot for the API
func (s *Snapshot) Info() models.DatasetInfo {
	return models.DatasetInfo{
		Version:  s.Version,
		Records:  len(s.Records),
		LoadedAt: s.LoadedAt.Unix(),
		Source:   s.Source,
	}
}

// Cache memoizes the dataset for the lifetime of the process.
// The snapshot is replaced only by Refresh.
type Cache struct {
	source  Source
	logger  *zap.Logger
	metrics *metrics.Metrics

	mu       sync.Mutex // serializes loads
	snapshot atomic.Pointer[Snapshot]
}

// NewCache creates a cache over source. m may be nil.
func NewCache(source Source, logger *zap.Logger, m *metrics.Metrics) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{source: source, logger: logger, metrics: m}
}

// Source returns the source the cache loads from
func (c *Cache) Source() Source {
	return c.source
}

// Get returns the cached snapshot, loading it on first use
func (c *Cache) Get(ctx context.Context) (*Snapshot, error) {
	if snap := c.snapshot.Load(); snap != nil {
		return snap, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if snap := c.snapshot.Load(); snap != nil {
		return snap, nil
	}
	return c.load(ctx)
}

// Refresh reloads the dataset. On failure the previous snapshot stays in place.
func (c *Cache) Refresh(ctx context.Context) (*Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

func (c *Cache) load(ctx context.Context) (*Snapshot, error) {
	start := time.Now()

	records, err := c.source.Load(ctx)
	if err != nil {
		c.observe("error")
		c.logger.Error("dataset load failed",
			zap.String("source", c.source.Name()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to load dataset from %s: %w", c.source.Name(), err)
	}

	snap := &Snapshot{
		Records:  records,
		Version:  uuid.NewString(),
		LoadedAt: time.Now(),
		Source:   c.source.Name(),
	}
	c.snapshot.Store(snap)

	c.observe("success")
	if c.metrics != nil {
		c.metrics.DatasetRecords.Set(float64(len(records)))
	}
	c.logger.Info("dataset loaded",
		zap.String("source", snap.Source),
		zap.String("version", snap.Version),
		zap.Int("records", len(records)),
		zap.Duration("took", time.Since(start)),
	)

	return snap, nil
}

func (c *Cache) observe(result string) {
	if c.metrics != nil {
		c.metrics.DatasetReloads.WithLabelValues(result).Inc()
	}
}
