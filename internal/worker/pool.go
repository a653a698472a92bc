// Package worker implements the buffered worker pool that decouples match
// result ingestion from database writes: accepted records are queued,
// batched, and inserted in the background, with cache invalidation for the
// wrestlers involved.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/Silver0524/MatPredict/internal/models"
)

var (
	recordsIngested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "matpredict_match_records_ingested_total",
		Help: "Total number of match records accepted for ingestion",
	})

	recordsProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "matpredict_match_records_processed_total",
		Help: "Total number of match records written to storage",
	})

	recordsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "matpredict_match_records_failed_total",
		Help: "Total number of match records that failed processing",
	})

	recordsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "matpredict_match_records_dropped_total",
		Help: "Total number of match records dropped because the pool was stopping",
	})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "matpredict_ingest_queue_depth",
		Help: "Current depth of the ingest queue",
	})

	batchInsertDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "matpredict_batch_insert_duration_seconds",
		Help:    "Duration of batch inserts to Postgres",
		Buckets: prometheus.DefBuckets,
	})
)

// MatchWriter persists a batch of ingested match records.
type MatchWriter interface {
	InsertMatches(ctx context.Context, records []models.MatchUpsert) error
}

// Invalidator drops cached feature snapshots for a wrestler after their
// record set changes.
type Invalidator interface {
	InvalidateWrestler(ctx context.Context, wrestlerID int64) error
}

// Job is one queued match record.
type Job struct {
	Record   models.MatchUpsert
	Received time.Time
}

// PoolConfig configures the ingest worker pool.
type PoolConfig struct {
	WorkerCount   int
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
	Writer        MatchWriter
	Invalidator   Invalidator
	Logger        *zap.Logger
}

// Pool manages the background workers that drain the ingest queue.
type Pool struct {
	config   PoolConfig
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *zap.SugaredLogger
}

func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 10000
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 500
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = time.Second
	}
	return &Pool{
		config:   cfg,
		jobQueue: make(chan Job, cfg.QueueSize),
		logger:   cfg.Logger.Sugar(),
	}
}

// Start launches the worker goroutines.
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	go p.reportQueueDepth()

	p.logger.Infow("Ingest worker pool started",
		"workers", p.config.WorkerCount,
		"queueSize", p.config.QueueSize,
		"batchSize", p.config.BatchSize,
	)
}

// Stop drains the queue and flushes remaining batches.
func (p *Pool) Stop() {
	p.logger.Info("Stopping ingest worker pool...")
	p.cancel()
	close(p.jobQueue)
	p.wg.Wait()
	p.logger.Info("Ingest worker pool stopped")
}

// Enqueue queues one record. Returns false when the pool is stopping or the
// queue is full.
func (p *Pool) Enqueue(record models.MatchUpsert) bool {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Warnw("Failed to enqueue record (pool stopped)", "error", r)
		}
	}()

	select {
	case p.jobQueue <- Job{Record: record, Received: time.Now()}:
		recordsIngested.Inc()
		return true
	case <-p.ctx.Done():
		recordsDropped.Inc()
		return false
	default:
		recordsDropped.Inc()
		return false
	}
}

// QueueDepth returns the current queue size.
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

func (p *Pool) reportQueueDepth() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			queueDepth.Set(float64(len(p.jobQueue)))
		case <-p.ctx.Done():
			return
		}
	}
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	batch := make([]Job, 0, p.config.BatchSize)
	ticker := time.NewTicker(p.config.FlushInterval)
	defer ticker.Stop()

	flush := func() {
		if len(batch) == 0 {
			return
		}
		batchID := uuid.New().String()[:8]

		start := time.Now()
		if err := p.processBatch(batch); err != nil {
			p.logger.Errorw("Batch insert failed", "worker", id, "batch", batchID, "size", len(batch), "error", err)
			recordsFailed.Add(float64(len(batch)))
		} else {
			p.logger.Infow("Batch inserted", "worker", id, "batch", batchID, "size", len(batch), "duration", time.Since(start))
			recordsProcessed.Add(float64(len(batch)))
		}
		batchInsertDuration.Observe(time.Since(start).Seconds())

		batch = batch[:0]
	}

	for {
		select {
		case job, ok := <-p.jobQueue:
			if !ok {
				flush()
				return
			}
			batch = append(batch, job)
			if len(batch) >= p.config.BatchSize {
				flush()
			}

		case <-ticker.C:
			flush()
		}
	}
}

// processBatch writes the batch and invalidates cached snapshots for every
// wrestler involved. Inserts use a background context so an in-flight batch
// survives shutdown.
func (p *Pool) processBatch(batch []Job) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	records := make([]models.MatchUpsert, len(batch))
	for i, job := range batch {
		records[i] = job.Record
	}
	if err := p.config.Writer.InsertMatches(ctx, records); err != nil {
		return err
	}

	if p.config.Invalidator == nil {
		return nil
	}
	seen := make(map[int64]bool)
	for _, rec := range records {
		for _, id := range []int64{rec.Wrestler1ID, rec.Wrestler2ID} {
			if seen[id] {
				continue
			}
			seen[id] = true
			if err := p.config.Invalidator.InvalidateWrestler(ctx, id); err != nil {
				p.logger.Warnw("Cache invalidation failed", "wrestlerID", id, "error", err)
			}
		}
	}
	return nil
}
