package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/craftfolio/portfolio-system/internal/api/metrics"
	"github.com/craftfolio/portfolio-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes export jobs to a fixed set of workers using consistent
// hashing on the portfolio id, so exports of the same portfolio never race
// each other.
type Dispatcher struct {
	workers []chan ports.ExportJob
	service ports.ExportService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ExportService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ExportJob, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ExportJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a job to the worker responsible for its portfolio.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(job ports.ExportJob) {
	i := d.shardIndex(job.PortfolioID)
	d.workers[i] <- job
	metrics.ExportQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// shardIndex maps a portfolio id deterministically to a worker index.
func (d *Dispatcher) shardIndex(portfolioID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(portfolioID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ExportJob) {
	label := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			metrics.ExportQueueDepth.WithLabelValues(label).Set(float64(len(ch)))
			if err := d.service.Process(ctx, job); err != nil {
				d.log.Error().Err(err).
					Str("portfolio_id", job.PortfolioID).
					Int("worker_id", id).
					Msg("export job failed")
			}
		}
	}
}
