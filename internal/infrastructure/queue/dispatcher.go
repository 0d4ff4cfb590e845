package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/marketsquare/vendor-portal/internal/api/metrics"
	"github.com/marketsquare/vendor-portal/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes vendor inquiries to a fixed set of workers using
// consistent hashing on the vendor ID, so inquiries for one vendor are stored
// in arrival order.
type Dispatcher struct {
	workers []chan ports.InquiryInput
	service ports.InquiryService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.InquiryService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.InquiryInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.InquiryInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends an inquiry to the worker responsible for its vendor.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(inquiry ports.InquiryInput) {
	idx := d.shardIndex(inquiry.VendorID)
	d.workers[idx] <- inquiry
	metrics.InquiryQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a vendor ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(vendorID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(vendorID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.InquiryInput) {
	gauge := metrics.InquiryQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			return
		case inquiry, ok := <-ch:
			if !ok {
				return
			}
			gauge.Set(float64(len(ch)))
			if err := d.service.Process(ctx, inquiry); err != nil {
				d.log.Error().Err(err).
					Str("vendor_id", inquiry.VendorID).
					Int("worker_id", id).
					Msg("inquiry processing failed")
			}
		}
	}
}
