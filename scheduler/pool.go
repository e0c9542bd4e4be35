package scheduler

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-faster/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Pool runs batches on a fixed number of goroutines. The batch function must only
// touch state owned by its batch.
type Pool struct {
	workers  int
	newQueue func() *BatchQueue
}

func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{workers: workers, newQueue: NewBatchQueue}
}

func (p *Pool) Workers() int { return p.workers }

// Run blocks until every batch ran or one failed. After the first failure the
// remaining batches are skipped and every error seen is returned.
func (p *Pool) Run(batches []Batch, fn func(Batch) error) error {
	if len(batches) == 0 {
		return nil
	}
	q := p.newQueue()
	if err := q.Put(batches...); err != nil {
		return err
	}
	workers := min(p.workers, len(batches))
	zap.L().Debug(fmt.Sprintf("running %d batches on %d workers", len(batches), workers))

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed atomic.Bool
		errs   error
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for !failed.Load() {
				b, ok := q.Next()
				if !ok {
					return
				}
				if err := runBatch(b, fn); err != nil {
					failed.Store(true)
					mu.Lock()
					errs = multierr.Append(errs, errors.Wrapf(err, "batch %d", b.Index))
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()
	return errs
}

func runBatch(b Batch, fn func(Batch) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error(fmt.Sprintf("panic in batch %d: %v", b.Index, r))
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn(b)
}
