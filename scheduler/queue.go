package scheduler

import (
	"fmt"

	conq "github.com/enriquebris/goconcurrentqueue"
	"go.uber.org/zap"
)

// Batch is a contiguous run of trials [First, First+Count) sharing one random stream.
type Batch struct {
	Index int
	First int
	Count int
}

// Split cuts total trials into batches of at most size trials, in trial order.
func Split(total, size int) []Batch {
	if total <= 0 || size <= 0 {
		return nil
	}
	batches := make([]Batch, 0, (total+size-1)/size)
	for first := 0; first < total; first += size {
		batches = append(batches, Batch{
			Index: len(batches),
			First: first,
			Count: min(size, total-first),
		})
	}
	return batches
}

type fifo interface {
	Enqueue(*Batch) error
	Dequeue() (*Batch, error)
	GetLen() int
}

type conqFIFO struct {
	*conq.FIFO
}

func newConqFIFO() fifo {
	return &conqFIFO{
		FIFO: conq.NewFIFO(),
	}
}

func (c *conqFIFO) Enqueue(b *Batch) error {
	return c.FIFO.Enqueue(b)
}

func (c *conqFIFO) Dequeue() (*Batch, error) {
	tmp, err := c.FIFO.Dequeue()
	if err != nil {
		return nil, err
	}
	return tmp.(*Batch), nil
}

func (c *conqFIFO) GetLen() int {
	return c.FIFO.GetLen()
}

// BatchQueue hands batches to workers in the order they were put.
type BatchQueue struct {
	fifo fifo
}

func NewBatchQueue() *BatchQueue {
	return &BatchQueue{fifo: newConqFIFO()}
}

func (q *BatchQueue) Put(batches ...Batch) error {
	for i := range batches {
		b := batches[i]
		if err := q.fifo.Enqueue(&b); err != nil {
			zap.L().Error(fmt.Sprintf("failed to put batch %d. Reason:%s", b.Index, err))
			return err
		}
	}
	return nil
}

// Next returns false once the queue is drained.
func (q *BatchQueue) Next() (Batch, bool) {
	b, err := q.fifo.Dequeue()
	if err != nil {
		return Batch{}, false
	}
	return *b, true
}

func (q *BatchQueue) Len() int {
	return q.fifo.GetLen()
}
