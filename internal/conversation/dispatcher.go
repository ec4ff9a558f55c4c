package conversation

import (
	"context"
	"sync"
)

type Handler interface {
	Handle(ctx context.Context, msg Message)
}

// Dispatcher runs messages of one user strictly in arrival order on a
// dedicated goroutine. Different users are handled in parallel. A worker
// exits once its queue is drained.
type Dispatcher struct {
	handler Handler

	mu     sync.Mutex
	queues map[int64][]Message
	wg     sync.WaitGroup
}

func NewDispatcher(handler Handler) *Dispatcher {
	return &Dispatcher{
		handler: handler,
		queues:  make(map[int64][]Message),
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, msg Message) {
	key := dispatchKey(msg)

	d.mu.Lock()
	queue, running := d.queues[key]
	d.queues[key] = append(queue, msg)
	d.mu.Unlock()

	if running {
		return
	}

	d.wg.Add(1)
	go d.drain(ctx, key)
}

// Wait blocks until every queued message has been handled.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) drain(ctx context.Context, key int64) {
	defer d.wg.Done()
	for {
		d.mu.Lock()
		queue := d.queues[key]
		if len(queue) == 0 {
			delete(d.queues, key)
			d.mu.Unlock()
			return
		}
		msg := queue[0]
		d.queues[key] = queue[1:]
		d.mu.Unlock()

		d.handler.Handle(ctx, msg)
	}
}

// dispatchKey serializes by user. Messages without a sender are serialized
// per chat instead.
func dispatchKey(msg Message) int64 {
	if msg.From != nil {
		return msg.From.ID
	}
	return msg.ChatID
}
