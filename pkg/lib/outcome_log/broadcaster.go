package outcome_log

import (
	"errors"
	"sync"
)

var errBroadcasterStopped = errors.New("failed to subscribe: broadcaster is stopped")

// Broadcaster fans a value out to every subscriber without ever blocking the
// publisher. Each subscriber channel holds one value; a newer value replaces
// an unread older one.
type Broadcaster[T any] struct {
	mu          sync.Mutex
	subscribers map[chan T]struct{}
	stopped     bool
}

func NewBroadcaster[T any]() *Broadcaster[T] {
	return &Broadcaster[T]{subscribers: make(map[chan T]struct{})}
}

// Subscribe registers a new subscriber channel.
func (b *Broadcaster[T]) Subscribe() (chan T, error) {
	ch := make(chan T, 1)
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stopped {
		logger.Println("Can't subscribe")
		return nil, errBroadcasterStopped
	}
	b.subscribers[ch] = struct{}{}
	logger.Println("New subscriber")
	return ch, nil
}

// Unsubscribe removes and closes the channel. Unknown channels are ignored.
func (b *Broadcaster[T]) Unsubscribe(ch chan T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subscribers[ch]; !ok {
		return
	}
	delete(b.subscribers, ch)
	close(ch)
	logger.Println("Unsubscribed")
}

// Publish delivers msg to all subscribers, dropping a stale unread value if needed.
func (b *Broadcaster[T]) Publish(msg T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stopped {
		return
	}
	for ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
			select {
			case <-ch:
			default:
			}
			// Only Publish sends and it holds the lock, so the slot is free now.
			ch <- msg
		}
	}
}

// Stop closes every subscriber channel. Later Subscribe calls fail.
func (b *Broadcaster[T]) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stopped {
		return
	}
	for ch := range b.subscribers {
		close(ch)
	}
	b.subscribers = nil
	b.stopped = true
	logger.Println("Stopping broadcaster")
}
