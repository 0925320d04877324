// Package outcome_log keeps the lines produced by batch runs so that a
// display can replay them and follow new ones as they arrive.
package outcome_log

import (
	"io"
	"log"
	"sync/atomic"

	"github.com/google/uuid"
)

var logger = log.New(io.Discard, "outcome_log: ", log.LstdFlags)

// SetLogOutput redirects debug logging of the package.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
}

type node struct {
	line string
	next atomic.Pointer[node]
}

// Log is an append-only singly linked list of lines.
// Append must be called from a single goroutine at a time; Lines and
// subscribers may read concurrently with it.
type Log struct {
	// start is the node after which visible lines begin; Clear moves it to the tail.
	start atomic.Pointer[node]
	tail  atomic.Pointer[node]

	broadcaster *Broadcaster[struct{}]
}

// New creates an empty Log.
func New() *Log {
	sentinel := &node{}
	l := &Log{broadcaster: NewBroadcaster[struct{}]()}
	l.start.Store(sentinel)
	l.tail.Store(sentinel)
	return l
}

// Append adds one line and wakes up subscribers.
func (l *Log) Append(line string) {
	if l == nil {
		return
	}
	n := &node{line: line}
	l.tail.Load().next.Store(n)
	l.tail.Store(n)
	l.broadcaster.Publish(struct{}{})
}

// Clear hides every line appended so far from Lines and from new subscribers.
// Existing subscribers keep receiving lines appended afterwards.
func (l *Log) Clear() {
	if l == nil {
		return
	}
	l.start.Store(l.tail.Load())
}

// Close ends all subscriptions once they have drained the lines already stored.
func (l *Log) Close() {
	if l == nil {
		return
	}
	l.broadcaster.Stop()
}

// Lines returns the visible lines in insertion order.
func (l *Log) Lines() []string {
	if l == nil {
		return nil
	}
	var out []string
	for cur := l.start.Load().next.Load(); cur != nil; cur = cur.next.Load() {
		out = append(out, cur.line)
	}
	return out
}

// Subscribe returns a channel that replays the visible lines and then follows
// new ones. The channel is closed after Close once everything was delivered.
func (l *Log) Subscribe(capacity int) <-chan string {
	ch := make(chan string, capacity)
	notifier, err := l.broadcaster.Subscribe()
	if err != nil {
		go l.drain(l.start.Load(), ch)
	} else {
		go l.follow(l.start.Load(), notifier, ch)
	}
	return ch
}

func (l *Log) follow(prev *node, notifier chan struct{}, ch chan string) {
	id := uuid.New()
	logger.Printf("%s Started following subscriber", id)
	for {
		cur := prev.next.Load()
		if cur == nil {
			if _, ok := <-notifier; !ok {
				// Lines appended between the last check and Close still need delivery.
				l.drain(prev, ch)
				logger.Printf("%s Notifier closed", id)
				return
			}
			continue
		}
		prev = cur
		ch <- cur.line
	}
}

func (l *Log) drain(prev *node, ch chan string) {
	for cur := prev.next.Load(); cur != nil; cur = cur.next.Load() {
		ch <- cur.line
	}
	close(ch)
}
