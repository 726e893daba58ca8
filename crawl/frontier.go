package crawl

import "github.com/fwojciec/docbot/bloom"

// Frontier sizing for Bloom filter deduplication.
const (
	frontierExpectedURLs      = 4096
	frontierFalsePositiveRate = 0.001
)

// Task is one pending fetch: a URL and its BFS distance from the seed.
// Tasks are created when enqueued and consumed once when dequeued.
type Task struct {
	URL   string
	Depth int
}

// Frontier is the FIFO pending-to-visit queue for one crawl invocation.
// Pushes are deduplicated with a Bloom filter and capped at a maximum
// size, so enqueue volume stays bounded even when pages link far more
// broadly than the page budget allows.
//
// A Frontier is scoped to a single crawl and must not be shared.
type Frontier struct {
	queue []Task
	seen  *bloom.Filter
	max   int
}

// NewFrontier creates a Frontier holding at most max pending tasks.
// A max of zero or less means unbounded.
func NewFrontier(max int) *Frontier {
	return &Frontier{
		seen: bloom.NewFilter(frontierExpectedURLs, frontierFalsePositiveRate),
		max:  max,
	}
}

// Push enqueues a task at the tail of the queue.
// Returns false if the URL has already been enqueued or the frontier is
// full.
func (f *Frontier) Push(t Task) bool {
	if f.max > 0 && len(f.queue) >= f.max {
		return false
	}
	if f.seen.Test(t.URL) {
		return false
	}
	f.seen.Add(t.URL)
	f.queue = append(f.queue, t)
	return true
}

// Pop dequeues the head of the queue.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (Task, bool) {
	if len(f.queue) == 0 {
		return Task{}, false
	}
	t := f.queue[0]
	f.queue = f.queue[1:]
	return t, true
}

// Len returns the number of pending tasks.
func (f *Frontier) Len() int {
	return len(f.queue)
}
