package scanner

import "sync"

// dirTask is one directory awaiting a visit.
type dirTask struct {
	path  string
	depth int

	// rel and ignore are only populated when .gitignore pruning is enabled.
	rel    []string
	ignore *ignoreRules
}

// workQueue is a LIFO queue of directory tasks shared by all workers.
// pending counts tasks pushed but not yet marked done, including those
// a worker is currently visiting; the traversal is finished when it
// reaches zero.
type workQueue struct {
	mu      sync.Mutex
	cond    *sync.Cond
	tasks   []dirTask
	pending int
	closed  bool
}

func newWorkQueue() *workQueue {
	q := &workQueue{}
	q.cond = sync.NewCond(&q.mu)
	return q
}

func (q *workQueue) push(t dirTask) {
	q.mu.Lock()
	q.tasks = append(q.tasks, t)
	q.pending++
	q.mu.Unlock()
	q.cond.Signal()
}

// pop blocks until a task is available. It returns false once the
// traversal is finished or the queue was closed.
func (q *workQueue) pop() (dirTask, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.tasks) == 0 && q.pending > 0 && !q.closed {
		q.cond.Wait()
	}
	if q.closed || len(q.tasks) == 0 {
		return dirTask{}, false
	}

	last := len(q.tasks) - 1
	t := q.tasks[last]
	q.tasks[last] = dirTask{}
	q.tasks = q.tasks[:last]
	return t, true
}

// done marks a popped task as fully visited. Children must be pushed
// before calling done.
func (q *workQueue) done() {
	q.mu.Lock()
	q.pending--
	finished := q.pending == 0
	q.mu.Unlock()
	if finished {
		q.cond.Broadcast()
	}
}

// close wakes every waiting worker and makes further pops fail.
func (q *workQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.cond.Broadcast()
}
