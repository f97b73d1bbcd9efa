package queue

// Queue is the single FIFO the interpreter works against. Values go in at
// the tail and come out at the head; there is no capacity bound.
type Queue struct {
	items []int64
}

func New() *Queue {
	return &Queue{}
}

func (q *Queue) Enqueue(v int64) {
	q.items = append(q.items, v)
}

// Dequeue removes and returns the head value. The second return is false
// when the queue is empty; an empty queue is never an error.
func (q *Queue) Dequeue() (int64, bool) {
	if len(q.items) == 0 {
		return 0, false
	}
	v := q.items[0]
	q.items = q.items[1:]
	return v, true
}

func (q *Queue) IsEmpty() bool {
	return len(q.items) == 0
}

func (q *Queue) Len() int {
	return len(q.items)
}

// Items returns a copy of the current contents, head first. Used by state
// snapshots; mutation still has to go through Enqueue/Dequeue.
func (q *Queue) Items() []int64 {
	out := make([]int64, len(q.items))
	copy(out, q.items)
	return out
}
