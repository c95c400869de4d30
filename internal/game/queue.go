package game

// NotificationQueue is a first-in-first-out store of result text.
// Entries are never evicted; it grows by one per round until drained.
type NotificationQueue struct {
	items []string
	head  int
}

// NewNotificationQueue creates an empty queue
func NewNotificationQueue() *NotificationQueue {
	return &NotificationQueue{}
}

// Enqueue appends item to the back of the queue
func (q *NotificationQueue) Enqueue(item string) {
	q.items = append(q.items, item)
}

// Dequeue removes and returns the front item. ok is false when the queue is empty.
func (q *NotificationQueue) Dequeue() (item string, ok bool) {
	if q.head == len(q.items) {
		return "", false
	}
	item = q.items[q.head]
	q.items[q.head] = ""
	q.head++

	// Reclaim the consumed prefix once it dominates the backing array
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	} else if q.head > 32 && q.head*2 >= len(q.items) {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}
	return item, true
}

// IsEmpty reports whether no items are held
func (q *NotificationQueue) IsEmpty() bool {
	return q.head == len(q.items)
}

// Len returns the number of items held
func (q *NotificationQueue) Len() int {
	return len(q.items) - q.head
}

// Items returns a copy of the held items in arrival order without consuming them
func (q *NotificationQueue) Items() []string {
	out := make([]string, q.Len())
	copy(out, q.items[q.head:])
	return out
}
