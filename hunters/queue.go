package hunters

import "container/heap"

// EventKind enumerates every tick the simulation loop dispatches on.
type EventKind string

const (
	EventHunterRegen   EventKind = "hunter_regen"
	EventEnemyRegen    EventKind = "enemy_regen"
	EventHunterAttack  EventKind = "hunter_attack"
	EventEnemyAttack   EventKind = "enemy_attack"
	EventHunterSpecial EventKind = "hunter_special"
	EventBossEnrage    EventKind = "boss_enrage"
	EventStunExpire    EventKind = "stun_expire"
)

// SimEvent is one entry in the simulation's priority queue. Events with
// an equal (DueTime, Priority) resolve in insertion order via Seq,
// matching the ordering guarantee in the data model.
type SimEvent struct {
	DueTime  float64
	Priority int
	Kind     EventKind
	Tag      string
	Seq      int64
}

// Lower priority numbers are serviced first at equal DueTime.
const (
	PriorityRegen   = 0
	PriorityEnrage  = 1
	PriorityStun    = 2
	PrioritySpecial = 5
	PriorityAttack  = 10
)

// eventQueue is a container/heap min-heap ordered by (DueTime,
// Priority, Seq). No third-party priority-queue library appears
// anywhere in the reference corpus, so this uses the standard
// library's heap the way most Go schedulers do.
type eventQueue struct {
	items []SimEvent
	seq   int64
}

func newEventQueue() *eventQueue {
	q := &eventQueue{}
	heap.Init(q)
	return q
}

func (q *eventQueue) Enqueue(e SimEvent) {
	e.Seq = q.seq
	q.seq++
	heap.Push(q, e)
}

func (q *eventQueue) Dequeue() (SimEvent, bool) {
	if q.Len() == 0 {
		return SimEvent{}, false
	}
	return heap.Pop(q).(SimEvent), true
}

// heap.Interface implementation.

func (q *eventQueue) Len() int { return len(q.items) }

func (q *eventQueue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.DueTime != b.DueTime {
		return a.DueTime < b.DueTime
	}
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return a.Seq < b.Seq
}

func (q *eventQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *eventQueue) Push(x any) { q.items = append(q.items, x.(SimEvent)) }

func (q *eventQueue) Pop() any {
	old := q.items
	n := len(old)
	item := old[n-1]
	q.items = old[:n-1]
	return item
}
