package components

import (
	"container/heap"

	"github.com/yohamta/donburi"
)

// Task is a deferred callback owned by the clock.
type Task struct {
	Due float64
	Run func(w donburi.World)
	seq uint64
}

// taskQueue orders tasks by due time, then by the order they were scheduled.
type taskQueue []*Task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].Due != q[j].Due {
		return q[i].Due < q[j].Due
	}
	return q[i].seq < q[j].seq
}

func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *taskQueue) Push(x any) { *q = append(*q, x.(*Task)) }

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}

// ClockData is the world's simulated time. Now advances by DT once per tick.
type ClockData struct {
	Now   float64
	DT    float64
	Ticks uint64
	tasks taskQueue
	seq   uint64
}

// Enqueue adds a task due at the given time.
func (c *ClockData) Enqueue(due float64, run func(w donburi.World)) {
	c.seq++
	heap.Push(&c.tasks, &Task{Due: due, Run: run, seq: c.seq})
}

// PopDue removes and returns the earliest task due at or before now, or nil.
func (c *ClockData) PopDue(now float64) *Task {
	if len(c.tasks) == 0 || c.tasks[0].Due > now {
		return nil
	}
	return heap.Pop(&c.tasks).(*Task)
}

// Pending is the number of tasks still waiting.
func (c *ClockData) Pending() int {
	return len(c.tasks)
}

var Clock = donburi.NewComponentType[ClockData]()
