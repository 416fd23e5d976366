package queue

import (
	"context"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// Queue holds tasks to develop tree branches. Tasks are
// pulled in reverse push order, so a worker that pushes the
// tasks of a node's branches as it pulls grows the tree depth-first.
type Queue struct {
	tasks *arraystack.Stack
}

// New returns an empty queue backed by the process memory
func New() *Queue {
	return &Queue{tasks: arraystack.New()}
}

// Push takes a context and a task and adds the task
// to the queue. It returns the context error if the
// context is done.
func (q *Queue) Push(ctx context.Context, t *Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	q.tasks.Push(t)
	return nil
}

// Pull takes a context and returns the last task pushed to the
// queue, removing it. If there are no tasks left it returns
// nil, nil. It returns the context error if the context is done.
func (q *Queue) Pull(ctx context.Context) (*Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	v, ok := q.tasks.Pop()
	if !ok {
		return nil, nil
	}
	return v.(*Task), nil
}

// Count returns the number of pending tasks in the queue
func (q *Queue) Count() int {
	return q.tasks.Size()
}
