package queue

import (
	"context"
	"testing"

	"github.com/pbanos/acorn/dataset"
	"github.com/pbanos/acorn/tree"
	cv "github.com/smartystreets/goconvey/convey"
)

func TestQueue(t *testing.T) {
	ctx := context.Background()
	cv.Convey("Given an empty queue", t, func() {
		q := New()
		cv.So(q.Count(), cv.ShouldEqual, 0)

		cv.Convey("Pull returns no task and no error", func() {
			task, err := q.Pull(ctx)
			cv.So(err, cv.ShouldBeNil)
			cv.So(task, cv.ShouldBeNil)
		})

		cv.Convey("tasks are pulled in reverse push order", func() {
			s := dataset.New(nil)
			first := &Task{Branch: &tree.Branch{Value: "a"}, Dataset: s}
			second := &Task{Branch: &tree.Branch{Value: "b"}, Dataset: s}
			cv.So(q.Push(ctx, first), cv.ShouldBeNil)
			cv.So(q.Push(ctx, second), cv.ShouldBeNil)
			cv.So(q.Count(), cv.ShouldEqual, 2)
			task, err := q.Pull(ctx)
			cv.So(err, cv.ShouldBeNil)
			cv.So(task, cv.ShouldEqual, second)
			task, err = q.Pull(ctx)
			cv.So(err, cv.ShouldBeNil)
			cv.So(task, cv.ShouldEqual, first)
			cv.So(q.Count(), cv.ShouldEqual, 0)
		})

		cv.Convey("a cancelled context aborts Push and Pull", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			cv.So(q.Push(cctx, &Task{}), cv.ShouldEqual, context.Canceled)
			_, err := q.Pull(cctx)
			cv.So(err, cv.ShouldEqual, context.Canceled)
		})
	})
}
