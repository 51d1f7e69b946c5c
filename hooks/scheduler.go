package hooks

import (
	mapset "github.com/deckarep/golang-set/v2"
	"go.uber.org/zap"
)

// ScheduleFunc is the render driver's callback. The scheduler invokes it at
// most once per instance per flush, outside any batching scope.
type ScheduleFunc func(in *Instance)

// BatchScheduler collects instances that need a re-render and hands them to
// the driver when the outermost batching scope closes. Dispatches outside
// any scope flush immediately.
type BatchScheduler struct {
	rc       *RenderContext
	schedule ScheduleFunc
	pending  mapset.Set[*Instance]
	depth    int
	flushing bool
}

func newBatchScheduler(rc *RenderContext, schedule ScheduleFunc) *BatchScheduler {
	bs := &BatchScheduler{
		rc:      rc,
		pending: mapset.NewThreadUnsafeSet[*Instance](),
	}
	if schedule == nil {
		schedule = bs.renderNow
	}
	bs.schedule = schedule
	return bs
}

// renderNow is the default driver: re-render synchronously and route fatal
// errors to the context's error callback.
func (bs *BatchScheduler) renderNow(in *Instance) {
	if _, err := bs.rc.Render(in); err != nil {
		if bs.rc.onError != nil {
			bs.rc.onError(in, err)
			return
		}
		bs.rc.logger.Error("render failed",
			zap.String("component", in.name), zap.Error(err))
	}
}

func (bs *BatchScheduler) startBatch() { bs.depth++ }

func (bs *BatchScheduler) endBatch() {
	bs.depth--
	if bs.depth == 0 {
		bs.flush()
	}
}

// enqueue marks an instance dirty. The set keys on instance identity, so any
// number of dispatches within one batch schedule a single render.
func (bs *BatchScheduler) enqueue(in *Instance) {
	bs.pending.Add(in)
	if bs.depth == 0 {
		bs.flush()
	}
}

// flush drains the pending set until it stays empty. Renders triggered by
// the driver can dispatch further updates; those join the set and are
// processed before flush returns, so quiescence is guaranteed on exit.
func (bs *BatchScheduler) flush() {
	if bs.flushing {
		return
	}
	bs.flushing = true
	defer func() { bs.flushing = false }()

	for bs.pending.Cardinality() > 0 {
		batch := bs.pending.ToSlice()
		bs.pending.Clear()
		for _, in := range batch {
			bs.schedule(in)
		}
	}
}

func (bs *BatchScheduler) forget(in *Instance) {
	bs.pending.Remove(in)
}
