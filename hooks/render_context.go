package hooks

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
)

// OnErrorFunc receives recoverable diagnostics and, for driver-less render
// contexts, fatal render errors. from is the instance the problem belongs to.
type OnErrorFunc func(from *Instance, err error)

// ComponentFunc is the body of a component. It is re-invoked on every render
// and must call its hooks in the same order each time.
type ComponentFunc func(in *Instance) error

// RenderContext drives the render cycle for a set of component instances.
// It is an explicit value threaded through every hook call rather than a
// package-level global, so independent contexts can run side by side.
type RenderContext struct {
	sched     *BatchScheduler
	onError   OnErrorFunc
	logger    *zap.Logger
	rendering *Instance
	seq       uint64
}

// CreateRenderContext builds a context. schedule is the render driver's
// entry point, called at most once per instance per flush; pass nil to have
// the context re-render pending instances itself, synchronously, at flush.
func CreateRenderContext(schedule ScheduleFunc, onError OnErrorFunc) *RenderContext {
	rc := &RenderContext{
		onError: onError,
		logger:  zap.NewNop(),
	}
	rc.sched = newBatchScheduler(rc, schedule)
	return rc
}

// SetLogger installs a logger for recoverable diagnostics. The default is a
// no-op logger.
func (rc *RenderContext) SetLogger(logger *zap.Logger) {
	if logger != nil {
		rc.logger = logger
	}
}

// StartBatch opens a batching scope. Dispatches inside the scope only add to
// the pending set; nothing is scheduled until the outermost scope closes.
func (rc *RenderContext) StartBatch() { rc.sched.startBatch() }

// EndBatch closes a batching scope, flushing if it was the outermost one.
func (rc *RenderContext) EndBatch() { rc.sched.endBatch() }

// Batch runs cb inside a batching scope.
func (rc *RenderContext) Batch(cb func()) {
	rc.StartBatch()
	defer rc.EndBatch()
	cb()
}

// Instance is the runtime record of one mounted component: its hook list,
// the committed and work-in-progress copies of that list, and the render
// bookkeeping the context needs. A hook list is exclusively owned by its
// instance.
type Instance struct {
	rc   *RenderContext
	id   uint64
	name string
	fn   ComponentFunc

	current []hookRecord // committed on the last successful render
	wip     []hookRecord // being built by the pass in flight
	base    []hookRecord // clone source for the pass, nil on first mount pass

	cursor             int
	mounted            bool
	alive              bool
	renderLanes        Lane
	renderPhaseUpdated bool
	changed            bool
	pendingLanes       Lane
}

// Component registers a new instance for fn. The instance is in mount mode
// until its first successful render commits.
func (rc *RenderContext) Component(name string, fn ComponentFunc) *Instance {
	rc.seq++
	return &Instance{
		rc:    rc,
		id:    xxhash.Sum64String(fmt.Sprintf("%s/%d", name, rc.seq)),
		name:  name,
		fn:    fn,
		alive: true,
	}
}

func (in *Instance) Name() string { return in.name }
func (in *Instance) ID() uint64   { return in.id }

// Mounted reports whether at least one render has committed.
func (in *Instance) Mounted() bool { return in.mounted }

// Alive reports whether the instance has not been unmounted.
func (in *Instance) Alive() bool { return in.alive }

// PendingLanes reports lanes with updates that were skipped by the last
// render because they were outside its lane set. The driver should schedule
// a follow-up render that includes them.
func (in *Instance) PendingLanes() Lane { return in.pendingLanes }

// Render runs one render pass over the default lane set.
func (rc *RenderContext) Render(in *Instance) (changed bool, err error) {
	return rc.RenderLanes(in, SyncLane)
}

// RenderLanes invokes the component function, replaying pending state
// updates whose lane is in lanes and retrying render-phase dispatches in
// place. On success the work-in-progress hook list is committed. changed
// reports whether any state hook's value differs from the previous commit,
// which is what a driver uses to decide whether descendants need revisiting.
//
// Fatal conditions (hook order violations, the restart cap) abort the pass,
// leave the previously committed list untouched, and are returned to the
// caller.
func (rc *RenderContext) RenderLanes(in *Instance, lanes Lane) (changed bool, err error) {
	if !in.alive {
		rc.logger.Warn("render of unmounted instance skipped",
			zap.String("component", in.name), zap.Uint64("id", in.id))
		return false, nil
	}

	prev := rc.rendering
	rc.rendering = in
	defer func() { rc.rendering = prev }()

	defer func() {
		if r := recover(); r != nil {
			if oe, ok := r.(*HookOrderError); ok {
				changed, err = false, oe
				return
			}
			panic(r)
		}
	}()

	if in.mounted {
		in.base = in.current
	} else {
		in.base = nil
	}
	in.changed = !in.mounted
	in.pendingLanes = 0

	restarts := 0
	for {
		in.cursor = 0
		in.wip = in.wip[:0]
		in.renderLanes = lanes
		in.renderPhaseUpdated = false

		if err := in.fn(in); err != nil {
			return false, err
		}
		if in.base != nil && in.cursor != len(in.base) {
			return false, &HookOrderError{
				Component: in.name,
				Committed: fmt.Sprintf("%d hooks", len(in.base)),
				Rendered:  fmt.Sprintf("%d hooks", in.cursor),
			}
		}
		if !in.renderPhaseUpdated {
			break
		}
		restarts++
		if restarts >= MaxRenderPhaseRestarts {
			return false, &RenderLoopError{Component: in.name, Restarts: restarts}
		}
		// Restart in place. Later passes clone from this pass's list so the
		// queues created by a first mount pass survive the retry.
		in.base = append([]hookRecord(nil), in.wip...)
	}

	in.current = append(in.current[:0], in.wip...)
	in.mounted = true
	return in.changed, nil
}

// Unmount tears the instance down. Its hook storage is discarded wholesale;
// dispatches arriving afterwards are dropped.
func (rc *RenderContext) Unmount(in *Instance) {
	if !in.alive {
		return
	}
	in.alive = false
	in.current = nil
	in.wip = nil
	in.base = nil
	rc.sched.forget(in)
}

func (rc *RenderContext) reportRecoverable(in *Instance, err error) {
	rc.logger.Warn("recoverable hook error", zap.String("component", in.name), zap.Error(err))
	if rc.onError != nil {
		rc.onError(in, err)
	}
}
