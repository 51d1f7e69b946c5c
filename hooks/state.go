package hooks

import "go.uber.org/zap"

// Lane is a coarse priority tag on an update. The replay loop applies
// updates whose lane is in the render's lane set and carries the rest to a
// later render.
type Lane uint8

const (
	SyncLane Lane = 1 << iota
	DeferredLane

	AllLanes Lane = SyncLane | DeferredLane
)

// Reducer folds an action into the current state.
type Reducer[S, A any] func(state S, action A) S

type update[S, A any] struct {
	lane          Lane
	action        A
	hasEagerState bool
	eagerState    S
	next          *update[S, A]
}

// updateQueue holds everything a state hook keeps between renders. pending
// is the tail of a circular singly-linked list (pending.next is the oldest
// entry), so appending is O(1) and replay order stays FIFO. baseHead holds
// updates carried over from a render that skipped their lane; baseState is
// the state as of the first carried entry.
type updateQueue[S comparable, A any] struct {
	owner *Instance

	pending  *update[S, A]
	baseHead *update[S, A]
	baseTail *update[S, A]

	baseState           S
	lastRenderedReducer Reducer[S, A]
	lastRenderedState   S
	dispatcher          any
}

func (q *updateQueue[S, A]) splicePending(u *update[S, A]) {
	if q.pending == nil {
		u.next = u
	} else {
		u.next = q.pending.next
		q.pending.next = u
	}
	q.pending = u
}

// dispatch is the single entry point for updates arriving from dispatcher
// closures, inside or outside a render.
func (q *updateQueue[S, A]) dispatch(action A, lane Lane) {
	in := q.owner
	rc := in.rc

	if !in.alive {
		// Async callbacks racing an unmount are expected; drop and note it.
		rc.logger.Warn("dispatch after unmount dropped",
			zap.String("component", in.name), zap.Uint64("id", in.id))
		return
	}

	u := &update[S, A]{lane: lane, action: action}

	if rc.rendering == in {
		// The instance is dispatching to itself mid-render. Buffer the
		// update and let the render loop restart in place.
		q.splicePending(u)
		in.renderPhaseUpdated = true
		return
	}

	wasEmpty := q.pending == nil
	q.splicePending(u)

	if wasEmpty && q.baseHead == nil {
		// The queue held no other work, so the outcome of this update can be
		// computed now. If it lands on the current state there is nothing to
		// render; either way the value is kept so replay can skip the
		// reducer.
		eager := q.lastRenderedReducer(q.lastRenderedState, action)
		u.hasEagerState = true
		u.eagerState = eager
		if objectIs(any(eager), any(q.lastRenderedState)) {
			return
		}
	}

	rc.sched.enqueue(in)
}

// replay merges newly pending updates into the base queue and folds the
// whole queue into a new state. Updates outside the render's lane set are
// cloned unconsumed onto the next base queue, together with everything after
// the first skip so a later render replays them in the original order.
func (q *updateQueue[S, A]) replay(in *Instance, rec *hookRecord) S {
	if q.pending != nil {
		first := q.pending.next
		q.pending.next = nil
		if q.baseTail == nil {
			q.baseHead = first
		} else {
			q.baseTail.next = first
		}
		q.baseTail = q.pending
		q.pending = nil
	}

	state := q.baseState
	newBaseState := state
	var newHead, newTail *update[S, A]
	skipped := false

	for u := q.baseHead; u != nil; u = u.next {
		if u.lane&in.renderLanes == 0 {
			clone := &update[S, A]{lane: u.lane, action: u.action}
			if !skipped {
				skipped = true
				newBaseState = state
			}
			if newTail == nil {
				newHead = clone
			} else {
				newTail.next = clone
			}
			newTail = clone
			in.pendingLanes |= u.lane
			continue
		}
		if skipped {
			// Already applied this pass, but it must rebase on top of the
			// carried entries when they finally run.
			clone := &update[S, A]{
				lane:          u.lane,
				action:        u.action,
				hasEagerState: u.hasEagerState,
				eagerState:    u.eagerState,
			}
			if newTail == nil {
				newHead = clone
			} else {
				newTail.next = clone
			}
			newTail = clone
		}
		if u.hasEagerState {
			state = u.eagerState
		} else {
			state = q.lastRenderedReducer(state, u.action)
		}
	}

	if !skipped {
		newBaseState = state
	}
	q.baseHead, q.baseTail = newHead, newTail
	q.baseState = newBaseState

	prev := rec.memoized.(S)
	if !objectIs(any(prev), any(state)) {
		in.changed = true
	}
	rec.memoized = state
	q.lastRenderedState = state
	return state
}

// stateAction carries either a replacement value or an updater function,
// folded by basicStateReducer.
type stateAction[S any] struct {
	value S
	fn    func(S) S
}

func basicStateReducer[S comparable](state S, a stateAction[S]) S {
	if a.fn != nil {
		return a.fn(state)
	}
	return a.value
}

// StateDispatcher writes to one state hook's queue. The value returned by
// UseState is the same dispatcher on every render, so it is safe to capture
// in long-lived callbacks. Prefer Update over Set whenever the next value
// depends on the latest one; the value visible at dispatch time may already
// be stale.
type StateDispatcher[S comparable] struct {
	q *updateQueue[S, stateAction[S]]
}

// Set replaces the state with v.
func (d *StateDispatcher[S]) Set(v S) {
	d.q.dispatch(stateAction[S]{value: v}, SyncLane)
}

// Update replaces the state with fn applied to the latest state.
func (d *StateDispatcher[S]) Update(fn func(S) S) {
	d.q.dispatch(stateAction[S]{fn: fn}, SyncLane)
}

// SetDeferred is Set on the deferred lane: the update waits for a render
// whose lane set includes DeferredLane.
func (d *StateDispatcher[S]) SetDeferred(v S) {
	d.q.dispatch(stateAction[S]{value: v}, DeferredLane)
}

// UpdateDeferred is Update on the deferred lane.
func (d *StateDispatcher[S]) UpdateDeferred(fn func(S) S) {
	d.q.dispatch(stateAction[S]{fn: fn}, DeferredLane)
}

// UseState declares a state hook holding initial on mount.
func UseState[S comparable](in *Instance, initial S) (S, *StateDispatcher[S]) {
	return UseStateLazy(in, func() S { return initial })
}

// UseStateLazy is UseState with a lazy initializer, invoked exactly once on
// mount and never again.
func UseStateLazy[S comparable](in *Instance, init func() S) (S, *StateDispatcher[S]) {
	rec, isMount := in.nextHook(hookState)
	if isMount {
		v := init()
		q := &updateQueue[S, stateAction[S]]{
			owner:               in,
			baseState:           v,
			lastRenderedReducer: basicStateReducer[S],
			lastRenderedState:   v,
		}
		q.dispatcher = &StateDispatcher[S]{q: q}
		rec.memoized = v
		rec.queue = q
		return v, q.dispatcher.(*StateDispatcher[S])
	}

	q := stateQueue[S, stateAction[S]](in, rec)
	return q.replay(in, rec), q.dispatcher.(*StateDispatcher[S])
}

// Dispatcher feeds actions to one reducer hook's queue. Like
// StateDispatcher it is referentially stable across renders.
type Dispatcher[S comparable, A any] struct {
	q *updateQueue[S, A]
}

// Dispatch enqueues an action on the default lane.
func (d *Dispatcher[S, A]) Dispatch(action A) {
	d.q.dispatch(action, SyncLane)
}

// DispatchDeferred enqueues an action on the deferred lane.
func (d *Dispatcher[S, A]) DispatchDeferred(action A) {
	d.q.dispatch(action, DeferredLane)
}

// UseReducer declares a reducer hook with an initial state.
func UseReducer[S comparable, A any](in *Instance, reducer Reducer[S, A], initial S) (S, *Dispatcher[S, A]) {
	return UseReducerInit(in, reducer, initial, func(s S) S { return s })
}

// UseReducerInit derives the mount state by running init over initialArg,
// once.
func UseReducerInit[S comparable, A any, I any](in *Instance, reducer Reducer[S, A], initialArg I, init func(I) S) (S, *Dispatcher[S, A]) {
	rec, isMount := in.nextHook(hookState)
	if isMount {
		v := init(initialArg)
		q := &updateQueue[S, A]{
			owner:               in,
			baseState:           v,
			lastRenderedReducer: reducer,
			lastRenderedState:   v,
		}
		q.dispatcher = &Dispatcher[S, A]{q: q}
		rec.memoized = v
		rec.queue = q
		return v, q.dispatcher.(*Dispatcher[S, A])
	}

	q := stateQueue[S, A](in, rec)
	q.lastRenderedReducer = reducer
	return q.replay(in, rec), q.dispatcher.(*Dispatcher[S, A])
}

// stateQueue recovers the typed queue from a cloned record. A type mismatch
// means a different hook now occupies this position.
func stateQueue[S comparable, A any](in *Instance, rec *hookRecord) *updateQueue[S, A] {
	q, ok := rec.queue.(*updateQueue[S, A])
	if !ok {
		panic(&HookOrderError{
			Component: in.name,
			Committed: "a state hook of a different type",
			Rendered:  "a state hook",
		})
	}
	return q
}
