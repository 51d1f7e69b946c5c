package hooks

import (
	"fmt"
	"math"
	"reflect"
)

type hookKind uint8

const (
	hookState hookKind = iota
	hookMemo
)

func (k hookKind) String() string {
	switch k {
	case hookState:
		return "a state hook"
	case hookMemo:
		return "a memo hook"
	default:
		return "an unknown hook"
	}
}

// hookRecord is one stateful call site, persisted across renders of its
// instance. Records live in a growable slice indexed by call order; the
// cursor walking them is reset at the start of every pass.
type hookRecord struct {
	kind     hookKind
	memoized any
	queue    any   // *updateQueue for state hooks
	deps     []any // dependency snapshot for memo hooks
	hasDeps  bool
}

// nextHook consumes the record at the current call position, appending a
// fresh one in mount mode and cloning from the base list in update mode.
// A position past the committed count, or holding a different kind of hook,
// means the component's call order diverged; that is fatal for the pass.
func (in *Instance) nextHook(kind hookKind) (rec *hookRecord, isMount bool) {
	idx := in.cursor
	in.cursor++

	if in.base == nil {
		in.wip = append(in.wip, hookRecord{kind: kind})
		return &in.wip[idx], true
	}

	if idx >= len(in.base) {
		panic(&HookOrderError{
			Component: in.name,
			Committed: fmt.Sprintf("%d hooks", len(in.base)),
			Rendered:  fmt.Sprintf("at least %d hooks", idx+1),
		})
	}
	src := in.base[idx]
	if src.kind != kind {
		panic(&HookOrderError{
			Component: in.name,
			Committed: src.kind.String(),
			Rendered:  kind.String(),
		})
	}
	in.wip = append(in.wip, src)
	return &in.wip[idx], false
}

// objectIs compares two values the way dependency snapshots and state
// bailouts need: NaN equals itself, positive and negative zero differ, and
// everything else is plain value identity. Values of non-comparable dynamic
// type never compare equal.
func objectIs(a, b any) bool {
	switch x := a.(type) {
	case float64:
		y, ok := b.(float64)
		if !ok {
			return false
		}
		return floatIs(x, y)
	case float32:
		y, ok := b.(float32)
		if !ok {
			return false
		}
		return floatIs(float64(x), float64(y))
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

func floatIs(x, y float64) bool {
	if math.IsNaN(x) {
		return math.IsNaN(y)
	}
	if x == 0 && y == 0 {
		return math.Signbit(x) == math.Signbit(y)
	}
	return x == y
}
