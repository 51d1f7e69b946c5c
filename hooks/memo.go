package hooks

import "reflect"

// UseMemo declares a memoized value recomputed only when deps change. A nil
// deps slice recomputes on every render; a non-nil empty slice computes once
// on mount. Elements are compared by value identity with NaN equal to itself
// and positive and negative zero distinct. A non-comparable element (func,
// map, slice) is reported through the context's error callback and treated
// as changed.
func UseMemo[T any](in *Instance, compute func() T, deps []any) T {
	rec, isMount := in.nextHook(hookMemo)
	if !isMount {
		if !depsChanged(in, rec, deps) {
			v, ok := rec.memoized.(T)
			if !ok {
				panic(&HookOrderError{
					Component: in.name,
					Committed: "a memo hook of a different type",
					Rendered:  "a memo hook",
				})
			}
			return v
		}
	}

	v := compute()
	rec.memoized = v
	rec.hasDeps = deps != nil
	if deps == nil {
		rec.deps = nil
	} else {
		// fresh snapshot: the record may be a clone sharing its backing
		// array with the committed list
		rec.deps = append([]any(nil), deps...)
	}
	return v
}

// UseCallback memoizes a function value by its dependency list, so the same
// value flows to children until a dependency changes.
func UseCallback[F any](in *Instance, fn F, deps []any) F {
	return UseMemo(in, func() F { return fn }, deps)
}

// depsChanged reports whether the new dependency list differs from the
// snapshot. nil always differs; a length mismatch always differs.
func depsChanged(in *Instance, rec *hookRecord, deps []any) bool {
	if deps == nil || !rec.hasDeps || len(deps) != len(rec.deps) {
		return true
	}
	changed := false
	for i, d := range deps {
		if d != nil && !reflect.TypeOf(d).Comparable() {
			in.rc.reportRecoverable(in, &DependencyError{
				Component: in.name,
				Hook:      in.cursor - 1,
				Element:   i,
				Value:     d,
			})
			changed = true
			continue
		}
		if !objectIs(d, rec.deps[i]) {
			changed = true
		}
	}
	return changed
}
