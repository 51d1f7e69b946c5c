package hooks

// Typed dependency variants of UseMemo, generated by cmd/codegen. Each
// compares its dependencies with plain ==, avoiding the []any boxing of the
// general form.

type memo1[D0 comparable, O any] struct {
	d0    D0
	value O
}

func UseMemo1[D0 comparable, O any](in *Instance, d0 D0, compute func(D0) O) O {
	rec, isMount := in.nextHook(hookMemo)
	if !isMount {
		m, ok := rec.memoized.(memo1[D0, O])
		if !ok {
			panic(&HookOrderError{
				Component: in.name,
				Committed: "a memo hook of a different type",
				Rendered:  "a memo hook",
			})
		}
		if m.d0 == d0 {
			return m.value
		}
	}
	v := compute(d0)
	rec.memoized = memo1[D0, O]{d0: d0, value: v}
	rec.hasDeps = true
	return v
}

type memo2[D0, D1 comparable, O any] struct {
	d0    D0
	d1    D1
	value O
}

func UseMemo2[D0, D1 comparable, O any](in *Instance, d0 D0, d1 D1, compute func(D0, D1) O) O {
	rec, isMount := in.nextHook(hookMemo)
	if !isMount {
		m, ok := rec.memoized.(memo2[D0, D1, O])
		if !ok {
			panic(&HookOrderError{
				Component: in.name,
				Committed: "a memo hook of a different type",
				Rendered:  "a memo hook",
			})
		}
		if m.d0 == d0 && m.d1 == d1 {
			return m.value
		}
	}
	v := compute(d0, d1)
	rec.memoized = memo2[D0, D1, O]{d0: d0, d1: d1, value: v}
	rec.hasDeps = true
	return v
}

type memo3[D0, D1, D2 comparable, O any] struct {
	d0    D0
	d1    D1
	d2    D2
	value O
}

func UseMemo3[D0, D1, D2 comparable, O any](in *Instance, d0 D0, d1 D1, d2 D2, compute func(D0, D1, D2) O) O {
	rec, isMount := in.nextHook(hookMemo)
	if !isMount {
		m, ok := rec.memoized.(memo3[D0, D1, D2, O])
		if !ok {
			panic(&HookOrderError{
				Component: in.name,
				Committed: "a memo hook of a different type",
				Rendered:  "a memo hook",
			})
		}
		if m.d0 == d0 && m.d1 == d1 && m.d2 == d2 {
			return m.value
		}
	}
	v := compute(d0, d1, d2)
	rec.memoized = memo3[D0, D1, D2, O]{d0: d0, d1: d1, d2: d2, value: v}
	rec.hasDeps = true
	return v
}

type memo4[D0, D1, D2, D3 comparable, O any] struct {
	d0    D0
	d1    D1
	d2    D2
	d3    D3
	value O
}

func UseMemo4[D0, D1, D2, D3 comparable, O any](in *Instance, d0 D0, d1 D1, d2 D2, d3 D3, compute func(D0, D1, D2, D3) O) O {
	rec, isMount := in.nextHook(hookMemo)
	if !isMount {
		m, ok := rec.memoized.(memo4[D0, D1, D2, D3, O])
		if !ok {
			panic(&HookOrderError{
				Component: in.name,
				Committed: "a memo hook of a different type",
				Rendered:  "a memo hook",
			})
		}
		if m.d0 == d0 && m.d1 == d1 && m.d2 == d2 && m.d3 == d3 {
			return m.value
		}
	}
	v := compute(d0, d1, d2, d3)
	rec.memoized = memo4[D0, D1, D2, D3, O]{d0: d0, d1: d1, d2: d2, d3: d3, value: v}
	rec.hasDeps = true
	return v
}
