package hooks_test

import (
	"errors"
	"testing"

	"github.com/delaneyj/hookparty/hooks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMountThenUpdate(t *testing.T) {
	rc := hooks.CreateRenderContext(func(in *hooks.Instance) {}, nil)

	renders := 0
	var got int
	var set *hooks.StateDispatcher[int]
	counter := rc.Component("counter", func(in *hooks.Instance) error {
		renders++
		got, set = hooks.UseState(in, 7)
		return nil
	})

	require.False(t, counter.Mounted())
	changed, err := rc.Render(counter)
	require.NoError(t, err)
	assert.True(t, changed) // first commit always counts as changed
	assert.True(t, counter.Mounted())
	assert.Equal(t, 7, got)
	assert.Equal(t, 1, renders)

	// no dispatches in between, value must be stable and changed false
	changed, err = rc.Render(counter)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 7, got)

	set.Set(8)
	changed, err = rc.Render(counter)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 8, got)
}

// fewer hooks on the second render than the first
func TestHookCountMismatchIsFatal(t *testing.T) {
	rc := hooks.CreateRenderContext(func(in *hooks.Instance) {}, nil)

	skipSecond := false
	comp := rc.Component("conditional", func(in *hooks.Instance) error {
		hooks.UseState(in, 1)
		if !skipSecond {
			hooks.UseState(in, 2)
		}
		return nil
	})

	_, err := rc.Render(comp)
	require.NoError(t, err)

	skipSecond = true
	_, err = rc.Render(comp)
	var oe *hooks.HookOrderError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, "conditional", oe.Component)

	// the committed list from the good render survives the failed pass
	skipSecond = false
	changed, err := rc.Render(comp)
	require.NoError(t, err)
	assert.False(t, changed)
}

// a state hook position taken over by a memo hook
func TestHookKindMismatchIsFatal(t *testing.T) {
	rc := hooks.CreateRenderContext(func(in *hooks.Instance) {}, nil)

	swap := false
	comp := rc.Component("swapper", func(in *hooks.Instance) error {
		if swap {
			hooks.UseMemo(in, func() int { return 1 }, []any{})
		} else {
			hooks.UseState(in, 1)
		}
		return nil
	})

	_, err := rc.Render(comp)
	require.NoError(t, err)

	swap = true
	_, err = rc.Render(comp)
	var oe *hooks.HookOrderError
	require.ErrorAs(t, err, &oe)
}

// dispatching to yourself while rendering restarts in place; a component
// that converges commits in a single Render call
func TestRenderPhaseUpdateConverges(t *testing.T) {
	rc := hooks.CreateRenderContext(func(in *hooks.Instance) {}, nil)

	passes := 0
	var got int
	comp := rc.Component("stepper", func(in *hooks.Instance) error {
		passes++
		v, set := hooks.UseState(in, 0)
		if v < 3 {
			set.Update(func(v int) int { return v + 1 })
		}
		got = v
		return nil
	})

	changed, err := rc.Render(comp)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 3, got)
	assert.Equal(t, 4, passes)
}

// dispatching on every pass trips the restart cap
func TestRenderPhaseUpdateLoopAborts(t *testing.T) {
	rc := hooks.CreateRenderContext(func(in *hooks.Instance) {}, nil)

	comp := rc.Component("runaway", func(in *hooks.Instance) error {
		_, set := hooks.UseState(in, 0)
		set.Update(func(v int) int { return v + 1 })
		return nil
	})

	_, err := rc.Render(comp)
	var le *hooks.RenderLoopError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, hooks.MaxRenderPhaseRestarts, le.Restarts)
}

func TestComponentErrorPassesThrough(t *testing.T) {
	rc := hooks.CreateRenderContext(func(in *hooks.Instance) {}, nil)

	boom := errors.New("boom")
	comp := rc.Component("broken", func(in *hooks.Instance) error {
		hooks.UseState(in, 1)
		return boom
	})

	_, err := rc.Render(comp)
	require.ErrorIs(t, err, boom)
}

func TestUnmountedInstanceRenderIsNoop(t *testing.T) {
	rc := hooks.CreateRenderContext(func(in *hooks.Instance) {}, nil)

	renders := 0
	comp := rc.Component("gone", func(in *hooks.Instance) error {
		renders++
		hooks.UseState(in, 1)
		return nil
	})

	_, err := rc.Render(comp)
	require.NoError(t, err)

	rc.Unmount(comp)
	assert.False(t, comp.Alive())

	changed, err := rc.Render(comp)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 1, renders)
}

// nil schedule makes the context its own driver: dispatches outside a batch
// re-render synchronously before the dispatch call returns
func TestDefaultDriverRendersSynchronously(t *testing.T) {
	rc := hooks.CreateRenderContext(nil, nil)

	var got int
	var set *hooks.StateDispatcher[int]
	comp := rc.Component("counter", func(in *hooks.Instance) error {
		got, set = hooks.UseState(in, 0)
		return nil
	})

	_, err := rc.Render(comp)
	require.NoError(t, err)

	set.Set(41)
	assert.Equal(t, 41, got)

	rc.Batch(func() {
		set.Set(42)
		assert.Equal(t, 41, got) // not yet
	})
	assert.Equal(t, 42, got)
}

// the default driver routes fatal render errors to the error callback
func TestDefaultDriverReportsFatalErrors(t *testing.T) {
	var reported error
	rc := hooks.CreateRenderContext(nil, func(in *hooks.Instance, err error) {
		reported = err
	})

	skipSecond := false
	var set *hooks.StateDispatcher[int]
	comp := rc.Component("conditional", func(in *hooks.Instance) error {
		_, set = hooks.UseState(in, 0)
		if !skipSecond {
			hooks.UseState(in, 1)
		}
		return nil
	})

	_, err := rc.Render(comp)
	require.NoError(t, err)

	skipSecond = true
	set.Set(1)
	var oe *hooks.HookOrderError
	require.ErrorAs(t, reported, &oe)
}

// two contexts never see each other's instances
func TestContextsAreIndependent(t *testing.T) {
	scheduledA, scheduledB := 0, 0
	var rcA, rcB *hooks.RenderContext
	rcA = hooks.CreateRenderContext(func(in *hooks.Instance) {
		scheduledA++
		rcA.Render(in)
	}, nil)
	rcB = hooks.CreateRenderContext(func(in *hooks.Instance) {
		scheduledB++
		rcB.Render(in)
	}, nil)

	var setA, setB *hooks.StateDispatcher[int]
	a := rcA.Component("a", func(in *hooks.Instance) error {
		_, setA = hooks.UseState(in, 0)
		return nil
	})
	b := rcB.Component("b", func(in *hooks.Instance) error {
		_, setB = hooks.UseState(in, 0)
		return nil
	})

	_, err := rcA.Render(a)
	require.NoError(t, err)
	_, err = rcB.Render(b)
	require.NoError(t, err)

	rcA.StartBatch()
	setA.Set(1)
	setB.Set(1) // rcB has no open batch, flushes immediately
	assert.Equal(t, 0, scheduledA)
	assert.Equal(t, 1, scheduledB)
	rcA.EndBatch()
	assert.Equal(t, 1, scheduledA)

	assert.NotEqual(t, a.ID(), b.ID())
}
