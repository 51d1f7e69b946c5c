package hooks_test

import (
	"math"
	"testing"

	"github.com/delaneyj/hookparty/hooks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoRecomputesOnlyWhenDepsChange(t *testing.T) {
	rc := hooks.CreateRenderContext(func(in *hooks.Instance) {}, nil)

	computes := 0
	dep := 1
	var got int
	comp := rc.Component("doubler", func(in *hooks.Instance) error {
		got = hooks.UseMemo(in, func() int {
			computes++
			return dep * 10
		}, []any{dep})
		return nil
	})

	_, err := rc.Render(comp)
	require.NoError(t, err)
	assert.Equal(t, 1, computes)
	assert.Equal(t, 10, got)

	_, err = rc.Render(comp)
	require.NoError(t, err)
	assert.Equal(t, 1, computes)
	assert.Equal(t, 10, got)

	dep = 2
	_, err = rc.Render(comp)
	require.NoError(t, err)
	assert.Equal(t, 2, computes)
	assert.Equal(t, 20, got)
}

// nil deps recompute every render; empty deps compute once
func TestMemoNilVersusEmptyDeps(t *testing.T) {
	rc := hooks.CreateRenderContext(func(in *hooks.Instance) {}, nil)

	always, once := 0, 0
	comp := rc.Component("both", func(in *hooks.Instance) error {
		hooks.UseMemo(in, func() int { always++; return always }, nil)
		hooks.UseMemo(in, func() int { once++; return once }, []any{})
		return nil
	})

	for i := 0; i < 3; i++ {
		_, err := rc.Render(comp)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, always)
	assert.Equal(t, 1, once)
}

// NaN is equal to itself in a dependency list
func TestMemoNaNDependencyIsStable(t *testing.T) {
	rc := hooks.CreateRenderContext(func(in *hooks.Instance) {}, nil)

	computes := 0
	comp := rc.Component("nan", func(in *hooks.Instance) error {
		hooks.UseMemo(in, func() int { computes++; return 0 }, []any{math.NaN()})
		return nil
	})

	_, err := rc.Render(comp)
	require.NoError(t, err)
	_, err = rc.Render(comp)
	require.NoError(t, err)
	assert.Equal(t, 1, computes)
}

// positive and negative zero are distinct dependencies
func TestMemoSignedZeroDependencyDiffers(t *testing.T) {
	rc := hooks.CreateRenderContext(func(in *hooks.Instance) {}, nil)

	computes := 0
	dep := 0.0
	comp := rc.Component("zero", func(in *hooks.Instance) error {
		hooks.UseMemo(in, func() int { computes++; return 0 }, []any{dep})
		return nil
	})

	_, err := rc.Render(comp)
	require.NoError(t, err)
	dep = math.Copysign(0, -1)
	_, err = rc.Render(comp)
	require.NoError(t, err)
	assert.Equal(t, 2, computes)
}

// a map in the dependency list cannot be compared across renders: reported
// through the error callback, treated as changed
func TestMemoNonComparableDependencyReported(t *testing.T) {
	var reported error
	rc := hooks.CreateRenderContext(func(in *hooks.Instance) {}, func(in *hooks.Instance, err error) {
		reported = err
	})

	computes := 0
	opts := map[string]int{"a": 1}
	comp := rc.Component("mapdep", func(in *hooks.Instance) error {
		hooks.UseMemo(in, func() int { computes++; return 0 }, []any{opts})
		return nil
	})

	_, err := rc.Render(comp)
	require.NoError(t, err)
	assert.Nil(t, reported) // mount never compares

	_, err = rc.Render(comp)
	require.NoError(t, err)
	assert.Equal(t, 2, computes)

	var de *hooks.DependencyError
	require.ErrorAs(t, reported, &de)
	assert.Equal(t, "mapdep", de.Component)
	assert.Equal(t, 0, de.Element)
}

// the memoized callback keeps the values it closed over until a dependency
// changes
func TestCallbackIdentityFollowsDeps(t *testing.T) {
	rc := hooks.CreateRenderContext(func(in *hooks.Instance) {}, nil)

	label := "a"
	dep := 1
	var fn func() string
	comp := rc.Component("handler", func(in *hooks.Instance) error {
		l := label
		fn = hooks.UseCallback(in, func() string { return l }, []any{dep})
		return nil
	})

	_, err := rc.Render(comp)
	require.NoError(t, err)
	assert.Equal(t, "a", fn())

	label = "b"
	_, err = rc.Render(comp)
	require.NoError(t, err)
	assert.Equal(t, "a", fn()) // same deps, same callback

	dep = 2
	_, err = rc.Render(comp)
	require.NoError(t, err)
	assert.Equal(t, "b", fn())
}

// memo over state: derived value tracks the state it depends on
func TestMemoOverState(t *testing.T) {
	var rc *hooks.RenderContext
	rc = hooks.CreateRenderContext(func(in *hooks.Instance) { rc.Render(in) }, nil)

	computes := 0
	var got int
	var set *hooks.StateDispatcher[int]
	comp := rc.Component("derived", func(in *hooks.Instance) error {
		var v int
		v, set = hooks.UseState(in, 3)
		got = hooks.UseMemo(in, func() int {
			computes++
			return v * v
		}, []any{v})
		return nil
	})

	_, err := rc.Render(comp)
	require.NoError(t, err)
	assert.Equal(t, 9, got)

	set.Set(3) // eager bailout, no render, no recompute
	assert.Equal(t, 1, computes)

	set.Set(4)
	assert.Equal(t, 16, got)
	assert.Equal(t, 2, computes)
}
