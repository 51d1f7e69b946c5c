package hooks

import "fmt"

// Number of synchronous restarts allowed when a component dispatches to
// itself while it is still rendering. Past this the component is assumed to
// be updating unconditionally and the render is aborted.
const MaxRenderPhaseRestarts = 25

// HookOrderError reports a hook list that no longer matches the committed
// one, either in length or in the kind of hook at some position. It is fatal
// for the render pass that detected it: index-based matching would otherwise
// hand a hook another hook's state.
type HookOrderError struct {
	Component string
	Committed string
	Rendered  string
}

func (e *HookOrderError) Error() string {
	return fmt.Sprintf("hooks: %s rendered %s where the committed tree has %s",
		e.Component, e.Rendered, e.Committed)
}

// RenderLoopError reports a component that kept dispatching to itself on
// every render until the restart cap was hit.
type RenderLoopError struct {
	Component string
	Restarts  int
}

func (e *RenderLoopError) Error() string {
	return fmt.Sprintf("hooks: %s scheduled an update on every render, gave up after %d restarts",
		e.Component, e.Restarts)
}

// DependencyError reports a dependency list element that cannot be compared
// across renders (a func, map, slice, or other non-comparable value). It is
// recoverable: the element is treated as always changed.
type DependencyError struct {
	Component string
	Hook      int
	Element   int
	Value     any
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("hooks: %s hook %d dependency %d has non-comparable type %T",
		e.Component, e.Hook, e.Element, e.Value)
}
