// Package presentation decides which view variant each host renders.
package presentation

import "zenfocus/internal/core/focustimer"

// View is one rendering variant of the timer.
type View string

const (
	ViewFull            View = "full"
	ViewCompact         View = "compact"
	ViewDetachedFull    View = "detached_full"
	ViewDetachedCompact View = "detached_compact"
	// ViewHiddenDetached is the main host's placeholder while the detached surface is active.
	ViewHiddenDetached View = "hidden_detached"
)

// Context is the host-owned view state.
type Context struct {
	UserMinimized        bool
	DetachedActive       bool
	DetachedSurfaceSmall bool
	// StandaloneHost is set when the process is its own top-level host.
	// It does not change the selected view.
	StandaloneHost bool
}

// Select returns the view variant for the given engine state and context.
func Select(state focustimer.State, ctx Context) View {
	switch {
	case ctx.DetachedActive && ctx.DetachedSurfaceSmall:
		return ViewDetachedCompact
	case ctx.DetachedActive:
		return ViewDetachedFull
	case ctx.UserMinimized:
		return ViewCompact
	default:
		return ViewFull
	}
}

// Plan returns the view for the main host and for the detached surface.
// The detached view is empty when no detached surface is active.
func Plan(state focustimer.State, ctx Context) (host View, detached View) {
	view := Select(state, ctx)
	if !ctx.DetachedActive {
		return view, ""
	}
	return ViewHiddenDetached, view
}

// IsDetached reports whether the view is rendered by a detached surface.
func (view View) IsDetached() bool {
	return view == ViewDetachedFull || view == ViewDetachedCompact
}

// IsCompact reports whether the view uses the small representation.
func (view View) IsCompact() bool {
	return view == ViewCompact || view == ViewDetachedCompact || view == ViewHiddenDetached
}

// CanDetach reports whether a host should offer the detach action.
func (ctx Context) CanDetach() bool {
	return ctx.StandaloneHost && !ctx.DetachedActive
}
