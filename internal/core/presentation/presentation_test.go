package presentation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"zenfocus/internal/core/focustimer"
)

var allStates = []focustimer.State{
	focustimer.StateIdle,
	focustimer.StateRunning,
	focustimer.StatePaused,
	focustimer.StateFinished,
}

func TestSelect_Priority(t *testing.T) {
	cases := []struct {
		name string
		ctx  Context
		want View
	}{
		{"default", Context{}, ViewFull},
		{"minimized", Context{UserMinimized: true}, ViewCompact},
		{"detached", Context{DetachedActive: true}, ViewDetachedFull},
		{"detached and minimized", Context{DetachedActive: true, UserMinimized: true}, ViewDetachedFull},
		{"detached small", Context{DetachedActive: true, DetachedSurfaceSmall: true}, ViewDetachedCompact},
		{"small without detach", Context{DetachedSurfaceSmall: true}, ViewFull},
		{"standalone", Context{StandaloneHost: true}, ViewFull},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, state := range allStates {
				assert.Equal(t, tc.want, Select(state, tc.ctx), "state %s", state)
			}
		})
	}
}

func TestSelect_DetachedSmallIgnoresMinimized(t *testing.T) {
	for _, state := range allStates {
		for _, minimized := range []bool{false, true} {
			for _, standalone := range []bool{false, true} {
				ctx := Context{
					UserMinimized:        minimized,
					DetachedActive:       true,
					DetachedSurfaceSmall: true,
					StandaloneHost:       standalone,
				}
				assert.Equal(t, ViewDetachedCompact, Select(state, ctx))
			}
		}
	}
}

func TestPlan_NeverRendersFullTwice(t *testing.T) {
	main, detached := Plan(focustimer.StateRunning, Context{DetachedActive: true})
	assert.Equal(t, ViewHiddenDetached, main)
	assert.Equal(t, ViewDetachedFull, detached)

	main, detached = Plan(focustimer.StateRunning, Context{})
	assert.Equal(t, ViewFull, main)
	assert.Empty(t, detached)

	main, detached = Plan(focustimer.StateIdle, Context{UserMinimized: true})
	assert.Equal(t, ViewCompact, main)
	assert.Empty(t, detached)
}

func TestView_Helpers(t *testing.T) {
	assert.True(t, ViewDetachedCompact.IsDetached())
	assert.False(t, ViewHiddenDetached.IsDetached())
	assert.True(t, ViewHiddenDetached.IsCompact())
	assert.False(t, ViewFull.IsCompact())

	assert.True(t, Context{StandaloneHost: true}.CanDetach())
	assert.False(t, Context{StandaloneHost: true, DetachedActive: true}.CanDetach())
	assert.False(t, Context{}.CanDetach())
}
