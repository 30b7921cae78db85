package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogo(t *testing.T) {
	for _, name := range []string{LogoActive, LogoPaused, LogoDone} {
		resource, err := Logo(name)
		require.NoError(t, err)
		assert.Contains(t, string(resource.Content()), "<svg")

		again := MustLogo(name)
		assert.Same(t, resource, again)
	}
}

func TestLogo_Missing(t *testing.T) {
	_, err := Logo("missing.svg")
	assert.Error(t, err)
	assert.Panics(t, func() { MustLogo("missing.svg") })
}
