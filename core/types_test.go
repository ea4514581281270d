package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/onlinealg/ksline/core"
)

func TestRequestSimple(t *testing.T) {
	r := core.NewSimpleRequest(4)
	require.True(t, r.IsSimple())
	require.Equal(t, core.Simple, r.Kind())
	require.Equal(t, core.Position(4), r.ServicePosition())
	require.Equal(t, core.Position(4), r.ReleasePosition())
}

func TestRequestRelocation(t *testing.T) {
	r := core.NewRelocationRequest(2, 4)
	require.False(t, r.IsSimple())
	require.Equal(t, core.Relocation, r.Kind())
	require.Equal(t, core.Position(2), r.ServicePosition())
	require.Equal(t, core.Position(4), r.ReleasePosition())
}

func TestRequestDegenerateRelocationIsSimpleShaped(t *testing.T) {
	// A Relocation with s==t behaves like Simple for any position query,
	// even though Kind() still reports Relocation.
	r := core.NewRelocationRequest(5, 5)
	require.Equal(t, r.ServicePosition(), r.ReleasePosition())
}

func TestServerConfigurationBasics(t *testing.T) {
	c := core.NewServerConfiguration([]core.Position{10, 20, 30})
	require.Equal(t, 3, c.Len())
	require.Equal(t, core.Position(20), c.At(1))

	positions := c.Positions()
	positions[0] = 999
	require.Equal(t, core.Position(10), c.At(0), "Positions() must return a copy, not a live view")
}
