package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigRoundTrip(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { os.Chdir(wd) })
	require.NoError(t, os.Chdir(t.TempDir()))

	_, err = NewConfig()
	require.ErrorIs(t, err, ErrCfg)

	require.NoError(t, NewDefaultConfig())

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.False(t, cfg.Base.Debug)
	assert.Equal(t, int64(10<<20), cfg.Base.SizeLimit)
	assert.Equal(t, int64(30), cfg.Base.Timeout)
}
