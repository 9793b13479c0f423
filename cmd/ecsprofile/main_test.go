package main

import (
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	var cfg config
	require.NoError(t, env.Parse(&cfg))
	require.NoError(t, cfg.validate())

	// The kill phase is quadratic in Entities, keep the default small.
	assert.LessOrEqual(t, cfg.Entities, 250)
	assert.Equal(t, "cpu", cfg.Mode)
}

func TestConfig_Invalid(t *testing.T) {
	t.Parallel()

	for _, cfg := range []config{
		{Mode: "heap", Rounds: 1, Iterations: 1, Entities: 1},
		{Mode: "cpu", Rounds: 0, Iterations: 1, Entities: 1},
		{Mode: "mem", Rounds: 1, Iterations: 1, Entities: -1},
	} {
		require.Error(t, cfg.validate())
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	cfg := config{Mode: "cpu", Path: t.TempDir(), Rounds: 2, Iterations: 3, Entities: 20}
	ops, err := run(cfg)
	require.NoError(t, err)

	// Each cycle creates, integrates, and kills every entity.
	assert.Equal(t, cfg.Rounds*cfg.Iterations*cfg.Entities*3, ops)
}
