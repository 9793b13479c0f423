package ecs

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests in this file use t.Setenv and can't run in parallel.

func TestLoadManagerConfig_Defaults(t *testing.T) {
	cfg, err := loadManagerConfig(false)
	require.NoError(t, err)

	assert.Equal(t, 128, cfg.SparseCapacity)
	assert.False(t, cfg.RecycleEntityIDs)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadManagerConfig_FromEnv(t *testing.T) {
	t.Setenv("ECS_SPARSE_CAPACITY", "16")
	t.Setenv("ECS_RECYCLE_ENTITY_IDS", "true")
	t.Setenv("ECS_LOG_LEVEL", "debug")
	t.Setenv("ECS_LOG_FORMAT", "pretty")

	cfg, err := loadManagerConfig(false)
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.SparseCapacity)
	assert.True(t, cfg.RecycleEntityIDs)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "pretty", cfg.LogFormat)

	var opts ManagerOptions
	cfg.applyToOptions(&opts)
	assert.Equal(t, ManagerOptions{
		SparseCapacity:   16,
		RecycleEntityIDs: true,
		LogLevel:         "debug",
		LogFormat:        LogFormatPretty,
	}, opts)
}

func TestLoadManagerConfig_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		value      string
		logSetting bool // Only matters when the manager builds its own logger
	}{
		{name: "negative capacity", key: "ECS_SPARSE_CAPACITY", value: "-1"},
		{name: "non-numeric capacity", key: "ECS_SPARSE_CAPACITY", value: "lots"},
		{name: "bad bool", key: "ECS_RECYCLE_ENTITY_IDS", value: "maybe"},
		{name: "bad level", key: "ECS_LOG_LEVEL", value: "loud", logSetting: true},
		{name: "bad format", key: "ECS_LOG_FORMAT", value: "xml", logSetting: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := loadManagerConfig(false)
			require.Error(t, err)

			_, err = NewEntityManager(ManagerOptions{})
			require.Error(t, err)

			// Property: log settings are ignored when a logger is injected.
			nop := zerolog.Nop()
			_, err = loadManagerConfig(true)
			m, mErr := NewEntityManager(ManagerOptions{Logger: &nop})
			if tt.logSetting {
				require.NoError(t, err)
				require.NoError(t, mErr)
				assert.NotNil(t, m)
			} else {
				require.Error(t, err)
				require.Error(t, mErr)
			}
		})
	}
}

func TestNewEntityManager_OptionsOverrideEnv(t *testing.T) {
	t.Setenv("ECS_SPARSE_CAPACITY", "4")
	t.Setenv("ECS_RECYCLE_ENTITY_IDS", "false")

	nop := zerolog.Nop()
	m, err := NewEntityManager(ManagerOptions{SparseCapacity: 2, RecycleEntityIDs: true, Logger: &nop})
	require.NoError(t, err)

	assert.Equal(t, 2, m.components.sparseCapacity)
	assert.True(t, m.allocator.recycle)

	m, err = NewEntityManager(ManagerOptions{Logger: &nop})
	require.NoError(t, err)
	assert.Equal(t, 4, m.components.sparseCapacity)
	assert.False(t, m.allocator.recycle)
}

func TestNewEntityManager_SparseCapacityZeroFromEnv(t *testing.T) {
	t.Setenv("ECS_SPARSE_CAPACITY", "0")

	nop := zerolog.Nop()
	m, err := NewEntityManager(ManagerOptions{Logger: &nop})
	require.NoError(t, err)

	// Property: stores built with no initial sparse capacity still grow on demand.
	e, err := m.CreateEntity()
	require.NoError(t, err)
	require.NoError(t, AddComponent(m, e, testHealth{Value: 1}))
	got, ok := GetComponent[testHealth](m, e)
	require.True(t, ok)
	assert.Equal(t, testHealth{Value: 1}, got)
}

type testHealth struct {
	Value int
}

func (testHealth) Name() string {
	return "test_health"
}

func TestManagerOptions_Validate(t *testing.T) {
	t.Parallel()

	nop := zerolog.Nop()
	tests := []struct {
		name    string
		opts    ManagerOptions
		wantErr bool
	}{
		{
			name:    "defaults are invalid",
			opts:    newDefaultManagerOptions(),
			wantErr: true,
		},
		{
			name: "valid",
			opts: ManagerOptions{SparseCapacity: 8, LogLevel: "warn", LogFormat: LogFormatJSON},
		},
		{
			name:    "negative capacity",
			opts:    ManagerOptions{SparseCapacity: -3, LogLevel: "info", LogFormat: LogFormatJSON},
			wantErr: true,
		},
		{
			name:    "bad level",
			opts:    ManagerOptions{LogLevel: "chatty", LogFormat: LogFormatJSON},
			wantErr: true,
		},
		{
			name:    "missing format",
			opts:    ManagerOptions{LogLevel: "info"},
			wantErr: true,
		},
		{
			name: "logger skips log checks",
			opts: ManagerOptions{Logger: &nop},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.opts.validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestManagerOptions_Apply(t *testing.T) {
	t.Parallel()

	opts := ManagerOptions{SparseCapacity: 128, LogLevel: "info", LogFormat: LogFormatJSON}
	opts.apply(ManagerOptions{LogFormat: LogFormatPretty})

	assert.Equal(t, 128, opts.SparseCapacity)
	assert.Equal(t, "info", opts.LogLevel)
	assert.Equal(t, LogFormatPretty, opts.LogFormat)
	assert.False(t, opts.RecycleEntityIDs)
	assert.Nil(t, opts.Logger)

	opts.apply(ManagerOptions{SparseCapacity: 32, LogLevel: "error", RecycleEntityIDs: true})
	assert.Equal(t, 32, opts.SparseCapacity)
	assert.Equal(t, "error", opts.LogLevel)
	assert.True(t, opts.RecycleEntityIDs)
}

func TestLogFormat(t *testing.T) {
	t.Parallel()

	for _, f := range []LogFormat{LogFormatJSON, LogFormatPretty} {
		assert.Equal(t, f, ParseLogFormat(f.String()))
	}
	assert.Equal(t, LogFormatJSON, ParseLogFormat("JSON"))
	assert.Equal(t, LogFormatUndefined, ParseLogFormat("yaml"))
	assert.Equal(t, "undefined", LogFormatUndefined.String())
	assert.Equal(t, "undefined", LogFormat(42).String())
}
