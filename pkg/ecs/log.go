package ecs

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/argus-labs/sparse-ecs/pkg/assert"
	"github.com/rs/zerolog"
)

// newLogger builds a logger from the log level and format options.
func newLogger(opts ManagerOptions) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(opts.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}

	var writer io.Writer
	switch opts.LogFormat {
	case LogFormatPretty:
		writer = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	case LogFormatJSON:
		writer = os.Stdout
	case LogFormatUndefined:
		assert.That(false, "unreachable")
		writer = os.Stdout
	}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// LogEntity logs every component attached to an entity at the given level.
func (m *EntityManager) LogEntity(level zerolog.Level, e Entity) {
	event := m.logger.WithLevel(level)
	if event == nil {
		return
	}

	components, err := m.Inspect(e)
	if err != nil {
		m.logger.Err(err).Uint32("entity_id", e.Hash()).Msg("failed to inspect entity")
		return
	}

	dict := zerolog.Dict()
	for _, name := range m.components.names() {
		if data, ok := components[name]; ok {
			dict = dict.RawJSON(name, data)
		}
	}

	event.
		Uint32("entity_id", e.Hash()).
		Bool("alive", m.Alive(e)).
		Int("total_components", len(components)).
		Dict("components", dict).
		Send()
}
