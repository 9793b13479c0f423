// Command ecsprofile runs a create/add/query/kill workload against an EntityManager under the
// profiler.
//
// KillEntity scans the live entity list to keep creation order, so killing every entity of a cycle
// is quadratic in ECSPROFILE_ENTITIES. Large values make the profile mostly measure that scan.
//
//	go build ./cmd/ecsprofile
//	ECSPROFILE_MODE=mem ./ecsprofile
//	go tool pprof -http=":8000" -nodefraction=0.001 ./ecsprofile mem.pprof
package main

import (
	"os"
	"time"

	"github.com/argus-labs/sparse-ecs/pkg/ecs"
	"github.com/caarlos0/env/v11"
	"github.com/pkg/profile"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

type config struct {
	// Profile to record ("cpu", "mem").
	Mode string `env:"ECSPROFILE_MODE" envDefault:"cpu"`

	// Directory the profile is written to.
	Path string `env:"ECSPROFILE_PATH" envDefault:"."`

	// Number of managers created over the run.
	Rounds int `env:"ECSPROFILE_ROUNDS" envDefault:"50"`

	// Create/query/kill cycles per manager.
	Iterations int `env:"ECSPROFILE_ITERATIONS" envDefault:"800"`

	// Entities created per cycle.
	Entities int `env:"ECSPROFILE_ENTITIES" envDefault:"250"`
}

func (cfg *config) validate() error {
	if cfg.Mode != "cpu" && cfg.Mode != "mem" {
		return eris.Errorf("invalid profile mode: %s (must be 'cpu' or 'mem')", cfg.Mode)
	}
	if cfg.Rounds <= 0 || cfg.Iterations <= 0 || cfg.Entities <= 0 {
		return eris.New("rounds, iterations, and entities must be positive")
	}
	return nil
}

type position struct {
	X, Y float64
}

func (position) Name() string { return "position" }

type velocity struct {
	X, Y float64
}

func (velocity) Name() string { return "velocity" }

type tags struct {
	Values []string
}

func (tags) Name() string { return "tags" }

func (t tags) Clone() tags {
	return tags{Values: append([]string(nil), t.Values...)}
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		logger.Fatal().Err(err).Msg("failed to parse config")
	}
	if err := cfg.validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	mode := profile.CPUProfile
	if cfg.Mode == "mem" {
		mode = profile.MemProfileAllocs
	}
	p := profile.Start(mode, profile.ProfilePath(cfg.Path), profile.NoShutdownHook, profile.Quiet)

	start := time.Now()
	ops, err := run(cfg)
	p.Stop()
	if err != nil {
		logger.Fatal().Err(err).Msg("workload failed")
	}

	logger.Info().
		Str("mode", cfg.Mode).
		Str("path", cfg.Path).
		Int("ops", ops).
		Dur("elapsed", time.Since(start)).
		Msg("profile written")
}

// run executes the workload and returns the number of entity operations performed.
func run(cfg config) (int, error) {
	nop := zerolog.Nop()
	ops := 0

	for range cfg.Rounds {
		m, err := ecs.NewEntityManager(ecs.ManagerOptions{
			SparseCapacity:   cfg.Entities,
			RecycleEntityIDs: true,
			Logger:           &nop,
		})
		if err != nil {
			return ops, eris.Wrap(err, "failed to create entity manager")
		}

		for range cfg.Iterations {
			for i := range cfg.Entities {
				e, err := m.CreateEntity()
				if err != nil {
					return ops, err
				}
				if err := ecs.AddComponent(m, e, position{X: float64(i)}); err != nil {
					return ops, err
				}
				if err := ecs.AddComponent(m, e, velocity{X: 1, Y: 1}); err != nil {
					return ops, err
				}
				if i%10 == 0 {
					if err := ecs.AddComponent(m, e, tags{Values: []string{"tagged"}}); err != nil {
						return ops, err
					}
				}
				ops++
			}

			for _, e := range ecs.GetAllEntitiesWithType[velocity](m) {
				pos, _ := ecs.GetComponent[position](m, e)
				vel, _ := ecs.GetComponent[velocity](m, e)
				if err := ecs.AddComponent(m, e, position{X: pos.X + vel.X, Y: pos.Y + vel.Y}); err != nil {
					return ops, err
				}
				ops++
			}

			for _, e := range append([]ecs.Entity(nil), m.Entities()...) {
				m.KillEntity(e)
				ops++
			}
		}
	}
	return ops, nil
}
