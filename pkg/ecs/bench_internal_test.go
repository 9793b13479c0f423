package ecs

import (
	"testing"

	. "github.com/argus-labs/sparse-ecs/pkg/testutils"
	"github.com/rs/zerolog"
)

func newBenchManager(b *testing.B) *EntityManager {
	b.Helper()
	nop := zerolog.Nop()
	m, err := NewEntityManager(ManagerOptions{Logger: &nop})
	if err != nil {
		b.Fatal(err)
	}
	return m
}

// BenchmarkSparseSet benchmarks the raw sparse set operations.
func BenchmarkSparseSet(b *testing.B) {
	const n = 1 << 12

	b.Run("add", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			s := NewSparseSet[Entity, Point]()
			b.StartTimer()
			for e := range Entity(n) {
				s.Add(e, Point{X: float64(e)})
			}
		}
	})

	b.Run("get", func(b *testing.B) {
		s := NewSparseSet[Entity, Point]()
		for e := range Entity(n) {
			s.Add(e, Point{X: float64(e)})
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = s.Get(Entity(i % n))
		}
	})

	b.Run("delete and re-add", func(b *testing.B) {
		s := NewSparseSet[Entity, Point]()
		for e := range Entity(n) {
			s.Add(e, Point{X: float64(e)})
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			e := Entity(i % n)
			v, _ := s.Delete(e)
			s.Add(e, v)
		}
	})

	b.Run("iterate values", func(b *testing.B) {
		s := NewSparseSet[Entity, Point]()
		for e := range Entity(n) {
			s.Add(e, Point{X: float64(e)})
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			var sum float64
			for _, p := range s.Values() {
				sum += p.X
			}
			_ = sum
		}
	})
}

// BenchmarkEntityManager_AddComponent compares the Cloner copy path with the codec copy path.
func BenchmarkEntityManager_AddComponent(b *testing.B) {
	b.Run("plain value", func(b *testing.B) {
		m := newBenchManager(b)
		e, _ := m.CreateEntity()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = AddComponent(m, e, Point{X: 1, Y: 2, Z: 3})
		}
	})

	b.Run("cloner", func(b *testing.B) {
		m := newBenchManager(b)
		e, _ := m.CreateEntity()
		inv := Inventory{Items: []string{"sword", "potion"}, Counts: map[string]int{"potion": 3}}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = AddComponent(m, e, inv)
		}
	})

	b.Run("codec", func(b *testing.B) {
		m := newBenchManager(b)
		e, _ := m.CreateEntity()
		labels := Labels{Tags: []string{"npc", "merchant"}, Owner: &Owner{Name: "guild"}}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = AddComponent(m, e, labels)
		}
	})
}

// BenchmarkEntityManager_KillEntity benchmarks killing entities that have several components.
func BenchmarkEntityManager_KillEntity(b *testing.B) {
	const n = 1 << 10

	for i := 0; i < b.N; i++ {
		b.StopTimer()
		m := newBenchManager(b)
		entities := make([]Entity, n)
		for j := range entities {
			e, _ := m.CreateEntity()
			_ = AddComponent(m, e, Point{X: float64(j)})
			_ = AddComponent(m, e, Health{Value: j})
			entities[j] = e
		}
		b.StartTimer()

		for _, e := range entities {
			m.KillEntity(e)
		}
	}
}

// BenchmarkEntityManager_GetAllEntitiesWithType benchmarks the creation-ordered entity scan.
func BenchmarkEntityManager_GetAllEntitiesWithType(b *testing.B) {
	const n = 1 << 12

	m := newBenchManager(b)
	for j := range n {
		e, _ := m.CreateEntity()
		if j%2 == 0 {
			_ = AddComponent(m, e, Health{Value: j})
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetAllEntitiesWithType[Health](m)
	}
}
