package testutils

// -------------------------------------------------------------------------------------------------
// Components
// -------------------------------------------------------------------------------------------------

type Point struct {
	X, Y, Z float64
}

func (Point) Name() string {
	return "point"
}

type Velocity struct {
	DX, DY, DZ float64
}

func (Velocity) Name() string {
	return "velocity"
}

type Health struct {
	Value int
}

func (Health) Name() string {
	return "health"
}

// Inventory holds reference fields and implements Clone, so it is copied without the codec.
type Inventory struct {
	Items  []string
	Counts map[string]int
}

func (Inventory) Name() string {
	return "inventory"
}

func (inv Inventory) Clone() Inventory {
	out := Inventory{
		Items:  append([]string(nil), inv.Items...),
		Counts: make(map[string]int, len(inv.Counts)),
	}
	for k, v := range inv.Counts {
		out.Counts[k] = v
	}
	return out
}

// Labels holds a reference field without a Clone method, so it is copied through the codec.
type Labels struct {
	Tags  []string
	Owner *Owner
}

type Owner struct {
	Name string
}

func (Labels) Name() string {
	return "labels"
}

// PointImpostor reuses Point's component name with a different Go type.
type PointImpostor struct {
	X int
}

func (PointImpostor) Name() string {
	return "point"
}
