package metrics

import "github.com/san-kum/constellation/internal/field"

// Connections is the mean number of segments drawn per frame, self pairs
// included.
type Connections struct {
	mean
}

func NewConnections() *Connections { return &Connections{} }

func (c *Connections) Name() string { return "connections" }

func (c *Connections) Observe(f *field.Field) {
	c.add(float64(f.Stats().Connections))
}
