package testutil

import "github.com/specialistvlad/casegrid/internal/registry"

// SimpleModule is a test helper for easily creating a mock module that
// registers a single listener type.
type SimpleModule struct {
	TypeName string
	Factory  registry.Factory
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) {
	if m.TypeName != "" && m.Factory != nil {
		r.RegisterType(m.TypeName, m.Factory)
	}
}
