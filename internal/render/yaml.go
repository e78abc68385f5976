package render

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAML writes cases as a YAML document.
func YAML(w io.Writer, cases []*Case) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cases); err != nil {
		return fmt.Errorf("encoding cases: %w", err)
	}
	return enc.Close()
}
