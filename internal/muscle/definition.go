package muscle

import (
	"fmt"

	"muscle-overlay/pkg/colorutil"

	"gopkg.in/yaml.v3"
)

// Muscle is a renderable muscle: a band from the centroid of Origin to the
// centroid of Insertion drawn in Color.
type Muscle struct {
	Name      string        `yaml:"-"`
	Origin    []int         `yaml:"origin,flow"`
	Insertion []int         `yaml:"insertion,flow"`
	Color     colorutil.RGB `yaml:"color"`
}

// Definition is the ordered set of muscles consumed by the renderer. Order is
// draw order, so later muscles blend over earlier ones where bands overlap.
type Definition struct {
	Muscles []Muscle
}

// Names returns the muscle names in order.
func (d *Definition) Names() []string {
	names := make([]string, len(d.Muscles))
	for i, m := range d.Muscles {
		names[i] = m.Name
	}
	return names
}

// Lookup returns the muscle called name.
func (d *Definition) Lookup(name string) (Muscle, bool) {
	for _, m := range d.Muscles {
		if m.Name == name {
			return m, true
		}
	}
	return Muscle{}, false
}

// MarshalYAML encodes the definition as an ordered mapping keyed by name:
//
//	frontalis:
//	  origin: [67, 109]
//	  insertion: [105, 334]
//	  color: [255, 0, 0]
func (d *Definition) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, m := range d.Muscles {
		var body yaml.Node
		if err := body.Encode(m); err != nil {
			return nil, fmt.Errorf("muscle %q: %w", m.Name, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.Name},
			&body,
		)
	}
	return node, nil
}

// UnmarshalYAML decodes an ordered muscle mapping.
func (d *Definition) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of muscles", value.Line)
	}

	var muscles []Muscle
	seen := make(map[string]bool)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		if seen[key.Value] {
			return fmt.Errorf("line %d: duplicate muscle %q", key.Line, key.Value)
		}
		seen[key.Value] = true

		var m Muscle
		if err := val.Decode(&m); err != nil {
			return fmt.Errorf("muscle %q: %w", key.Value, err)
		}
		m.Name = key.Value
		muscles = append(muscles, m)
	}

	d.Muscles = muscles
	return nil
}
