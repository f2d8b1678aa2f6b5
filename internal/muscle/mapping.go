// Package muscle holds the two muscle definition schemas: the flat group
// mapping edited by the picker and the origin/insertion/color definition
// consumed by the renderer, plus the explicit conversion between them.
package muscle

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultGroups are the picker groups used when none are configured.
var DefaultGroups = []string{
	"frontalis_origin",
	"frontalis_insertion",
	"orbicularis_oculi",
	"zygomaticus_origin",
	"zygomaticus_insertion",
}

// Mapping is an ordered map from group name to landmark indices. Group order
// is insertion order and is preserved when persisted.
type Mapping struct {
	order  []string
	groups map[string][]int
}

// NewMapping creates a mapping with the given empty groups.
func NewMapping(groups ...string) *Mapping {
	m := &Mapping{groups: make(map[string][]int, len(groups))}
	for _, g := range groups {
		m.ensure(g)
	}
	return m
}

func (m *Mapping) ensure(group string) {
	if m.groups == nil {
		m.groups = make(map[string][]int)
	}
	if _, ok := m.groups[group]; ok {
		return
	}
	m.order = append(m.order, group)
	m.groups[group] = []int{}
}

// Groups returns the group names in order.
func (m *Mapping) Groups() []string {
	return append([]string(nil), m.order...)
}

// Has reports whether group exists.
func (m *Mapping) Has(group string) bool {
	_, ok := m.groups[group]
	return ok
}

// Indices returns a copy of the indices of group.
func (m *Mapping) Indices(group string) []int {
	return append([]int{}, m.groups[group]...)
}

// Len returns the total number of indices across all groups.
func (m *Mapping) Len() int {
	n := 0
	for _, idx := range m.groups {
		n += len(idx)
	}
	return n
}

// Append adds index to the end of group. Unknown groups are created at the
// end of the group order.
func (m *Mapping) Append(group string, index int) {
	m.ensure(group)
	m.groups[group] = append(m.groups[group], index)
}

// Undo removes and returns the last index of group. It reports false and
// leaves the mapping unchanged when the group is empty or unknown.
func (m *Mapping) Undo(group string) (int, bool) {
	idx := m.groups[group]
	if len(idx) == 0 {
		return 0, false
	}
	last := idx[len(idx)-1]
	m.groups[group] = idx[:len(idx)-1]
	return last, true
}

// Clear empties group.
func (m *Mapping) Clear(group string) {
	if _, ok := m.groups[group]; ok {
		m.groups[group] = []int{}
	}
}

// Reset empties every group, keeping names and order.
func (m *Mapping) Reset() {
	for g := range m.groups {
		m.groups[g] = []int{}
	}
}

// Clone returns a deep copy.
func (m *Mapping) Clone() *Mapping {
	c := NewMapping(m.order...)
	for g, idx := range m.groups {
		c.groups[g] = append([]int{}, idx...)
	}
	return c
}

// Equal reports whether both mappings have the same groups, order and indices.
func (m *Mapping) Equal(other *Mapping) bool {
	if len(m.order) != len(other.order) {
		return false
	}
	for i, g := range m.order {
		if other.order[i] != g {
			return false
		}
		a, b := m.groups[g], other.groups[g]
		if len(a) != len(b) {
			return false
		}
		for j := range a {
			if a[j] != b[j] {
				return false
			}
		}
	}
	return true
}

// MarshalYAML encodes the mapping as an ordered mapping of flow sequences:
//
//	frontalis_origin: [67, 109]
//	frontalis_insertion: []
func (m *Mapping) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, g := range m.order {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: g},
			indexNode(m.groups[g]),
		)
	}
	return node, nil
}

// UnmarshalYAML decodes an ordered group mapping.
func (m *Mapping) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of groups", value.Line)
	}

	decoded := NewMapping()
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		if decoded.Has(key.Value) {
			return fmt.Errorf("line %d: duplicate group %q", key.Line, key.Value)
		}
		var idx []int
		if err := val.Decode(&idx); err != nil {
			return fmt.Errorf("group %q: %w", key.Value, err)
		}
		decoded.ensure(key.Value)
		decoded.groups[key.Value] = append(decoded.groups[key.Value], idx...)
	}

	*m = *decoded
	return nil
}

func indexNode(indices []int) *yaml.Node {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, i := range indices {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: strconv.Itoa(i),
		})
	}
	return node
}
