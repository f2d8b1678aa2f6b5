package muscle

import (
	"strings"

	"muscle-overlay/pkg/colorutil"
)

// Group name suffixes that pair flat picker groups into one muscle.
const (
	OriginSuffix    = "_origin"
	InsertionSuffix = "_insertion"
)

// ConvertOptions controls Convert.
type ConvertOptions struct {
	// Colors overrides the palette color per muscle name. Names are matched
	// exactly or in lowercase.
	Colors map[string]colorutil.RGB
}

// color looks name up in Colors, falling back to its lowercase form since
// config keys arrive lowercased.
func (o ConvertOptions) color(name string) (colorutil.RGB, bool) {
	if c, ok := o.Colors[name]; ok {
		return c, true
	}
	c, ok := o.Colors[strings.ToLower(name)]
	return c, ok
}

// ConvertReport lists groups that could not become part of a muscle.
type ConvertReport struct {
	Unpaired []string
}

// Convert turns a flat picker mapping into a render definition. Groups named
// <muscle>_origin and <muscle>_insertion form one muscle; the muscle order is
// the order in which either group first appears. Groups without the suffix,
// or without a partner, are reported as unpaired. Colors come from
// opts.Colors or else from the palette in muscle order.
func Convert(m *Mapping, opts ConvertOptions) (*Definition, ConvertReport) {
	type pair struct {
		origin, insertion string
	}

	var names []string
	pairs := make(map[string]*pair)
	var report ConvertReport

	for _, g := range m.Groups() {
		var name string
		var isOrigin bool
		switch {
		case strings.HasSuffix(g, OriginSuffix):
			name, isOrigin = strings.TrimSuffix(g, OriginSuffix), true
		case strings.HasSuffix(g, InsertionSuffix):
			name = strings.TrimSuffix(g, InsertionSuffix)
		default:
			report.Unpaired = append(report.Unpaired, g)
			continue
		}

		p, ok := pairs[name]
		if !ok {
			p = &pair{}
			pairs[name] = p
			names = append(names, name)
		}
		if isOrigin {
			p.origin = g
		} else {
			p.insertion = g
		}
	}

	def := &Definition{}
	for _, name := range names {
		p := pairs[name]
		if p.origin == "" || p.insertion == "" {
			report.Unpaired = append(report.Unpaired, p.origin+p.insertion)
			continue
		}

		color, ok := opts.color(name)
		if !ok {
			color = colorutil.PaletteAt(len(def.Muscles))
		}
		def.Muscles = append(def.Muscles, Muscle{
			Name:      name,
			Origin:    m.Indices(p.origin),
			Insertion: m.Indices(p.insertion),
			Color:     color,
		})
	}

	return def, report
}
