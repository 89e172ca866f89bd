package colors

import (
	"fmt"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// LoadScheme reads a colour scheme from a YAML file.
// Keys are cell values, entries come in three forms:
//
//	0: "#ffffff"      # hex string
//	1: [255, 0, 0]    # RGB triple, 0-255
//	2: 0.5            # normalized scalar, stored as gray unchanged
func LoadScheme(path string) (Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Error reading scheme file: %s", err)
	}
	return ParseScheme(data)
}

func ParseScheme(data []byte) (Scheme, error) {
	var raw map[int]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("Error parsing scheme yaml: %s", err)
	}
	s := make(Scheme, len(raw))
	for k, node := range raw {
		node := node
		c, err := parseEntry(&node)
		if err != nil {
			return nil, fmt.Errorf("scheme entry %d: %s", k, err)
		}
		s[k] = c
	}
	return s, nil
}

func parseEntry(node *yaml.Node) (Color, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!int" || node.Tag == "!!float" {
			var v float64
			if err := node.Decode(&v); err != nil {
				return Color{}, err
			}
			if v < 0 || v > 1 {
				return Color{}, fmt.Errorf("scalar %v out of [0,1]", v)
			}
			return Gray(v), nil
		}
		var hex string
		if err := node.Decode(&hex); err != nil {
			return Color{}, err
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return Color{}, fmt.Errorf("bad hex colour %q: %s", hex, err)
		}
		return Color{c.R, c.G, c.B}, nil

	case yaml.SequenceNode:
		var rgb []int
		if err := node.Decode(&rgb); err != nil {
			return Color{}, err
		}
		if len(rgb) != 3 {
			return Color{}, fmt.Errorf("want 3 components, got %d", len(rgb))
		}
		for _, v := range rgb {
			if v < 0 || v > 255 {
				return Color{}, fmt.Errorf("component %d out of 0-255", v)
			}
		}
		return RGB255(uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2])), nil
	}
	return Color{}, fmt.Errorf("unsupported yaml node kind %d", node.Kind)
}
