package graphio

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Default values applied to absent optional fields.
const (
	DefaultWeight        = 1.0
	DefaultBidirectional = true
)

// GraphSpec is the structured description of a graph.
type GraphSpec struct {
	Nodes []NodeSpec `json:"nodes" yaml:"nodes"`
	Edges []EdgeSpec `json:"edges" yaml:"edges"`
}

// NodeSpec is one entry of the node list: either a bare ID or {id, x, y}.
// An empty ID after decoding means the id key was absent.
type NodeSpec struct {
	ID string  `json:"id" yaml:"id"`
	X  float64 `json:"x" yaml:"x"`
	Y  float64 `json:"y" yaml:"y"`
}

// EdgeSpec is one entry of the edge list. Weight and Bidirectional are
// pointers so that absent keys can be told apart from zero values.
type EdgeSpec struct {
	From          string   `json:"from" yaml:"from"`
	To            string   `json:"to" yaml:"to"`
	Weight        *float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
	Bidirectional *bool    `json:"bidirectional,omitempty" yaml:"bidirectional,omitempty"`
}

// WeightOrDefault returns the explicit weight or DefaultWeight.
func (e EdgeSpec) WeightOrDefault() float64 {
	if e.Weight == nil {
		return DefaultWeight
	}

	return *e.Weight
}

// IsBidirectional returns the explicit flag or DefaultBidirectional.
func (e EdgeSpec) IsBidirectional() bool {
	if e.Bidirectional == nil {
		return DefaultBidirectional
	}

	return *e.Bidirectional
}

// nodeObject mirrors NodeSpec without its custom decoders.
type nodeObject struct {
	ID json.RawMessage `json:"id"`
	X  float64         `json:"x"`
	Y  float64         `json:"y"`
}

// UnmarshalJSON accepts a bare string/number ID or an {id, x, y} object.
func (n *NodeSpec) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var obj nodeObject
		if err := json.Unmarshal(data, &obj); err != nil {
			return errors.Wrap(err, "graphio: decode node object")
		}
		id, err := jsonScalarID(obj.ID)
		if err != nil {
			return err
		}
		*n = NodeSpec{ID: id, X: obj.X, Y: obj.Y}

		return nil
	}

	id, err := jsonScalarID(data)
	if err != nil {
		return err
	}
	*n = NodeSpec{ID: id}

	return nil
}

// jsonScalarID converts a JSON string or number into an ID.
// Absent and null values yield "" so that Build reports them as malformed.
func jsonScalarID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var num json.Number
	if err := json.Unmarshal(raw, &num); err != nil {
		return "", errors.Errorf("graphio: node id must be a string or number, got %s", raw)
	}

	return num.String(), nil
}

// UnmarshalYAML accepts a bare scalar ID or an {id, x, y} mapping.
func (n *NodeSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*n = NodeSpec{}
			return nil
		}
		*n = NodeSpec{ID: value.Value}

		return nil
	case yaml.MappingNode:
		spec := NodeSpec{}
		for i := 0; i+1 < len(value.Content); i += 2 {
			key, val := value.Content[i], value.Content[i+1]
			switch key.Value {
			case "id":
				if val.Kind != yaml.ScalarNode {
					return errors.Errorf("graphio: node id at line %d must be a scalar", val.Line)
				}
				if val.Tag != "!!null" {
					spec.ID = val.Value
				}
			case "x":
				if err := val.Decode(&spec.X); err != nil {
					return errors.Wrapf(err, "graphio: decode node x at line %d", val.Line)
				}
			case "y":
				if err := val.Decode(&spec.Y); err != nil {
					return errors.Wrapf(err, "graphio: decode node y at line %d", val.Line)
				}
			}
		}
		*n = spec

		return nil
	default:
		return errors.Errorf("graphio: node at line %d must be a scalar or a mapping", value.Line)
	}
}

// MarshalJSON writes bare IDs for nodes at the origin and objects otherwise.
func (n NodeSpec) MarshalJSON() ([]byte, error) {
	if n.X == 0 && n.Y == 0 {
		return json.Marshal(n.ID)
	}
	type object struct {
		ID string  `json:"id"`
		X  float64 `json:"x"`
		Y  float64 `json:"y"`
	}

	return json.Marshal(object(n))
}
