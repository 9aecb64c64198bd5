package rows

import (
	"bytes"
	"fmt"
	"strconv"

	"go.trai.ch/bubbles/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// record is one row as written in structured formats. Ids may be written
// as numbers or strings.
type record struct {
	NodeID   id      `json:"nodeID" yaml:"nodeID" toml:"nodeID"`
	ParentID id      `json:"parentID" yaml:"parentID" toml:"parentID"`
	Title    string  `json:"title" yaml:"title" toml:"title"`
	Weight   float64 `json:"weight" yaml:"weight" toml:"weight"`
}

func (r record) row() domain.Row {
	return domain.Row{
		NodeID:   string(r.NodeID),
		ParentID: string(r.ParentID),
		Title:    r.Title,
		Weight:   r.Weight,
	}
}

func toRows(records []record) []domain.Row {
	out := make([]domain.Row, len(records))
	for i, r := range records {
		out[i] = r.row()
	}
	return out
}

// id is a node id that accepts numeric and string scalars.
type id string

// UnmarshalJSON accepts a JSON string or number.
func (i *id) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		s, err := strconv.Unquote(string(b))
		if err != nil {
			return err
		}
		*i = id(s)
		return nil
	}
	if _, err := strconv.ParseFloat(string(b), 64); err != nil {
		return fmt.Errorf("node id must be a string or number, got %s", b)
	}
	*i = id(b)
	return nil
}

// UnmarshalYAML accepts any scalar.
func (i *id) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: node id must be a scalar", n.Line)
	}
	*i = id(n.Value)
	return nil
}

// UnmarshalTOML accepts strings and integers.
func (i *id) UnmarshalTOML(v any) error {
	switch x := v.(type) {
	case string:
		*i = id(x)
	case int64:
		*i = id(strconv.FormatInt(x, 10))
	default:
		return fmt.Errorf("node id must be a string or integer, got %T", v)
	}
	return nil
}
