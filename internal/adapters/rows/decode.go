package rows

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-json"
	"go.trai.ch/bubbles/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var columns = []string{"nodeid", "parentid", "title", "weight"}

// decodeCSV reads a CSV file whose header names the nodeID, parentID, title
// and weight columns in any order. An empty weight is 0.
func decodeCSV(r io.Reader) ([]domain.Row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []domain.Row{}, nil
	}
	if err != nil {
		return nil, parseError(err, FormatCSV)
	}

	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range columns {
		if _, ok := pos[c]; !ok {
			return nil, zerr.With(zerr.With(domain.ErrRowsParseFailed, "format", FormatCSV), "missing_column", c)
		}
	}

	out := []domain.Row{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, parseError(err, FormatCSV)
		}

		var weight float64
		if w := strings.TrimSpace(rec[pos["weight"]]); w != "" {
			weight, err = strconv.ParseFloat(w, 64)
			if err != nil {
				line, _ := cr.FieldPos(pos["weight"])
				return nil, zerr.With(parseError(err, FormatCSV), "line", line)
			}
		}
		out = append(out, domain.Row{
			NodeID:   strings.TrimSpace(rec[pos["nodeid"]]),
			ParentID: strings.TrimSpace(rec[pos["parentid"]]),
			Title:    rec[pos["title"]],
			Weight:   weight,
		})
	}
}

func decodeJSON(r io.Reader) ([]domain.Row, error) {
	records := []record{}
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return []domain.Row{}, nil
		}
		return nil, parseError(err, FormatJSON)
	}
	return toRows(records), nil
}

func decodeYAML(r io.Reader) ([]domain.Row, error) {
	records := []record{}
	if err := yaml.NewDecoder(r).Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return []domain.Row{}, nil
		}
		return nil, parseError(err, FormatYAML)
	}
	return toRows(records), nil
}

// tomlFile is a TOML document holding [[rows]] tables.
type tomlFile struct {
	Rows []record `toml:"rows"`
}

func decodeTOML(r io.Reader) ([]domain.Row, error) {
	var doc tomlFile
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, parseError(err, FormatTOML)
	}
	if doc.Rows == nil {
		return []domain.Row{}, nil
	}
	return toRows(doc.Rows), nil
}

func parseError(err error, format string) error {
	return zerr.With(zerr.Wrap(err, domain.ErrRowsParseFailed.Error()), "format", format)
}
