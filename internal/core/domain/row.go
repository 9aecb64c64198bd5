package domain

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Row is one record of the flat input table.
type Row struct {
	NodeID   string
	ParentID string
	Title    string
	Weight   float64
}

// RowsFingerprint hashes rows in order so hosts can skip identical reloads.
func RowsFingerprint(rows []Row) uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 64)
	for _, r := range rows {
		buf = buf[:0]
		buf = append(buf, r.NodeID...)
		buf = append(buf, 0)
		buf = append(buf, r.ParentID...)
		buf = append(buf, 0)
		buf = append(buf, r.Title...)
		buf = append(buf, 0)
		buf = strconv.AppendFloat(buf, r.Weight, 'g', -1, 64)
		buf = append(buf, '\n')
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}
