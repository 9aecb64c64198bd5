package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Assignment records that a node is a direct child of a parent.
type Assignment struct {
	ChildID  string
	ParentID string
}

// FormatAssignments renders assignments as "child:parent," pairs, each pair
// followed by a comma.
func FormatAssignments(as []Assignment) string {
	var b strings.Builder
	for _, a := range as {
		b.WriteString(a.ChildID)
		b.WriteByte(':')
		b.WriteString(a.ParentID)
		b.WriteByte(',')
	}
	return b.String()
}

// ParseAssignments reads a listing produced by FormatAssignments.
func ParseAssignments(s string) ([]Assignment, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(strings.TrimSuffix(s, ","), ",")
	out := make([]Assignment, 0, len(parts))
	for _, p := range parts {
		child, parent, ok := strings.Cut(p, ":")
		if !ok || child == "" || parent == "" {
			return nil, zerr.With(ErrInvalidAssignment, "entry", p)
		}
		out = append(out, Assignment{ChildID: child, ParentID: parent})
	}
	return out, nil
}
