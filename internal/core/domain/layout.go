package domain

import "time"

const (
	// RootID is the reserved id of the root group.
	RootID = "root"

	// RootAlias is the parent id rows use to refer to the root.
	RootAlias = "0"

	// RootAssignmentID is the parent id reported for direct children of the root.
	RootAssignmentID = "0"

	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "bubbles.yaml"

	// DefaultSize is the default side length of the square drawing surface.
	DefaultSize = 800

	// PageMargin is subtracted from the surface size to get the packing width,
	// and added to a node's diameter when focusing on it.
	PageMargin = 30

	// NodePadding separates sibling discs.
	NodePadding = 20

	// FontSize is the base label size at zoom factor 2.
	FontSize = 11

	// ClickDelay is how long a single click waits for a second click.
	ClickDelay = 200 * time.Millisecond

	// ZoomDuration is the length of a double-click zoom.
	ZoomDuration = 500 * time.Millisecond

	// MoveDuration is the length of the relayout transition after a move.
	MoveDuration = 1000 * time.Millisecond

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)
