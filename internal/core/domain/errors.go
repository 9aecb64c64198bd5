package domain

import "go.trai.ch/zerr"

var (
	// ErrTreeInvariant is returned when the tree violates a structural invariant.
	ErrTreeInvariant = zerr.New("tree invariant violated")

	// ErrNodeNotFound is returned when a node id is not part of the tree.
	ErrNodeNotFound = zerr.New("node not found")

	// ErrDuplicateNode is returned when a node id is already used by another node.
	ErrDuplicateNode = zerr.New("duplicate node id")

	// ErrNodeAttached is returned when appending a node that already has a parent.
	ErrNodeAttached = zerr.New("node is already attached")

	// ErrParentNotGroup is returned when a leaf is used as a parent.
	ErrParentNotGroup = zerr.New("parent is not a group")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a config value is out of range.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrRowsReadFailed is returned when an input rows file cannot be read.
	ErrRowsReadFailed = zerr.New("failed to read rows")

	// ErrRowsParseFailed is returned when input rows cannot be decoded.
	ErrRowsParseFailed = zerr.New("failed to parse rows")

	// ErrUnsupportedFormat is returned for an unknown rows or output format.
	ErrUnsupportedFormat = zerr.New("unsupported format")

	// ErrRenderFailed is returned when a frame cannot be drawn to its surface.
	ErrRenderFailed = zerr.New("failed to render frame")

	// ErrPublishFailed is returned when the assignment listing cannot be written.
	ErrPublishFailed = zerr.New("failed to publish assignments")

	// ErrMoveRejected is returned when a requested move is not meaningful.
	ErrMoveRejected = zerr.New("move rejected")

	// ErrNoData is returned when an operation needs rows that were never loaded.
	ErrNoData = zerr.New("no data loaded")

	// ErrInvalidAssignment is returned when an assignment listing entry is malformed.
	ErrInvalidAssignment = zerr.New("invalid assignment entry")

	// ErrWatchStdin is returned when asked to watch standard input for changes.
	ErrWatchStdin = zerr.New("cannot watch standard input")
)
