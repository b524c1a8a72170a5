package render

import "errors"

var (
	// ErrNilMatrix indicates that a nil *sparse.Matrix was passed in.
	ErrNilMatrix = errors.New("render: nil matrix")
	// ErrTooLarge indicates the matrix exceeds the dense-table cell guard.
	ErrTooLarge = errors.New("render: matrix too large for dense table")
	// ErrEmptyPlot indicates a spy plot was requested for a zero-sized shape.
	ErrEmptyPlot = errors.New("render: nothing to plot for an empty shape")
)
