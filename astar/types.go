package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrInvalidInput is wrapped by every error describing a malformed request.
	// Use errors.Is(err, ErrInvalidInput) to tell it apart from an unreachable goal.
	ErrInvalidInput = errors.New("astar: invalid input")

	// ErrNilGrid indicates that a nil Grid was passed.
	ErrNilGrid = fmt.Errorf("%w: grid is nil", ErrInvalidInput)

	// ErrStartOutOfBounds indicates the start cell lies outside the grid.
	ErrStartOutOfBounds = fmt.Errorf("%w: start out of bounds", ErrInvalidInput)

	// ErrGoalOutOfBounds indicates the goal cell lies outside the grid.
	ErrGoalOutOfBounds = fmt.Errorf("%w: goal out of bounds", ErrInvalidInput)

	// ErrStartBlocked indicates the start cell is an obstacle.
	ErrStartBlocked = fmt.Errorf("%w: start is an obstacle", ErrInvalidInput)

	// ErrGoalBlocked indicates the goal cell is an obstacle.
	ErrGoalBlocked = fmt.Errorf("%w: goal is an obstacle", ErrInvalidInput)

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrExpansionLimit is returned when the search expands more cells than
	// allowed by WithMaxExpansions.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")
)

// Grid is the read-only view of a grid the search needs.
// *gridgraph.GridGraph satisfies it.
type Grid interface {
	// Dims returns the number of rows and columns.
	Dims() (rows, cols int)
	// InBounds reports whether c lies inside the grid.
	InBounds(c gridgraph.Cell) bool
	// IsFree reports whether c is in bounds and not an obstacle.
	IsFree(c gridgraph.Cell) bool
}

// Result holds the outcome of a search.
//
//   - Path:     start→goal inclusive when Found, nil otherwise.
//   - Cost:     number of moves (len(Path)-1) when Found, 0 otherwise.
//   - Found:    whether the goal was reached.
//   - Expanded: number of cells whose neighbours were relaxed.
//   - Pushed:   number of frontier insertions, stale ones included.
type Result struct {
	Path     []gridgraph.Cell
	Cost     int
	Found    bool
	Expanded int
	Pushed   int
}

// Options configures a search.
type Options struct {
	// OnExpand is called once per expanded cell with its final g-score.
	OnExpand func(c gridgraph.Cell, g int)

	// MaxExpansions, if > 0, aborts the search with ErrExpansionLimit
	// once that many cells have been expanded. 0 means no limit.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// DefaultOptions returns Options with no hooks and no expansion limit.
func DefaultOptions() Options {
	return Options{
		OnExpand:      func(gridgraph.Cell, int) {},
		MaxExpansions: 0,
	}
}

// WithOnExpand registers a callback fired whenever a cell is expanded.
func WithOnExpand(fn func(c gridgraph.Cell, g int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithMaxExpansions bounds the number of expanded cells.
//
//	n > 0: stop with ErrExpansionLimit after n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}
