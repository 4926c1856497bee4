package basho

import "errors"

var (
	// ErrInvalidParams indicates tournament parameters that violate one of
	// the construction-time invariants.
	ErrInvalidParams = errors.New("basho: invalid tournament parameters")
	// ErrInvalidQuery indicates a query configured outside the bounds of the
	// tournament it is being applied to.
	ErrInvalidQuery = errors.New("basho: invalid query")
	// ErrScoresNotTracked indicates a query that needs score variables was
	// applied to a model built without them.
	ErrScoresNotTracked = errors.New("basho: query requires score tracking")
	// ErrSolver is the parent of every fatal solver outcome.
	ErrSolver = errors.New("basho: solver failed")
)
