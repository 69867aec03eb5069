package column

import "errors"

// Configuration errors reported at column construction.
var (
	// ErrNoComponents indicates an empty component list.
	ErrNoComponents = errors.New("column: at least one component required")

	// ErrDuplicateComponent indicates a repeated component name.
	ErrDuplicateComponent = errors.New("column: duplicate component name")

	// ErrUnknownFeedComponent indicates a feed entry naming no known component.
	ErrUnknownFeedComponent = errors.New("column: feed references unknown component")

	// ErrMissingFeedEntry indicates a component with no feed entry.
	ErrMissingFeedEntry = errors.New("column: component missing from feed")

	// ErrNegativeFeed indicates a negative feed fraction.
	ErrNegativeFeed = errors.New("column: feed fraction must be non-negative")

	// ErrStageCount indicates a stage count below 1.
	ErrStageCount = errors.New("column: number of stages must be at least 1")
)
