package render

import "fmt"

// UnsupportedFeatureError indicates a feature not supported by the dialect.
type UnsupportedFeatureError struct {
	Feature string
	Dialect string
	Hint    string
}

func (e UnsupportedFeatureError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s is not supported: %s", e.Dialect, e.Feature, e.Hint)
	}
	return fmt.Sprintf("%s: %s is not supported", e.Dialect, e.Feature)
}

// NewUnsupportedFeatureError creates a new unsupported feature error.
func NewUnsupportedFeatureError(dialect, feature string, hint ...string) error {
	err := UnsupportedFeatureError{Feature: feature, Dialect: dialect}
	if len(hint) > 0 {
		err.Hint = hint[0]
	}
	return err
}

// BindArityError indicates that the number of bind placeholders in the
// rendered SQL does not equal the number of bind values on the relation.
// This is an internal-consistency fault: a correctly built and merged
// relation can never produce it.
type BindArityError struct {
	Placeholders int
	Binds        int
}

func (e BindArityError) Error() string {
	return fmt.Sprintf("bind arity mismatch: %d placeholders, %d bind values", e.Placeholders, e.Binds)
}
