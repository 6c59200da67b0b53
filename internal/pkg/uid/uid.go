package uid

// NumberID generates numeric identifiers, typically for database primary keys.
type NumberID interface {
	Generate() int64
}

// StringID generates string identifiers, typically for correlation IDs or
// externally visible handles.
type StringID interface {
	Generate() string
}
