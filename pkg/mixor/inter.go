package mixor

// Outcome is the non-generic view of any Result instantiation. The pipe
// engine uses it to classify values structurally without knowing S and F.
type Outcome interface {
	// IsOk returns true if the value carries a success payload
	IsOk() bool
	// IsErr returns true if the value carries a failure payload
	IsErr() bool
}

// Maybe is the non-generic view of any Option instantiation.
type Maybe interface {
	// IsSome returns true if a value is present
	IsSome() bool
	// IsNone returns true if no value is present
	IsNone() bool
}
