package textnorm

import "fmt"

// InsufficientTextError signals that the input text is too short for any
// extraction to be statistically reliable. Callers should fall back to an
// alternative text source or surface an actionable upload error.
type InsufficientTextError struct {
	Length int
	Min    int
}

func (e *InsufficientTextError) Error() string {
	return fmt.Sprintf("insufficient text for analysis: got %d characters, need at least %d", e.Length, e.Min)
}
