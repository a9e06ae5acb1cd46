package transcript

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySegment is returned when a segment has no tokens to drop.
	ErrEmptySegment = errors.New("segment has no tokens")

	// ErrTooFewSegments is returned when the split yields fewer segments than the policy discards.
	ErrTooFewSegments = errors.New("too few segments")

	// ErrInvalidPolicy is returned for negative discard counts.
	ErrInvalidPolicy = errors.New("invalid discard policy")
)

// SegmentError ties a segment failure to its position in the split.
type SegmentError struct {
	Index   int
	Segment string
	Err     error
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("segment %d %q: %v", e.Index, e.Segment, e.Err)
}

func (e *SegmentError) Unwrap() error {
	return e.Err
}
