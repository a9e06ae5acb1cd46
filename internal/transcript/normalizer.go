// Package transcript turns a run-on game transcript into one turn per line.
package transcript

import (
	"fmt"
	"io"
	"strings"

	"github.com/grovetools/gametidy/internal/logging"
	"github.com/sirupsen/logrus"
)

// TurnDelimiter separates turns in the raw transcript.
const TurnDelimiter = "."

// escapedNewline is the two-character escape some transcripts carry instead
// of a real line break.
const escapedNewline = `\n`

var newlineReplacer = strings.NewReplacer(
	"\r\n", " ",
	"\n", " ",
	"\r", " ",
	escapedNewline, " ",
)

// Policy controls how many segments are discarded from each end of the split.
type Policy struct {
	// DropHead is the number of leading segments treated as a preamble.
	DropHead int `json:"dropHead" yaml:"drop_head"`
	// DropTail is the number of trailing segments treated as an incomplete fragment.
	DropTail int `json:"dropTail" yaml:"drop_tail"`
}

// DefaultPolicy drops one header and one trailer segment.
func DefaultPolicy() Policy {
	return Policy{DropHead: 1, DropTail: 1}
}

// Validate reports whether the policy can be applied.
func (p Policy) Validate() error {
	if p.DropHead < 0 || p.DropTail < 0 {
		return fmt.Errorf("%w: drop_head=%d drop_tail=%d", ErrInvalidPolicy, p.DropHead, p.DropTail)
	}
	return nil
}

// Normalizer converts raw transcript content into turn lines.
type Normalizer struct {
	policy Policy
	logger *logrus.Entry
}

// NewNormalizer creates a normalizer using the given discard policy.
func NewNormalizer(policy Policy) (*Normalizer, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return &Normalizer{
		policy: policy,
		logger: logging.NewLogger("transcript.normalizer"),
	}, nil
}

// Policy returns the discard policy in use.
func (n *Normalizer) Policy() Policy {
	return n.policy
}

// Normalize splits raw content into segments and returns the interior
// segments with their last token removed, in input order.
func (n *Normalizer) Normalize(raw []byte) ([]string, error) {
	turns, _, err := n.normalize(raw)
	return turns, err
}

// normalize also reports how many segments the split produced.
func (n *Normalizer) normalize(raw []byte) ([]string, int, error) {
	segments := SplitSegments(raw)

	n.logger.WithFields(logrus.Fields{
		"segments":  len(segments),
		"drop_head": n.policy.DropHead,
		"drop_tail": n.policy.DropTail,
	}).Debug("Split transcript")

	interior, err := n.interior(segments)
	if err != nil {
		return nil, len(segments), err
	}

	turns := make([]string, 0, len(interior))
	for i, seg := range interior {
		turn, err := TrimTurn(seg)
		if err != nil {
			return nil, len(segments), &SegmentError{Index: n.policy.DropHead + i, Segment: seg, Err: err}
		}
		turns = append(turns, turn)
	}
	return turns, len(segments), nil
}

// NormalizeReader reads r to the end and normalizes its content.
func (n *Normalizer) NormalizeReader(r io.Reader) ([]string, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript: %w", err)
	}
	return n.Normalize(raw)
}

func (n *Normalizer) interior(segments []string) ([]string, error) {
	head, tail := n.policy.DropHead, n.policy.DropTail
	// Compared without summing so huge counts cannot overflow.
	if head > len(segments) || tail > len(segments)-head {
		return nil, fmt.Errorf("%w: got %d, drop_head=%d drop_tail=%d", ErrTooFewSegments, len(segments), head, tail)
	}
	return segments[head : len(segments)-tail], nil
}

// SplitSegments replaces line breaks with spaces and splits on TurnDelimiter.
func SplitSegments(raw []byte) []string {
	text := newlineReplacer.Replace(string(raw))
	return strings.Split(text, TurnDelimiter)
}

// TrimTurn collapses whitespace in seg and drops its last token.
func TrimTurn(seg string) (string, error) {
	tokens := strings.Fields(seg)
	if len(tokens) == 0 {
		return "", ErrEmptySegment
	}
	return strings.Join(tokens[:len(tokens)-1], " "), nil
}
