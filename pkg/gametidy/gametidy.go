// Package gametidy exposes the transcript normalizer with its default discard policy.
package gametidy

import (
	"github.com/grovetools/gametidy/internal/transcript"
)

// Policy controls how many leading and trailing segments are discarded.
type Policy = transcript.Policy

// Result describes a completed tidy run.
type Result = transcript.Result

// Errors returned by Normalize and Tidy; match them with errors.Is.
var (
	ErrEmptySegment   = transcript.ErrEmptySegment
	ErrTooFewSegments = transcript.ErrTooFewSegments
	ErrInvalidPolicy  = transcript.ErrInvalidPolicy
)

// Normalize returns the turn lines of raw using the default policy.
func Normalize(raw []byte) ([]string, error) {
	return NormalizeWithPolicy(raw, transcript.DefaultPolicy())
}

// NormalizeWithPolicy returns the turn lines of raw using policy.
func NormalizeWithPolicy(raw []byte, policy Policy) ([]string, error) {
	n, err := transcript.NewNormalizer(policy)
	if err != nil {
		return nil, err
	}
	return n.Normalize(raw)
}

// Tidy reads in and writes one turn per line to out using the default policy.
func Tidy(in, out string) (*Result, error) {
	n, err := transcript.NewNormalizer(transcript.DefaultPolicy())
	if err != nil {
		return nil, err
	}
	return n.TidyFile(in, out)
}
