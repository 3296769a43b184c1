package quiz

import (
	"errors"
	"fmt"
)

// ErrEmptyContent is returned when the source text is empty or whitespace.
// It is raised before any model call is issued.
var ErrEmptyContent = errors.New("content must not be empty")

// Kind classifies a quiz creation failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindEmptyInput
	KindParse
	KindStructural
	KindSemantic
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindEmptyInput:
		return "empty-input"
	case KindParse:
		return "parse-failure"
	case KindStructural:
		return "structural-invalid"
	case KindSemantic:
		return "semantic-invalid"
	case KindUpstream:
		return "upstream-failure"
	default:
		return "unknown"
	}
}

// KindOf reports which class of failure err belongs to.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	if errors.Is(err, ErrEmptyContent) {
		return KindEmptyInput
	}
	var perr *ParseError
	if errors.As(err, &perr) {
		return KindParse
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Kind
	}
	var uerr *UpstreamError
	if errors.As(err, &uerr) {
		return KindUpstream
	}
	return KindUnknown
}

// ParseError means neither the structured nor the line-template extraction
// produced a candidate.
type ParseError struct {
	Reason string
	// Raw is the trimmed model response that failed to parse.
	Raw string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid response format: %s", e.Reason)
}

// UpstreamError wraps a failure returned by the model client.
type UpstreamError struct {
	Variant Variant
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("model request failed (variant %s): %v", e.Variant, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
