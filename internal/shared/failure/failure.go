// Package failure defines the stage-tagged errors produced by the art pipeline.
//
// Every error carries the pipeline stage that failed and a Kind describing
// what went wrong. Error() yields a sanitized description safe for span
// status and logs: it never contains URLs, response bodies, or the raw text
// of library errors. The underlying cause stays reachable through Unwrap for
// the error-reporting backend.
package failure

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure.
type Kind string

const (
	// KindUpstream indicates an external dependency answered with a non-success status.
	KindUpstream Kind = "upstream"

	// KindParse indicates a response body did not match the expected shape.
	KindParse Kind = "parse"

	// KindEmptyResult indicates the image source returned zero candidates.
	KindEmptyResult Kind = "empty_result"

	// KindDecode indicates the downloaded bytes are not a decodable image.
	KindDecode Kind = "decode"

	// KindTransport indicates a network-level failure during an outbound call.
	KindTransport Kind = "transport"
)

// Stage names the pipeline step that produced an error.
type Stage string

const (
	StageImageSource Stage = "image-source"
	StageDownload    Stage = "download"
	StageDecode      Stage = "decode"
)

// Error is a stage-tagged pipeline failure.
type Error struct {
	Kind   Kind
	Stage  Stage
	Status int // HTTP status for KindUpstream, zero otherwise
	Cause  error
}

// Error returns the sanitized description.
func (e *Error) Error() string {
	switch e.Kind {
	case KindUpstream:
		return fmt.Sprintf("%s: upstream returned status %d", e.Stage, e.Status)
	case KindParse:
		return fmt.Sprintf("%s: response did not match the expected shape", e.Stage)
	case KindEmptyResult:
		return fmt.Sprintf("%s: empty result, no images returned", e.Stage)
	case KindDecode:
		return fmt.Sprintf("%s: downloaded bytes are not a supported image", e.Stage)
	case KindTransport:
		return fmt.Sprintf("%s: network failure", e.Stage)
	default:
		return fmt.Sprintf("%s: %s failure", e.Stage, e.Kind)
	}
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches another *Error by Kind and Stage so sentinel-style comparisons work:
//
//	errors.Is(err, &failure.Error{Kind: failure.KindEmptyResult, Stage: failure.StageImageSource})
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Stage == t.Stage
}

// Upstream builds a KindUpstream error for a non-success status.
func Upstream(stage Stage, status int) *Error {
	return &Error{Kind: KindUpstream, Stage: stage, Status: status}
}

// Parse builds a KindParse error.
func Parse(stage Stage, cause error) *Error {
	return &Error{Kind: KindParse, Stage: stage, Cause: cause}
}

// EmptyResult builds a KindEmptyResult error.
func EmptyResult(stage Stage) *Error {
	return &Error{Kind: KindEmptyResult, Stage: stage}
}

// Decode builds a KindDecode error for the decode stage.
func Decode(cause error) *Error {
	return &Error{Kind: KindDecode, Stage: StageDecode, Cause: cause}
}

// Transport builds a KindTransport error.
func Transport(stage Stage, cause error) *Error {
	return &Error{Kind: KindTransport, Stage: stage, Cause: cause}
}

// As extracts the *Error from an error chain.
func As(err error) (*Error, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// KindOf returns the kind of a pipeline failure, or "unknown".
func KindOf(err error) Kind {
	if fe, ok := As(err); ok {
		return fe.Kind
	}
	return "unknown"
}

// StageOf returns the stage of a pipeline failure, or "unknown".
func StageOf(err error) Stage {
	if fe, ok := As(err); ok {
		return fe.Stage
	}
	return "unknown"
}
