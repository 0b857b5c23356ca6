package seamotion

import (
	"fmt"
	"strings"
)

// ErrorKind classifies effect failures. Every failure is terminal for the
// current attempt; nothing is retried until the caller supplies a new config
// or image.
type ErrorKind uint8

const (
	ErrorUnknown            ErrorKind = iota
	ErrorContextUnavailable           // no GPU context / compiler obtainable
	ErrorShaderCompile                // the Kage kernel failed to compile
	ErrorProgramLink                  // the compiled stages failed to link
	ErrorImageLoad                    // source acquisition or decode failed
	ErrorTextureCreation              // GPU texture upload failed
)

// String returns a short human-readable kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrorContextUnavailable:
		return "context unavailable"
	case ErrorShaderCompile:
		return "shader compile error"
	case ErrorProgramLink:
		return "program link error"
	case ErrorImageLoad:
		return "image load error"
	case ErrorTextureCreation:
		return "texture creation error"
	default:
		return "unknown error"
	}
}

// Error is the typed failure reported through Config.OnError and
// [Effect.Err]. It wraps the underlying cause, if any.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("seamotion: %s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("seamotion: %s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause for use with errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.cause }

func newError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func wrapError(kind ErrorKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, cause: cause}
}

// classifyShaderError maps a compiler diagnostic onto the compile/link split.
// Ebitengine compiles and links in a single NewShader step, so the split is
// recovered from the diagnostic text.
func classifyShaderError(err error) *Error {
	if strings.Contains(strings.ToLower(err.Error()), "link") {
		return wrapError(ErrorProgramLink, "kernel stages failed to link", err)
	}
	return wrapError(ErrorShaderCompile, "kernel failed to compile", err)
}

// asEffectError normalizes any error into *Error, defaulting to ErrorUnknown.
func asEffectError(err error) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return wrapError(ErrorUnknown, "unexpected failure", err)
}
