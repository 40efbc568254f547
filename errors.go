package pixpack

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

type CodecError interface {
	error
	WithMessage(message string) CodecError
	Wrap(err error) CodecError
}

type basePixpackError string

const rootError = basePixpackError("")

// ErrFormat is the parent of every error caused by malformed compressed data.
// Use errors.Is(err, ErrFormat) to tell corrupt input apart from caller
// mistakes.
var ErrFormat = rootError.WithMessage("Invalid compressed data")

var ErrDimensionMismatch = rootError.WithMessage("Pixel count doesn't match image dimensions")
var ErrFirstBitNotZero = ErrFormat.WithMessage("first bit of the code stream is not 0")
var ErrInvalidArgument = rootError.WithMessage("Invalid argument")
var ErrInvalidKey = rootError.WithMessage("Key outside of the symbol alphabet")
var ErrStreamClosed = rootError.WithMessage("Code stream already terminated")
var ErrTreeNotEmpty = ErrFormat.WithMessage("decoding requires a freshly initialized tree")
var ErrTruncatedHeader = ErrFormat.WithMessage("header truncated")
var ErrTruncatedRuns = ErrFormat.WithMessage("run-length stream truncated")

func (e basePixpackError) Error() string {
	return string(e)
}

func (e basePixpackError) RootCause() CodecError {
	return e
}

func (e basePixpackError) WithMessage(message string) CodecError {
	return customCodecError{
		message:       message,
		originalError: e,
	}
}

func (e basePixpackError) Wrap(err error) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

// -----------------------------------------------------------------------------

type customCodecError struct {
	message       string
	originalError error
}

// Error implements the `error` object interface. When called, it returns a string
// describing the error.
func (e customCodecError) Error() string {
	return e.message
}

func (e customCodecError) WithMessage(message string) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.message, message),
		originalError: e,
	}
}

func (e customCodecError) Wrap(err error) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

func (e customCodecError) Unwrap() error {
	return e.originalError
}
