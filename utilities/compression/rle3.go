package compression

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/dargueta/pixpack"
)

const (
	// RunThreshold is the number of literal copies of a byte that signal a
	// run. A length byte always follows them.
	RunThreshold = 3
	// MaxRunLength is the longest run a single token can represent: the three
	// literals plus up to 255 additional copies.
	MaxRunLength = RunThreshold + 255
)

// CompressRLE3 reads bytes from the input and writes compressed data to the
// output until the input is exhausted. The return value is the number of bytes
// written, only valid if no error occurred.
func CompressRLE3(input io.Reader, output io.Writer) (int64, error) {
	grouper := NewRunLengthGrouper(input, MaxRunLength)

	totalBytesWritten := int64(0)
	for {
		run, err := grouper.GetNextRun()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return totalBytesWritten, nil
			}
			return totalBytesWritten, err
		}

		var token []byte
		if run.RunLength < RunThreshold {
			token = bytes.Repeat([]byte{run.Byte}, run.RunLength)
		} else {
			token = []byte{
				run.Byte,
				run.Byte,
				run.Byte,
				byte(run.RunLength - RunThreshold),
			}
		}

		n, err := output.Write(token)
		if err != nil {
			return totalBytesWritten, err
		}
		totalBytesWritten += int64(n)
	}
}

// DecompressRLE3 expands an RLE3 stream from `input` into `output`. It returns
// the number of bytes written.
//
// If the input ends right after three identical bytes, the run's length byte is
// missing and the error returned wraps both [pixpack.ErrTruncatedRuns] and
// io.ErrUnexpectedEOF.
func DecompressRLE3(input io.Reader, output io.Writer) (int64, error) {
	source := bufio.NewReader(input)
	lastByteRead := -1
	timesSeen := 0
	totalBytesWritten := int64(0)

	for {
		currentByte, err := source.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return totalBytesWritten, nil
			}
			return totalBytesWritten, fmt.Errorf("error reading input: %w", err)
		}

		if int(currentByte) == lastByteRead {
			timesSeen++
		} else {
			lastByteRead = int(currentByte)
			timesSeen = 1
		}

		currentOutput := []byte{currentByte}
		if timesSeen == RunThreshold {
			// Three in a row. The next byte is the number of additional copies.
			repeatCountByte, err := source.ReadByte()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return totalBytesWritten, pixpack.ErrTruncatedRuns.Wrap(
						fmt.Errorf(
							"%w: missing run length after three %02x bytes",
							io.ErrUnexpectedEOF,
							currentByte,
						),
					)
				}
				return totalBytesWritten, fmt.Errorf("error reading input: %w", err)
			}

			currentOutput = bytes.Repeat([]byte{currentByte}, int(repeatCountByte)+1)

			// The run is finished. If the next byte is the same value, it starts
			// a new token and must be counted from one again.
			lastByteRead = -1
			timesSeen = 0
		}

		n, err := output.Write(currentOutput)
		if err != nil {
			return totalBytesWritten, fmt.Errorf("failed to write to output: %w", err)
		}
		totalBytesWritten += int64(n)
	}
}
