package compression

import (
	"bufio"
	"io"
)

// ByteRun represents a single run of a particular byte value.
type ByteRun struct {
	// Byte is the byte value for this run.
	Byte byte
	// RunLength gives the number of times the byte occurs in the run (not the
	// number of times it's repeated).
	//
	// A valid run will always have this be 1 or greater. A value less than 1
	// indicates either EOF was encountered, or an error occurred.
	RunLength int
}

// InvalidRun is returned by [RunLengthGrouper.GetNextRun] when there's no run
// to return.
var InvalidRun = ByteRun{Byte: 0, RunLength: 0}

// RunLengthGrouper splits a byte stream into runs of identical values, never
// longer than a fixed maximum.
type RunLengthGrouper struct {
	rd           *bufio.Reader
	maxRunLength int
}

// NewRunLengthGrouper creates a grouper reading from `rd`. Runs longer than
// `maxRunLength` are returned as several consecutive runs of the same byte. A
// maximum less than 1 means runs are unbounded.
func NewRunLengthGrouper(rd io.Reader, maxRunLength int) RunLengthGrouper {
	return RunLengthGrouper{rd: bufio.NewReader(rd), maxRunLength: maxRunLength}
}

// GetNextRun returns a [ByteRun] for the next byte or run of byte values in the
// stream. Once the stream is exhausted it returns [InvalidRun] and io.EOF.
func (grouper RunLengthGrouper) GetNextRun() (ByteRun, error) {
	firstByte, err := grouper.rd.ReadByte()
	// Bail if any error occurred, including EOF.
	if err != nil {
		return InvalidRun, err
	}

	var runLength int
	for runLength = 1; grouper.maxRunLength < 1 || runLength < grouper.maxRunLength; runLength++ {
		currentByte, err := grouper.rd.ReadByte()
		if err != nil {
			if err == io.EOF {
				break
			}
			return InvalidRun, err
		}
		if currentByte != firstByte {
			// Hit a different byte, back up and return.
			grouper.rd.UnreadByte()
			break
		}
	}
	return ByteRun{Byte: firstByte, RunLength: runLength}, nil
}
