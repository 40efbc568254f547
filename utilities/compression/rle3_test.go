package compression_test

import (
	"bytes"
	"crypto/rand"
	"errors"
	"io"
	"testing"

	"github.com/dargueta/pixpack"
	c "github.com/dargueta/pixpack/utilities/compression"
	"github.com/noxer/bytewriter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type RLE3TestCase struct {
	Input          []byte
	ExpectedOutput []byte
	Name           string
}

func TestCompressRLE3__Basic(t *testing.T) {
	tests := []RLE3TestCase{
		{[]byte{}, []byte{}, "empty"},
		{[]byte{4, 4}, []byte{4, 4}, "run with two only"},
		{[]byte{4, 4, 4}, []byte{4, 4, 4, 0}, "run with three only"},
		{[]byte{0, 1, 2, 3, 4}, []byte{0, 1, 2, 3, 4}, "no runs"},
		{[]byte{6, 1, 3, 0, 0}, []byte{6, 1, 3, 0, 0}, "two at end"},
		{[]byte{6, 1, 0, 0, 0}, []byte{6, 1, 0, 0, 0, 0}, "three at end"},
		{[]byte{9, 5, 5, 5, 5, 5, 3, 7}, []byte{9, 5, 5, 5, 2, 3, 7}, "short run"},
		{
			[]byte{9, 5, 5, 5, 5, 5, 5, 3, 3, 3, 3, 7, 2, 6},
			[]byte{9, 5, 5, 5, 3, 3, 3, 3, 1, 7, 2, 6},
			"adjacent runs",
		},
		{
			bytes.Repeat([]byte{5}, 1024),
			[]byte{5, 5, 5, 255, 5, 5, 5, 255, 5, 5, 5, 255, 5, 5, 5, 247},
			"single long run",
		},
		{
			bytes.Repeat([]byte{8}, 257),
			[]byte{8, 8, 8, 254},
			"257",
		},
		{
			append(bytes.Repeat([]byte{8}, 258), 1),
			[]byte{8, 8, 8, 255, 1},
			"258 then different",
		},
		{
			bytes.Repeat([]byte{8}, 259),
			[]byte{8, 8, 8, 255, 8},
			"259",
		},
		{
			bytes.Repeat([]byte{8}, 260),
			[]byte{8, 8, 8, 255, 8, 8},
			"260",
		},
		{
			bytes.Repeat([]byte{8}, 261),
			[]byte{8, 8, 8, 255, 8, 8, 8, 0},
			"261",
		},
	}

	for _, test := range tests {
		t.Run(
			test.Name,
			func(t *testing.T) {
				runCompressionTestCase(t, test)
			},
		)
	}
}

func TestDecompressRLE3__Basic(t *testing.T) {
	tests := []RLE3TestCase{
		{[]byte{}, []byte{}, "empty"},
		{[]byte{1, 1, 1, 0}, []byte{1, 1, 1}, "zero extra"},
		{[]byte{1, 1, 1, 2, 1}, []byte{1, 1, 1, 1, 1, 1}, "run then same literal"},
		{[]byte{7, 7, 7, 3, 7, 7, 7, 1}, bytes.Repeat([]byte{7}, 10), "two tokens same value"},
		// The length byte may itself equal the run value without starting a
		// new run.
		{[]byte{2, 2, 2, 2, 2}, []byte{2, 2, 2, 2, 2, 2}, "length equals value"},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			output, err := c.DecodeBytes(test.Input)
			require.NoError(t, err)
			assert.Equal(t, test.ExpectedOutput, output)
		})
	}
}

// Round-trip test of completely random bytes
func TestRLE3RoundTrip__CompletelyRandom(t *testing.T) {
	originalData := make([]byte, 1852)
	rand.Read(originalData)
	runRoundTripTestCase(t, originalData)
}

func TestRLE3RoundTrip__EntirelyNulls(t *testing.T) {
	originalData := make([]byte, 571)
	runRoundTripTestCase(t, originalData)
}

func TestRLE3RoundTrip__EntirelyNonNullRun(t *testing.T) {
	runRoundTripTestCase(t, bytes.Repeat([]byte{182}, 934))
}

func TestRLE3RoundTrip__Empty(t *testing.T) {
	runRoundTripTestCase(t, []byte{})
}

// Every run length from 1 through a bit more than two full tokens, with a
// different byte on either side.
func TestRLE3RoundTrip__AllRunLengths(t *testing.T) {
	for length := 1; length <= 2*c.MaxRunLength+5; length++ {
		data := append([]byte{1}, bytes.Repeat([]byte{2}, length)...)
		data = append(data, 3)
		runRoundTripTestCase(t, data)
	}
}

func TestRLE3Decompress__MissingRepeatCount(t *testing.T) {
	data := []byte{9, 1, 4, 4, 4}
	decompressed := make([]byte, 16)
	writer := bytewriter.New(decompressed)

	_, err := c.DecompressRLE3(bytes.NewReader(data), writer)
	if err == nil {
		t.Fatal("read with missing repeat count should've failed but didn't")
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf(
			"error type is wrong, doesn't wrap io.ErrUnexpectedEOF: %s",
			err.Error(),
		)
	}
	assert.ErrorIs(t, err, pixpack.ErrTruncatedRuns)
	assert.ErrorIs(t, err, pixpack.ErrFormat)
}

func TestRLE3DecodeBytes__TruncatedReturnsNothing(t *testing.T) {
	output, err := c.DecodeBytes([]byte{1, 2, 3, 3, 3})
	assert.ErrorIs(t, err, pixpack.ErrTruncatedRuns)
	assert.Nil(t, output)
}

////////////////////////////////////////////////////////////////////////////////
// Helper functions

func runCompressionTestCase(t *testing.T, test RLE3TestCase) {
	inputBuffer := bytes.NewBuffer(test.Input)
	outputBuffer := make([]byte, len(test.ExpectedOutput)*2)
	outputWriter := bytewriter.New(outputBuffer)

	n, err := c.CompressRLE3(inputBuffer, outputWriter)

	if err != nil {
		t.Errorf("unexpected error: %s", err.Error())
		return
	}

	if n != int64(len(test.ExpectedOutput)) {
		t.Errorf(
			"bytes written should be %d, got %d",
			len(test.ExpectedOutput),
			n,
		)
	}

	if !bytes.Equal(test.ExpectedOutput, outputBuffer[:n]) {
		t.Errorf(
			"output data is wrong: expected %v, got %v",
			test.ExpectedOutput,
			outputBuffer[:n],
		)
	}
}

func runRoundTripTestCase(t *testing.T, originalData []byte) {
	inputBuffer := bytes.NewBuffer(originalData)

	// If the source data is sufficiently random, the "compressed" data can
	// actually be larger than the input. Thus, we need to make the compressed
	// buffer larger than the input.
	compressedBuffer := make([]byte, len(originalData)*2)
	compressedWriter := bytewriter.New(compressedBuffer)

	n, err := c.CompressRLE3(inputBuffer, compressedWriter)
	if err != nil {
		t.Fatalf("unexpected error while compressing: %s", err.Error())
	} else {
		t.Logf("compressed %d to %d", len(originalData), n)
	}

	outputBuffer := make([]byte, len(originalData))
	outputWriter := bytewriter.New(outputBuffer)
	compressedReader := bytes.NewReader(compressedBuffer[:n])

	n, err = c.DecompressRLE3(compressedReader, outputWriter)
	if err != nil {
		t.Fatalf("unexpected error while decompressing: %s", err.Error())
	}
	if n != int64(len(originalData)) {
		t.Errorf(
			"returned decompressed size is wrong; expected %d, got %d",
			len(originalData),
			n,
		)
	}
	if !bytes.Equal(originalData, outputBuffer) {
		t.Error("decompressed data doesn't match original data")
	}
}
