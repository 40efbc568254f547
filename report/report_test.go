package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dargueta/pixpack"
	"github.com/dargueta/pixpack/report"
	pt "github.com/dargueta/pixpack/testing"
	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasure(t *testing.T) {
	image := pt.CreateStripedImage(64, 48, 4, 10, 200)

	row, err := report.Measure("stripes", image)
	require.NoError(t, err)

	assert.Equal(t, "stripes", row.Name)
	assert.EqualValues(t, 64, row.Width)
	assert.EqualValues(t, 48, row.Height)
	assert.Equal(t, 64*48, row.RawSize)
	assert.Equal(t, pixpack.Vertical.String(), row.ChosenDirection)
	assert.Less(t, row.VerticalChanges, row.HorizontalChanges)

	// Adaptive picked vertical, so the two must be identical.
	assert.Equal(t, row.Vertical, row.Adaptive)
	assert.Equal(t, row.ModelVertical, row.ModelAdaptive)
	assert.Less(t, row.Vertical, row.Horizontal)

	assert.NotEmpty(t, row.Best)
	assert.Greater(t, row.Zstd, 0)
	assert.Greater(t, row.Snappy, 0)
}

func TestWriteCSV(t *testing.T) {
	rows := []report.Row{
		{Name: "a.raw", Width: 2, Height: 3, RawSize: 6, Best: "adaptive", Zstd: 15},
		{Name: "b.raw", Width: 5, Height: 1, RawSize: 5, Best: "vertical", Snappy: 7},
	}

	var buffer bytes.Buffer
	require.NoError(t, report.WriteCSV(&buffer, rows))

	lines := bytes.Split(bytes.TrimSpace(buffer.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.True(t, bytes.HasPrefix(lines[0], []byte("image,width,height,raw,")), string(lines[0]))

	var parsed []report.Row
	require.NoError(t, gocsv.UnmarshalBytes(buffer.Bytes(), &parsed))
	assert.Equal(t, rows, parsed)
}

func TestMeasureFiles(t *testing.T) {
	directory := t.TempDir()

	good := filepath.Join(directory, "good.raw")
	require.NoError(t, pt.CreateBlobImage(32, 16, 7).Save(good))

	gradient := filepath.Join(directory, "gradient.raw")
	require.NoError(t, pt.CreateGradientImage(32, 8, 1, 1).Save(gradient))

	// 33 bytes isn't a whole number of 32-pixel rows.
	bad := filepath.Join(directory, "bad.raw")
	require.NoError(t, os.WriteFile(bad, make([]byte, 33), 0o644))

	missing := filepath.Join(directory, "missing.raw")

	rows, err := report.MeasureFiles([]string{good, bad, gradient, missing}, 32, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, pixpack.ErrDimensionMismatch)
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.Len(t, rows, 2)
	assert.Equal(t, "good.raw", rows[0].Name)
	assert.EqualValues(t, 16, rows[0].Height)
	assert.Equal(t, "gradient.raw", rows[1].Name)
	assert.EqualValues(t, 8, rows[1].Height)
}

func TestMeasureFiles__AllGood(t *testing.T) {
	directory := t.TempDir()
	var paths []string
	for i := 0; i < 5; i++ {
		path := filepath.Join(directory, string(rune('a'+i))+".raw")
		require.NoError(t, pt.CreateBlobImage(20, 20, int64(i)).Save(path))
		paths = append(paths, path)
	}

	rows, err := report.MeasureFiles(paths, 20, 0)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	for i, row := range rows {
		assert.Equal(t, filepath.Base(paths[i]), row.Name)
	}
}
