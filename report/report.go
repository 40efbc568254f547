// Package report measures how well images compress under every combination of
// encoder options, alongside general-purpose compressors for reference.
package report

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"runtime"

	"github.com/dargueta/pixpack"
	"github.com/dargueta/pixpack/codec"
	"github.com/dargueta/pixpack/rawimage"
	"github.com/dargueta/pixpack/utilities/scan"
	"github.com/gocarina/gocsv"
	"github.com/golang/snappy"
	"github.com/hashicorp/go-multierror"
	"github.com/klauspost/compress/zstd"
)

// Row holds the measurements for one image. All sizes are in bytes and include
// the container header where there is one.
type Row struct {
	Name              string `csv:"image"`
	Width             uint32 `csv:"width"`
	Height            uint32 `csv:"height"`
	RawSize           int    `csv:"raw"`
	HorizontalChanges uint32 `csv:"horizontal_changes"`
	VerticalChanges   uint32 `csv:"vertical_changes"`
	ChosenDirection   string `csv:"chosen_direction"`
	Horizontal        int    `csv:"horizontal"`
	Vertical          int    `csv:"vertical"`
	Adaptive          int    `csv:"adaptive"`
	ModelHorizontal   int    `csv:"model_horizontal"`
	ModelVertical     int    `csv:"model_vertical"`
	ModelAdaptive     int    `csv:"model_adaptive"`
	Best              string `csv:"best"`
	Zstd              int    `csv:"zstd"`
	Snappy            int    `csv:"snappy"`
}

type variant struct {
	name    string
	options pixpack.Options
	size    *int
}

// Measure compresses `image` with every option combination and with the
// reference compressors. Each of our own encodings is decompressed again and
// compared with the original; a mismatch is an error.
func Measure(name string, image pixpack.PixelBuffer) (Row, error) {
	raw := scan.Linearize(image, pixpack.Horizontal)
	row := Row{
		Name:              name,
		Width:             image.Width(),
		Height:            image.Height(),
		RawSize:           len(raw),
		HorizontalChanges: scan.CountChanges(image, pixpack.Horizontal),
		VerticalChanges:   scan.CountChanges(image, pixpack.Vertical),
		ChosenDirection:   scan.ChooseDirection(image).String(),
	}

	variants := []variant{
		{"horizontal", pixpack.Options{Direction: pixpack.Horizontal}, &row.Horizontal},
		{"vertical", pixpack.Options{Direction: pixpack.Vertical}, &row.Vertical},
		{"adaptive", pixpack.Options{Adaptive: true}, &row.Adaptive},
		{"model+horizontal", pixpack.Options{Model: true, Direction: pixpack.Horizontal}, &row.ModelHorizontal},
		{"model+vertical", pixpack.Options{Model: true, Direction: pixpack.Vertical}, &row.ModelVertical},
		{"model+adaptive", pixpack.Options{Model: true, Adaptive: true}, &row.ModelAdaptive},
	}

	bestSize := -1
	for _, v := range variants {
		compressed, err := codec.Compress(image, v.options)
		if err != nil {
			return Row{}, fmt.Errorf("%s: %w", v.name, err)
		}

		restored, err := codec.Decompress(compressed)
		if err != nil {
			return Row{}, fmt.Errorf("%s: verification failed: %w", v.name, err)
		}
		if !bytes.Equal(raw, restored.Bytes()) {
			return Row{}, fmt.Errorf("%s: verification failed: pixels differ", v.name)
		}

		*v.size = len(compressed)
		if bestSize < 0 || len(compressed) < bestSize {
			bestSize = len(compressed)
			row.Best = v.name
		}
	}

	zstdSize, err := zstdSize(raw)
	if err != nil {
		return Row{}, err
	}
	row.Zstd = zstdSize
	row.Snappy = len(snappy.Encode(nil, raw))
	return row, nil
}

func zstdSize(data []byte) (int, error) {
	encoder, err := zstd.NewWriter(
		nil,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
	)
	if err != nil {
		return 0, err
	}
	defer encoder.Close()
	return len(encoder.EncodeAll(data, nil)), nil
}

// MeasureFiles loads raw images of the given width and measures each of them.
// Up to `workers` images are processed at once; each one is still a single
// sequential session. If `workers` is less than 1, GOMAXPROCS is used.
//
// Rows come back in the order of `paths`, skipping images that failed. The
// error, if not nil, lists every failure.
func MeasureFiles(paths []string, width uint32, workers int) ([]Row, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]*Row, len(paths))
	semaphore := make(chan struct{}, workers)
	group := new(multierror.Group)

	for i, path := range paths {
		i, path := i, path
		group.Go(func() error {
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			image, err := rawimage.Load(path, width)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			row, err := Measure(filepath.Base(path), image)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = &row
			return nil
		})
	}

	err := group.Wait().ErrorOrNil()

	rows := make([]Row, 0, len(paths))
	for _, row := range results {
		if row != nil {
			rows = append(rows, *row)
		}
	}
	return rows, err
}

// WriteCSV writes the rows as CSV with a header line.
func WriteCSV(output io.Writer, rows []Row) error {
	return gocsv.Marshal(&rows, output)
}
