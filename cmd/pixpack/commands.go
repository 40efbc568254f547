package main

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/dargueta/pixpack"
	"github.com/dargueta/pixpack/codec"
	"github.com/dargueta/pixpack/rawimage"
	"github.com/dargueta/pixpack/report"
	"github.com/urfave/cli/v2"
)

func optionsFromContext(context *cli.Context) (pixpack.Options, error) {
	direction, err := pixpack.ParseDirection(context.String("direction"))
	if err != nil {
		return pixpack.Options{}, err
	}
	return pixpack.Options{
		Model:     context.Bool("model"),
		Direction: direction,
		Adaptive:  context.Bool("adaptive"),
	}, nil
}

func widthFromContext(context *cli.Context) (uint32, error) {
	width := context.Uint("width")
	if width < 1 || uint64(width) > math.MaxUint32 {
		return 0, pixpack.ErrInvalidArgument.WithMessage(
			fmt.Sprintf("width must be in [1, %d], got %d", uint32(math.MaxUint32), width))
	}
	return uint32(width), nil
}

func compressImage(context *cli.Context) error {
	width, err := widthFromContext(context)
	if err != nil {
		return err
	}
	opts, err := optionsFromContext(context)
	if err != nil {
		return err
	}

	sourceFilePath := context.Path("input")
	outputFilePath := context.Path("output")

	image, err := rawimage.Load(sourceFilePath, width)
	if err != nil {
		return fmt.Errorf("failed to load `%v`: %w", sourceFilePath, err)
	}
	if context.Bool("verbose") {
		resolved := codec.ResolveOptions(image, opts)
		log.Printf(
			"compressing %dx%d image `%v` with %s",
			image.Width(),
			image.Height(),
			sourceFilePath,
			resolved,
		)
	}

	outFile, err := os.Create(outputFilePath)
	if err != nil {
		return fmt.Errorf("failed to open file for writing: `%v`: %w", outputFilePath, err)
	}
	defer outFile.Close()

	nWritten, err := codec.CompressTo(outFile, image, opts)
	if err != nil {
		return fmt.Errorf("error compressing image: %w", err)
	}

	if context.Bool("verbose") {
		log.Printf(
			"compressed %d bytes to %d (%.1f%%)",
			image.Size(),
			nWritten,
			100*float64(nWritten)/float64(image.Size()),
		)
	}
	return outFile.Close()
}

func decompressImage(context *cli.Context) error {
	sourceFilePath := context.Path("input")
	outputFilePath := context.Path("output")

	sourceFile, err := os.Open(sourceFilePath)
	if err != nil {
		return fmt.Errorf("failed to open file for reading: `%v`: %w", sourceFilePath, err)
	}
	defer sourceFile.Close()

	// Decode fully before creating the output, so a corrupt input never leaves
	// a partial image behind.
	image, err := codec.DecompressFrom(sourceFile)
	if err != nil {
		return fmt.Errorf("error expanding `%v`: %w", sourceFilePath, err)
	}

	if err = image.Save(outputFilePath); err != nil {
		return fmt.Errorf("failed to write `%v`: %w", outputFilePath, err)
	}

	if context.Bool("verbose") {
		log.Printf(
			"decompressed %dx%d image to `%v`", image.Width(), image.Height(), outputFilePath)
	}
	return nil
}

func reportImages(context *cli.Context) error {
	width, err := widthFromContext(context)
	if err != nil {
		return err
	}

	paths := context.Args().Slice()
	if len(paths) == 0 {
		return pixpack.ErrInvalidArgument.WithMessage("no input files given")
	}

	rows, measureErr := report.MeasureFiles(paths, width, context.Int("jobs"))
	if measureErr != nil {
		// Still report on whatever succeeded.
		log.Printf("some images failed: %s", measureErr.Error())
	}
	if context.Bool("verbose") {
		log.Printf("measured %d of %d images", len(rows), len(paths))
	}

	output := os.Stdout
	if path := context.String("output"); path != "" {
		output, err = os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to open file for writing: `%v`: %w", path, err)
		}
		defer output.Close()
	}

	if err = report.WriteCSV(output, rows); err != nil {
		return err
	}
	return measureErr
}
