package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	log.SetFlags(0)

	err := newApp().Run(os.Args)
	if err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "pixpack",
		Usage: "Losslessly compress raw 8-bit raster images",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log what is being done",
			},
		},
		Commands: []*cli.Command{
			{
				Name:    "compress",
				Aliases: []string{"c"},
				Usage:   "Compress a raw image",
				Flags: append(
					ioFlags(),
					&cli.UintFlag{
						Name:     "width",
						Aliases:  []string{"w"},
						Usage:    "Width of the input image in pixels",
						EnvVars:  []string{"PIXPACK_WIDTH"},
						Required: true,
					},
					&cli.BoolFlag{
						Name:    "model",
						Aliases: []string{"m"},
						Usage:   "Apply the first-difference model before run-length encoding",
						EnvVars: []string{"PIXPACK_MODEL"},
					},
					&cli.BoolFlag{
						Name:    "adaptive",
						Aliases: []string{"a"},
						Usage:   "Pick the scan direction per image, overriding --direction",
						EnvVars: []string{"PIXPACK_ADAPTIVE"},
					},
					&cli.StringFlag{
						Name:    "direction",
						Aliases: []string{"d"},
						Usage:   "Scan direction: horizontal or vertical",
						Value:   "horizontal",
						EnvVars: []string{"PIXPACK_DIRECTION"},
					},
				),
				Action: compressImage,
			},
			{
				Name:    "decompress",
				Aliases: []string{"x"},
				Usage:   "Decompress a file back into a raw image",
				Flags:   ioFlags(),
				Action:  decompressImage,
			},
			{
				Name:      "report",
				Usage:     "Compare compressed sizes of raw images under every option combination",
				ArgsUsage: "RAW_FILE [RAW_FILE...]",
				Flags: []cli.Flag{
					&cli.UintFlag{
						Name:     "width",
						Aliases:  []string{"w"},
						Usage:    "Width of the input images in pixels",
						EnvVars:  []string{"PIXPACK_WIDTH"},
						Required: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write the CSV report here instead of standard output",
					},
					&cli.IntFlag{
						Name:    "jobs",
						Aliases: []string{"j"},
						Usage:   "Number of images to process at once (0 for one per CPU)",
					},
				},
				Action: reportImages,
			},
		},
	}
}

func ioFlags() []cli.Flag {
	return []cli.Flag{
		&cli.PathFlag{
			Name:     "input",
			Aliases:  []string{"i"},
			Usage:    "File to read",
			Required: true,
		},
		&cli.PathFlag{
			Name:     "output",
			Aliases:  []string{"o"},
			Usage:    "File to write",
			Required: true,
		},
	}
}
