package cmd

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/soocke/roi-binarizer/domain/binarize"
	"github.com/soocke/roi-binarizer/domain/capture"
	"github.com/soocke/roi-binarizer/domain/job"
)

type binarizeFlags struct {
	in, out, rect, canvas string
	scale                 float64
	screen                bool
}

// grabScreen is replaced in tests.
var grabScreen = func(logger *slog.Logger) (image.Image, error) {
	return capture.NewService(logger).Grab()
}

func newBinarizeCmd(e *env) *cobra.Command {
	f := &binarizeFlags{}
	cmd := &cobra.Command{
		Use:   "binarize",
		Short: "Binarize a region of an image without the GUI",
		Example: `  roi-binarizer binarize --in photo.jpg --out text.png --rect 10,10,200,80
  roi-binarizer binarize --in photo.jpg --out text --rect 10,10,200,80 --canvas 600x600 -t 90
  roi-binarizer binarize --screen --out shot.png --rect 0,0,400,300`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := f.options(e)
			if err != nil {
				return err
			}
			res, err := job.Run(opts, e.logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved to: %s\n", res.Path)
			return nil
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.in, "in", "i", "", "source image")
	fl.BoolVar(&f.screen, "screen", false, "use a screenshot of the whole screen as source")
	fl.StringVarP(&f.out, "out", "o", "", "destination image (.png added when no extension)")
	fl.StringVarP(&f.rect, "rect", "r", "", "selection x1,y1,x2,y2 in display coordinates")
	fl.Float64Var(&f.scale, "scale", 1, "display scale of the selection coordinates")
	fl.StringVar(&f.canvas, "canvas", "", "derive the scale by fitting the image into WIDTHxHEIGHT")
	fl.IntP("threshold", "t", int(binarize.DefaultThreshold), "threshold 0-255, pixels above it turn white")
	_ = e.v.BindPFlag("threshold", fl.Lookup("threshold"))
	cmd.MarkFlagsOneRequired("in", "screen")
	cmd.MarkFlagsMutuallyExclusive("in", "screen")
	_ = cmd.MarkFlagRequired("out")
	_ = cmd.MarkFlagRequired("rect")
	return cmd
}

func (f *binarizeFlags) options(e *env) (job.Options, error) {
	rect, err := job.ParseRect(f.rect)
	if err != nil {
		return job.Options{}, err
	}
	opts := job.Options{
		In:        f.in,
		Out:       f.out,
		Rect:      rect,
		Scale:     f.scale,
		Threshold: binarize.ClampThreshold(e.cfg.Threshold),
	}
	if f.screen {
		if opts.Source, err = grabScreen(e.logger); err != nil {
			return job.Options{}, fmt.Errorf("capture screen: %w", err)
		}
	}
	if f.canvas != "" {
		if opts.CanvasW, opts.CanvasH, err = job.ParseSize(f.canvas); err != nil {
			return job.Options{}, err
		}
	}
	return opts, nil
}
