package main

import (
	"image"
	_ "image/png"
	"os"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"
	_ "golang.org/x/image/bmp"

	"edgelcd/gui/assets"
)

func init() {
	packCmd.Flags().IntVar(&frameHeight, "frame-height", 0, "rows per animation frame (0 = whole image)")
	packCmd.Flags().Uint8Var(&threshold, "threshold", assets.DefaultThreshold, "grey level at which a pixel is lit")
	rootCmd.AddCommand(packCmd)
}

var (
	frameHeight int
	threshold   uint8
)

var packCmd = &cobra.Command{
	Use:   "pack <in.png|in.bmp> <out.bmp>",
	Short: "pack an image",
	Long:  "pack an image, optionally cut into equal horizontal frames, into a display asset",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error { return packFile(args[0], args[1], frameHeight, threshold) })
	},
}

func packFile(in, out string, frameH int, th uint8) error {
	f, err := os.Open(in)
	if err != nil {
		return errors.New(err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return errors.Errorf("decode %s: %v", in, err)
	}
	if frameH <= 0 {
		frameH = img.Bounds().Dy()
	}
	bm, err := assets.PackFrames(img, frameH, th)
	if err != nil {
		return errors.WrapPrefix(err, in, 0)
	}
	if err := os.WriteFile(out, bm, 0o644); err != nil {
		return errors.New(err)
	}
	if debug {
		logf("%s (%s) -> %s: %dx%d, %d frame(s)", in, format, out, bm.Width(), bm.Height(), bm.Frames())
	}
	return nil
}
