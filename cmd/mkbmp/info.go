package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-errors/errors"
	"github.com/spf13/cobra"

	"edgelcd/gui/assets"
)

func init() {
	rootCmd.AddCommand(infoCmd)
}

var infoCmd = &cobra.Command{
	Use:   "info <asset.bmp>...",
	Short: "describe packed assets",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(func() error { return describe(cmd.OutOrStdout(), args) })
	},
}

func describe(w io.Writer, paths []string) error {
	for _, p := range paths {
		img, err := assets.LoadAll(os.DirFS(filepath.Dir(p)), filepath.Base(p))
		if err != nil {
			return errors.WrapPrefix(err, p, 0)
		}
		fmt.Fprintf(w, "%s: %dx%d, %d frame(s), %d bytes\n", p, img.Width(), img.Height(), img.Frames(), len(img))
	}
	return nil
}
