// Command mkbmp converts images into packed monochrome display assets.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "mkbmp",
	Short:        "mkbmp packs images for the 128x64 display",
	Long:         "mkbmp converts PNG and BMP images into the page-packed bitmap assets drawn by the renderer",
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

var debug bool

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print error stacks")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(fn func() error) {
	if err := fn(); err != nil {
		if stackFramer, ok := err.(interface{ ErrorStack() string }); debug && ok {
			fmt.Fprintln(os.Stderr, stackFramer.ErrorStack())
			os.Exit(1)
		}
		log.Fatal(err)
	}
}

func logf(format string, args ...any) { log.Printf(format, args...) }
