//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strconv"

	"github.com/joho/godotenv"

	"edgelcd/app"
	"edgelcd/hal"
)

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func main() {
	_ = godotenv.Load()

	scale, _ := strconv.Atoi(envOr("LCD_SCALE", "4"))

	var cfg hal.HeadlessConfig
	var win hal.WindowConfig
	var dump bool
	var assetsDir string
	var appCfg app.Config
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Frame rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N frames in headless mode (0 = run forever).")
	flag.BoolVar(&dump, "dump", false, "Print the last frame to stdout when headless mode exits.")
	flag.IntVar(&win.Scale, "scale", scale, "Window zoom factor.")
	flag.StringVar(&assetsDir, "assets", envOr("LCD_ASSETS", ""), "Directory with bitmaps and scripts (default: built-in).")
	flag.StringVar(&appCfg.Script, "script", envOr("LCD_SCRIPT", ""), "Lua screen script to run, relative to the assets.")
	flag.StringVar(&appCfg.ModelName, "model", "", "Model name shown in the status bar.")
	flag.Parse()

	if assetsDir != "" {
		appCfg.Assets = os.DirFS(assetsDir)
	} else {
		appCfg.Assets = app.DefaultAssets()
	}
	if appCfg.Script != "" {
		if _, err := fs.Stat(appCfg.Assets, appCfg.Script); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, appCfg)
	}

	if cfg.Enabled {
		if dump {
			cfg.Dump = os.Stdout
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp, win); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
