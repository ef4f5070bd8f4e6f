//go:build tinygo

package main

import (
	"edgelcd/app"
	"edgelcd/hal"
)

func main() {
	app.Run(hal.New())
}
