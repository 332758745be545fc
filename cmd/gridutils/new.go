package main

import (
	"context"
	"flag"
	"log"

	"github.com/google/subcommands"

	"github.com/eak1mov/go-gridmap/dump"
	"github.com/eak1mov/go-gridmap/grid"
)

type newCmd struct {
	sizeX      uint
	sizeY      uint
	outputPath string
}

func (c *newCmd) Name() string     { return "new" }
func (c *newCmd) Synopsis() string { return "create a fresh ground-only world dump" }
func (c *newCmd) Usage() string {
	return "gridutils new -x <size> -y <size> -o <path>\n"
}
func (c *newCmd) SetFlags(f *flag.FlagSet) {
	f.UintVar(&c.sizeX, "x", 256, "Map width (power of two)")
	f.UintVar(&c.sizeY, "y", 256, "Map height (power of two)")
	f.StringVar(&c.outputPath, "o", "", "Output dump file path")
}

func (c *newCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if !isPowerOfTwo(c.sizeX) || !isPowerOfTwo(c.sizeY) {
		log.Printf("map dimensions must be powers of two, got %dx%d", c.sizeX, c.sizeY)
		return subcommands.ExitUsageError
	}

	if err := dump.WriteFile(c.outputPath, grid.New(c.sizeX, c.sizeY)); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}

func isPowerOfTwo(n uint) bool {
	return n > 0 && n&(n-1) == 0
}
