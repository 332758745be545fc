package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/google/subcommands"

	"github.com/eak1mov/go-gridmap/dump"
	"github.com/eak1mov/go-gridmap/tile"
)

type infoCmd struct {
	inputPath string
}

func (c *infoCmd) Name() string     { return "info" }
func (c *infoCmd) Synopsis() string { return "print dimensions and kind histogram of a world dump" }
func (c *infoCmd) Usage() string {
	return "gridutils info -i <path>\n"
}
func (c *infoCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input dump file path")
}

func (c *infoCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	m, err := dump.ReadFile(c.inputPath)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	var histogram [16]int
	for _, rec := range m.Tiles() {
		histogram[rec.Kind()]++
	}

	fmt.Printf("size: %dx%d (%d tiles)\n", m.SizeX(), m.SizeY(), m.Len())
	for kind, count := range histogram {
		if count > 0 {
			fmt.Printf("%10s: %d\n", tile.Kind(kind), count)
		}
	}

	return subcommands.ExitSuccess
}
