package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"

	"github.com/eak1mov/go-gridmap/dump"
	"github.com/eak1mov/go-gridmap/worlddb"
)

type exportCmd struct {
	inputPath  string
	outputPath string
}

func (c *exportCmd) Name() string     { return "export_db" }
func (c *exportCmd) Synopsis() string { return "export a world dump into a sqlite database" }
func (c *exportCmd) Usage() string {
	return "gridutils export_db -i <dump path> -o <db path>\n"
}
func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input dump file path")
	f.StringVar(&c.outputPath, "o", "", "Output database file path")
}

func (c *exportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	m, err := dump.ReadFile(c.inputPath)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	writer, err := worlddb.NewWriter(c.outputPath, m.SizeX(), m.SizeY())
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	defer writer.Close()

	bar := progressbar.NewOptions(m.Len(), progressbar.OptionShowIts(), progressbar.OptionShowCount())

	for t, rec := range m.Tiles() {
		if err := writer.WriteTile(m.TileX(t), m.TileY(t), rec); err != nil {
			log.Println(err)
			return subcommands.ExitFailure
		}
		bar.Add(1)
	}

	bar.Finish()
	fmt.Println()

	if err := writer.Finalize(); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
