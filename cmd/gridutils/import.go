package main

import (
	"context"
	"flag"
	"log"

	"github.com/google/subcommands"

	"github.com/eak1mov/go-gridmap/dump"
	"github.com/eak1mov/go-gridmap/worlddb"
)

type importCmd struct {
	inputPath    string
	outputPath   string
	uncompressed bool
}

func (c *importCmd) Name() string     { return "import_db" }
func (c *importCmd) Synopsis() string { return "import a sqlite world database back into a dump" }
func (c *importCmd) Usage() string {
	return "gridutils import_db -i <db path> -o <dump path> [-raw]\n"
}
func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input database file path")
	f.StringVar(&c.outputPath, "o", "", "Output dump file path")
	f.BoolVar(&c.uncompressed, "raw", false, "Write the dump without compression")
}

func (c *importCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	reader, err := worlddb.NewReader(c.inputPath)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	defer reader.Close()

	m, err := reader.ReadMap()
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	opts := []dump.WriteOption{}
	if c.uncompressed {
		opts = append(opts, dump.WithCompression(dump.CompressionNone))
	}

	if err := dump.WriteFile(c.outputPath, m, opts...); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
