package main

import (
	"context"
	"flag"
	"log"

	"github.com/google/subcommands"

	"github.com/eak1mov/go-gridmap/dump"
)

type convertCmd struct {
	inputPath   string
	outputPath  string
	compression string
}

func (c *convertCmd) Name() string     { return "convert" }
func (c *convertCmd) Synopsis() string { return "re-encode a world dump" }
func (c *convertCmd) Usage() string {
	return "gridutils convert -i <dump path> -o <dump path> [-c gzip|none]\n"
}
func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input dump file path")
	f.StringVar(&c.outputPath, "o", "", "Output dump file path")
	f.StringVar(&c.compression, "c", "gzip", "Output compression (gzip or none)")
}

func (c *convertCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	var compression dump.Compression
	switch c.compression {
	case "gzip":
		compression = dump.CompressionGzip
	case "none":
		compression = dump.CompressionNone
	default:
		log.Printf("unknown compression %q", c.compression)
		return subcommands.ExitUsageError
	}

	m, err := dump.ReadFile(c.inputPath)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	if err := dump.WriteFile(c.outputPath, m, dump.WithCompression(compression)); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
