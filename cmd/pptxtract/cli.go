package main

import (
	"context"
	"io"

	"github.com/fwojciec/pptxtract"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Extractor pptxtract.Extractor

	// NewStore returns a store that commits results to dir.
	NewStore func(dir string) pptxtract.ResultStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Concurrency int  `short:"c" default:"0" env:"PPTXTRACT_CONCURRENCY" help:"Entries decoded at once per group (0 = no limit)"`
	ExcludeRels bool `name:"exclude-rels" env:"PPTXTRACT_EXCLUDE_RELS" help:"Skip .rels relationship parts"`
	Verbose     bool `short:"v" help:"Log every slide parse"`

	All    AllCmd    `cmd:"" help:"Extract slides, media and notes"`
	Slides SlidesCmd `cmd:"" help:"Extract slide text"`
	Media  MediaCmd  `cmd:"" help:"Extract embedded media"`
	Notes  NotesCmd  `cmd:"" help:"Extract speaker notes"`
}

// AllCmd is the "all" subcommand.
type AllCmd struct {
	File string `arg:"" help:"Path to the .pptx file"`
	JSON bool   `help:"Print the result as JSON"`
	Out  string `short:"o" help:"Write the result to this directory instead of printing it"`
}

// SlidesCmd is the "slides" subcommand.
type SlidesCmd struct {
	File string `arg:"" help:"Path to the .pptx file"`
	JSON bool   `help:"Print the result as JSON"`
}

// MediaCmd is the "media" subcommand.
type MediaCmd struct {
	File string `arg:"" help:"Path to the .pptx file"`
	JSON bool   `help:"Print the result as JSON"`
}

// NotesCmd is the "notes" subcommand.
type NotesCmd struct {
	File string `arg:"" help:"Path to the .pptx file"`
	JSON bool   `help:"Print the result as JSON"`
}
