package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/pptxtract"
)

// Run executes the all command.
func (c *AllCmd) Run(deps *Dependencies) error {
	result, err := deps.Extractor.ExtractPptx(deps.Ctx, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pptxtract.ErrorMessage(err))
		return err
	}

	if c.Out != "" {
		return c.save(deps, result)
	}
	if c.JSON {
		return writeJSON(deps.Stdout, result)
	}
	return writeText(deps.Stdout, pptxtract.FormatPptx(result))
}

func (c *AllCmd) save(deps *Dependencies, result *pptxtract.ParsedPptx) error {
	store := deps.NewStore(c.Out)
	if err := store.Save(deps.Ctx, result); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pptxtract.ErrorMessage(err))
		if abortErr := store.Abort(); abortErr != nil {
			fmt.Fprintf(deps.Stderr, "warning: failed to clean up %s.tmp: %v\n", c.Out, abortErr)
		}
		return err
	}
	if err := store.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", c.Out, err)
	}

	fmt.Fprintf(deps.Stdout, "Saved %d slides, %d media, %d notes to %s\n",
		len(result.Slides), len(result.Media), len(result.Notes), c.Out)
	return nil
}

// Run executes the slides command.
func (c *SlidesCmd) Run(deps *Dependencies) error {
	slides, err := deps.Extractor.ExtractSlides(deps.Ctx, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pptxtract.ErrorMessage(err))
		return err
	}
	if c.JSON {
		return writeJSON(deps.Stdout, slides)
	}
	return writeText(deps.Stdout, pptxtract.FormatSlides(slides))
}

// Run executes the media command.
func (c *MediaCmd) Run(deps *Dependencies) error {
	media, err := deps.Extractor.ExtractMedia(deps.Ctx, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pptxtract.ErrorMessage(err))
		return err
	}
	if c.JSON {
		return writeJSON(deps.Stdout, media)
	}
	return writeText(deps.Stdout, pptxtract.FormatMedia(media))
}

// Run executes the notes command.
func (c *NotesCmd) Run(deps *Dependencies) error {
	notes, err := deps.Extractor.ExtractNotes(deps.Ctx, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pptxtract.ErrorMessage(err))
		return err
	}
	if c.JSON {
		return writeJSON(deps.Stdout, notes)
	}
	return writeText(deps.Stdout, pptxtract.FormatNotes(notes))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeText(w io.Writer, s string) error {
	if s == "" {
		_, err := fmt.Fprintln(w, "Nothing extracted.")
		return err
	}
	_, err := fmt.Fprintln(w, s)
	return err
}
