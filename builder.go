package main

import (
	"os"

	"qadeck/deck"
	"qadeck/export"
	"qadeck/logger"
)

// buildPresentation assembles the dashboard deck, renders it and writes
// the .pptx file at path, overwriting any existing file. Returns the path
// the file was written to.
func buildPresentation(path string, log *logger.Logger) (string, error) {
	d := deck.BuildDashboardDeck()
	log.Logf("deck assembled: %d slides", len(d.Slides))

	data, err := export.NewPPTXService().RenderDeck(d)
	if err != nil {
		return "", WrapOperationError("render presentation", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", &OutputWriteError{Path: path, Err: err}
	}
	log.Logf("presentation written: %s (%d bytes)", path, len(data))
	return path, nil
}
