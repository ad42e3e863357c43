// Package appmode provides the one-shot CLI search and the long-running search server
package appmode

import (
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/processor"
	"github.com/UnendingLoop/minigrep/internal/reader"
)

// Run loads cfg.FilePath fully and searches it. Nothing is searched if the file can't be read.
func Run(cfg *model.Config) (*model.SearchResult, error) {
	contents, err := reader.ReadInput(cfg.FilePath)
	if err != nil {
		return nil, err
	}

	task := model.SearchTask{
		Query:      cfg.Query,
		Contents:   contents,
		IgnoreCase: !cfg.CaseSensitive,
		FileName:   cfg.FilePath,
	}

	return processor.Processor{}.ProcessInput(&task), nil
}
