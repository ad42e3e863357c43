// Package parser puts os.Args into launch parameters and validates them
package parser

import (
	"errors"
	"flag"
	"strings"

	"github.com/UnendingLoop/minigrep/internal/model"
)

// NewConfig expects args in os.Args layout: program name, query, file path and an optional
// CASE_INSENSITIVE token. Any other 4th value and everything after it is ignored.
func NewConfig(args []string) (*model.Config, error) {
	if len(args) < 3 {
		return nil, model.ErrInsufficientArguments
	}

	cfg := model.Config{
		Query:         strings.Clone(args[1]),
		FilePath:      strings.Clone(args[2]),
		CaseSensitive: true,
	}

	// флаг сравнивается строго, с учетом регистра
	if len(args) >= 4 && args[3] == model.CaseInsensitiveFlag {
		cfg.CaseSensitive = false
	}

	return &cfg, nil
}

// InitServerParam parses server flags, args are expected without the program name.
func InitServerParam(args []string) (*model.ServerParam, error) {
	flagParser := flag.NewFlagSet("minigrep-server", flag.ContinueOnError)
	addr := flagParser.String("address", model.DefaultServerAddress, "specify address for the search server to listen on")

	if err := flagParser.Parse(args); err != nil {
		return nil, err
	}

	if *addr == "" {
		return nil, errors.New("empty server address")
	}

	return &model.ServerParam{Address: *addr}, nil
}
