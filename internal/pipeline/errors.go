package pipeline

import (
	"errors"

	"github.com/yi-working/csvconcat/internal/csvfile"
)

// Sentinel errors returned (wrapped) by [Discover], [Merge] and [Run].
var (
	ErrInputDir         = errors.New("input directory unavailable")
	ErrMalformedCSV     = csvfile.ErrMalformed
	ErrReadInput        = errors.New("cannot read input file")
	ErrNoInputFiles     = errors.New("no input files matched")
	ErrOutputUnwritable = errors.New("output not writable")
	ErrManifest         = errors.New("cannot write manifest")
	ErrInterrupted      = errors.New("interrupted")
)
