package naming

import (
	"strings"

	"github.com/yi-working/csvconcat/internal/config"
)

// csvCutset is the set of characters the legacy tag stripped from both ends
// of a path. It is a set, not a suffix: "csv.csv" collapses to "".
const csvCutset = ".csv"

// SourceTag returns the value written into the source column for rows read
// from path.
//
//	strip:  strings.Trim(path, ".csv")          data/raw_data/a.csv -> data/raw_data/a
//	suffix: strings.TrimSuffix(path, ".csv")    data/raw_data/vs.csv -> data/raw_data/vs
func SourceTag(path string, mode config.SourceMode) string {
	if mode == config.SourceSuffix {
		return strings.TrimSuffix(path, ".csv")
	}
	return strings.Trim(path, csvCutset)
}

// Matches reports whether path is an input candidate: the pattern may appear
// anywhere in the path ("readme.csv.notes" matches).
func Matches(path, pattern string) bool {
	return strings.Contains(path, pattern)
}
