package pipeline

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total       int // Files matched by discovery.
	Current     int // Index (1-based) of the file being loaded.
	Loaded      int
	Rows        int
	Columns     int
	InputBytes  int64
	OutputBytes int64
}

// SizeRatio returns output size as a percentage of total input size, or 0
// when nothing was read.
func (s *RunStats) SizeRatio() int64 {
	if s.InputBytes <= 0 {
		return 0
	}
	return s.OutputBytes * 100 / s.InputBytes
}
