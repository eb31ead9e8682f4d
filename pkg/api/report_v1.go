// Package api holds the stable wire types (v1). Internal shapes must be
// converted here before leaving the process.
package api

// RunV1 is one character and its longest observed run length.
type RunV1 struct {
	Character string `json:"character"`
	Length    int    `json:"length"`
}

// SequenceV1 is the per-sequence scan outcome.
type SequenceV1 struct {
	SequenceID string  `json:"sequence_id"`
	SourceFile string  `json:"source_file"`
	Runs       []RunV1 `json:"runs"`
}

// ReportV1 is the top-level output document.
type ReportV1 struct {
	Sequences   int          `json:"sequences"`
	Skipped     int          `json:"skipped,omitempty"`
	Aggregate   []RunV1      `json:"aggregate"`
	PerSequence []SequenceV1 `json:"per_sequence,omitempty"`
}
