package output

// Canonical header rows for text/TSV outputs. Keep these as the single
// source of truth; all writers should use them.
const (
	TSVHeader    = "character\tlength"
	SeqTSVHeader = "sequence_id\tsource_file\tcharacter\tlength"
)
