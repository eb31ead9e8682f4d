package output

import (
	"io"

	"runscan/internal/jsonutil"
	"runscan/pkg/api"
)

// WriteJSON writes the v1 report as pretty-indented JSON.
func WriteJSON(w io.Writer, rep api.ReportV1) error {
	return jsonutil.EncodePretty(w, rep)
}
