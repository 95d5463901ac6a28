package output

import (
	"io"

	"github.com/agentstation/weather/internal/cmd/table"
)

// Render writes view when format is a table format and raw otherwise, so
// structured formats carry the full provider payload.
func Render(w io.Writer, format Format, view table.Data, raw any) error {
	formatter := NewFormatter(format)

	var outputData any
	switch format {
	case FormatTable, "":
		outputData = view
	default:
		outputData = raw
	}

	return formatter.Format(w, outputData)
}
