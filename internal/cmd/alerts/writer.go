package alerts

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/agentstation/weather/pkg/errors"
)

// Writer prints alerts, one colored line each.
type Writer struct {
	out     io.Writer
	noColor bool
	verbose bool
}

// NewWriter creates a Writer. Details are printed only when verbose is set.
func NewWriter(out io.Writer, noColor, verbose bool) *Writer {
	return &Writer{out: out, noColor: noColor, verbose: verbose}
}

// WriteAlert writes an alert.
func (w *Writer) WriteAlert(alert *Alert) error {
	c := alert.Level.Color()
	if w.noColor {
		c.DisableColor()
	}

	if _, err := c.Fprintln(w.out, alert.String()); err != nil {
		return err
	}

	if w.verbose {
		for _, detail := range alert.Details {
			if _, err := fmt.Fprintf(w.out, "   %s\n", detail); err != nil {
				return err
			}
		}
	}
	return nil
}

// Error writes err as a single red line.
func (w *Writer) Error(err error) error {
	c := LevelError.Color()
	if w.noColor {
		c.DisableColor()
	}
	_, werr := c.Fprintln(w.out, ErrorLine(err, w.verbose))
	return werr
}

// ErrorLine renders err for the user. Provider failures show the provider
// message, with the provider code and HTTP status when verbose.
func ErrorLine(err error, verbose bool) string {
	if pe, ok := errors.AsProviderError(err); ok {
		return pe.Display(verbose)
	}
	if verbose {
		return "ERROR: " + err.Error()
	}

	var authErr *errors.AuthenticationError
	if stderrors.As(err, &authErr) {
		return "ERROR: " + authErr.Message
	}
	var valErr *errors.ValidationError
	if stderrors.As(err, &valErr) {
		return "ERROR: " + valErr.Message
	}
	var resErr *errors.ResourceError
	if errors.IsNotFound(err) && stderrors.As(err, &resErr) && resErr.ID != "" {
		return fmt.Sprintf("ERROR: no %s found for %s", resErr.Resource, resErr.ID)
	}
	if errors.IsTimeout(err) {
		return "ERROR: request timed out"
	}
	return "ERROR: " + err.Error()
}
