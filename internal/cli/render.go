package cli

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/tresahq/cashbook_cli/internal/apperrors"
)

// table writes aligned rows to stdout. Every list command renders through it.
func table(header []string, rows [][]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	w.Flush()
}

// renderError flattens API and validation errors into a message fit for the
// terminal.
func renderError(err error) string {
	var fieldErr *apperrors.FieldValidationError
	if errors.As(err, &fieldErr) {
		return "invalid input:\n" + renderFieldErrors(fieldErr.FieldErrors)
	}
	if apiErr, ok := apperrors.AsAPIError(err); ok {
		if len(apiErr.FieldErrors) > 0 {
			return apiErr.Message + "\n" + renderFieldErrors(apiErr.FieldErrors)
		}
		return apiErr.Message
	}
	return err.Error()
}

func renderFieldErrors(fields map[string][]string) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		for _, msg := range fields[name] {
			fmt.Fprintf(&b, "  %s: %s\n", name, msg)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
