package cli

import (
	"errors"

	"github.com/jacksmith/plantpal/internal/model"
)

// Hint returns a suggestion for how to recover from err, or "" if none applies.
func Hint(err error) string {
	var (
		verr *model.ValidationError
		ierr *model.IndexError
		nerr *model.NotFoundError
		aerr *model.AmbiguousError
	)
	switch {
	case errors.As(err, &verr):
		switch verr.Field {
		case "watering interval":
			return "Watering interval must be a whole number of days, e.g. --water 7."
		case "sunlight":
			return "Sunlight must be one of Low, Medium, High."
		case "name":
			return "Give the plant a name, e.g. plantpal add \"Monstera\"."
		case "date":
			return "Use YYYY-MM-DD or a phrase like \"yesterday\"."
		}
	case errors.As(err, &ierr):
		return "Run 'plantpal list' to see plant numbers."
	case errors.As(err, &nerr):
		return "Run 'plantpal list' to see your plants."
	case errors.As(err, &aerr):
		return "Use the plant number or more of its ID."
	}
	return ""
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output and
// appends a hint on the next line when one applies.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	msg := "error: " + err.Error()
	if hint := Hint(err); hint != "" {
		msg += "\n" + hint
	}
	return msg
}
