package errors

// Exit codes returned by the tmpl binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitValidationError indicates an invalid name, path or spec document.
	ExitValidationError = 2

	// ExitNotFound indicates the named spec does not exist.
	ExitNotFound = 5

	// ExitGenerateFailed indicates one or more templates failed to generate.
	ExitGenerateFailed = 6
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitNotFound:
		return "Not Found"
	case ExitGenerateFailed:
		return "Generate Failed"
	default:
		return "Unknown"
	}
}
