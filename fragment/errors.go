package fragment

import "fmt"

// InvalidOptionError reports an option value outside its recognized set.
type InvalidOptionError struct {
	Option  string // option name as seen by the caller
	Value   string // offending value
	Allowed string // human readable description of accepted values
}

func (e *InvalidOptionError) Error() string {
	if e.Allowed == "" {
		return fmt.Sprintf("invalid value %q for option %s", e.Value, e.Option)
	}
	return fmt.Sprintf("invalid value %q for option %s, expected %s", e.Value, e.Option, e.Allowed)
}

// MissingFieldError reports a required content field that is absent or empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("required field %s is missing or empty", e.Field)
}

// MalformedInputError reports structurally invalid content, for example a
// table row that does not match the declared columns or a Markup body that
// is not a well-formed element.
type MalformedInputError struct {
	Field  string
	Detail string
	Err    error
}

func (e *MalformedInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed %s: %s: %v", e.Field, e.Detail, e.Err)
	}
	return fmt.Sprintf("malformed %s: %s", e.Field, e.Detail)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Err
}
