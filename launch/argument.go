package launch

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = validator.New()

// DeclaredArgument is a named launch argument. A nil Default makes the
// argument required.
type DeclaredArgument struct {
	Name        string
	Default     Substitution
	Choices     []string
	Description string
}

// MissingArgumentError is returned when a required argument has no value.
type MissingArgumentError struct {
	Argument    string
	Description string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("required launch argument '%s' (description: '%s') was not provided", e.Argument, e.Description)
}

// InvalidChoiceError is returned when a value is not among the declared choices.
type InvalidChoiceError struct {
	Argument string
	Value    string
	Choices  []string
}

func (e *InvalidChoiceError) Error() string {
	return fmt.Sprintf("argument '%s' provided value '%s' is not valid. Valid options are: %s",
		e.Argument, e.Value, QuoteList(e.Choices))
}

func (a DeclaredArgument) validateDeclaration() error {
	if strings.TrimSpace(a.Name) == "" {
		return errors.New("launch argument with empty name")
	}
	for _, c := range a.Choices {
		if c == "" || strings.ContainsAny(c, " \t\n,|") {
			return errors.Errorf("launch argument '%s' has unsupported choice %q", a.Name, c)
		}
	}
	return nil
}

// check rejects values outside the declared choices.
func (a DeclaredArgument) check(value string) error {
	if len(a.Choices) == 0 {
		return nil
	}
	if err := validate.Var(value, "oneof="+strings.Join(a.Choices, " ")); err != nil {
		return &InvalidChoiceError{Argument: a.Name, Value: value, Choices: a.Choices}
	}
	return nil
}

// DescribeDefault renders the default for help output.
func (a DeclaredArgument) DescribeDefault() string {
	if a.Default == nil {
		return ""
	}
	return a.Default.Describe()
}

// QuoteList renders items as a bracketed list of quoted strings.
func QuoteList(items []string) string {
	quoted := make([]string, 0, len(items))
	for _, item := range items {
		quoted = append(quoted, "'"+item+"'")
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
