package launch

import (
	"fmt"
	"path/filepath"
	"strings"

	shlex "github.com/anmitsu/go-shlex"
	"github.com/pkg/errors"
)

// Substitution is a value computed when a description is resolved.
type Substitution interface {
	Perform(lc *Context) (string, error)
	Describe() string
}

// Text is a literal string.
type Text string

func (t Text) Perform(*Context) (string, error) {
	return string(t), nil
}

func (t Text) Describe() string {
	return "'" + string(t) + "'"
}

// LaunchConfiguration reads the value of a launch argument.
type LaunchConfiguration string

func (c LaunchConfiguration) Perform(lc *Context) (string, error) {
	v, ok := lc.Configuration(string(c))
	if !ok {
		return "", errors.Errorf("launch configuration '%s' does not exist", string(c))
	}
	return v, nil
}

func (c LaunchConfiguration) Describe() string {
	return "LaunchConfig('" + string(c) + "')"
}

// PathJoin joins the performed parts with the path separator.
type PathJoin []Substitution

func (p PathJoin) Perform(lc *Context) (string, error) {
	parts := make([]string, 0, len(p))
	for _, s := range p {
		v, err := s.Perform(lc)
		if err != nil {
			return "", err
		}
		parts = append(parts, v)
	}
	return filepath.Join(parts...), nil
}

func (p PathJoin) Describe() string {
	return "PathJoin(" + describeAll(p, ", ") + ")"
}

// Concat concatenates the performed parts.
type Concat []Substitution

func (c Concat) Perform(lc *Context) (string, error) {
	return performAll(lc, c)
}

func (c Concat) Describe() string {
	return describeAll(c, " + ")
}

// FindPackageShare resolves to the share directory of an installed package.
type FindPackageShare string

func (f FindPackageShare) Perform(lc *Context) (string, error) {
	if lc.Index == nil {
		return "", errors.Errorf("cannot locate package '%s': no package index", string(f))
	}
	return lc.Index.PackageShare(string(f))
}

func (f FindPackageShare) Describe() string {
	return "FindPackageShare('" + string(f) + "')"
}

// StderrPolicy decides what a Command does with output on stderr.
type StderrPolicy string

const (
	StderrFail    StderrPolicy = "fail"
	StderrWarn    StderrPolicy = "warn"
	StderrIgnore  StderrPolicy = "ignore"
	StderrCapture StderrPolicy = "capture"
)

// CommandError is returned when a Command substitution fails.
type CommandError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("executed command failed. Command: %s", e.Command)
	if e.Err != nil {
		msg += fmt.Sprintf("\nReason: %v", e.Err)
	}
	if e.Stderr != "" {
		msg += "\nCaptured stderr output: " + e.Stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Command runs a shell-tokenized command line and yields its stdout.
type Command struct {
	Parts    []Substitution
	OnStderr StderrPolicy
}

func (c Command) Perform(lc *Context) (string, error) {
	line, err := performAll(lc, c.Parts)
	if err != nil {
		return "", err
	}
	argv, err := shlex.Split(line, true)
	if err != nil {
		return "", errors.Wrapf(err, "cannot tokenize command %q", line)
	}
	if len(argv) == 0 {
		return "", &CommandError{Command: line, Err: errors.New("empty command")}
	}
	lc.Logger.Debugf("running command: %s", line)
	stdout, stderr, err := lc.Runner.Run(lc.Ctx(), argv)
	if err != nil {
		return "", &CommandError{Command: line, Stderr: string(stderr), Err: err}
	}

	out := string(stdout)
	if len(stderr) > 0 {
		switch c.OnStderr {
		case StderrIgnore:
		case StderrWarn:
			lc.Logger.Warnf("command '%s' wrote to stderr: %s", line, strings.TrimSpace(string(stderr)))
		case StderrCapture:
			out += string(stderr)
		default:
			return "", &CommandError{Command: line, Stderr: string(stderr)}
		}
	}
	return out, nil
}

func (c Command) Describe() string {
	return "Command(" + describeAll(c.Parts, " + ") + ")"
}

func performAll(lc *Context, subs []Substitution) (string, error) {
	var b strings.Builder
	for _, s := range subs {
		v, err := s.Perform(lc)
		if err != nil {
			return "", err
		}
		b.WriteString(v)
	}
	return b.String(), nil
}

func describeAll(subs []Substitution, sep string) string {
	parts := make([]string, 0, len(subs))
	for _, s := range subs {
		parts = append(parts, s.Describe())
	}
	return strings.Join(parts, sep)
}
