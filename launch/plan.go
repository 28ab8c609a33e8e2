package launch

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// maxTextValue is the longest parameter value printed in text plans.
const maxTextValue = 60

// Process is a fully resolved process to start.
type Process struct {
	Name        string              `json:"name"`
	NodeName    string              `json:"node_name,omitempty"`
	Package     string              `json:"package"`
	Executable  string              `json:"executable"`
	Path        string              `json:"path"`
	Args        []string            `json:"args"`
	Env         []string            `json:"env,omitempty"`
	Output      Output              `json:"output"`
	Parameters  []ResolvedParameter `json:"parameters,omitempty"`
	ParamsFiles []string            `json:"params_files,omitempty"`
}

// CommandLine renders the process invocation.
func (p *Process) CommandLine() string {
	return strings.Join(append([]string{p.Path}, p.Args...), " ")
}

// Parameter returns a resolved parameter by name.
func (p *Process) Parameter(name string) (interface{}, bool) {
	for _, param := range p.Parameters {
		if param.Name == name {
			return param.Value, true
		}
	}
	return nil, false
}

// SkippedAction is an action whose condition did not hold.
type SkippedAction struct {
	Action string `json:"action"`
	Reason string `json:"reason"`
}

// Configuration is a resolved launch argument.
type Configuration struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Plan is the result of resolving a description.
type Plan struct {
	Configurations []Configuration `json:"configurations"`
	Processes      []*Process      `json:"processes"`
	Skipped        []SkippedAction `json:"skipped"`
}

// Process returns the planned process for an executable, or nil.
func (p *Plan) Process(executable string) *Process {
	for _, proc := range p.Processes {
		if proc.Executable == executable {
			return proc
		}
	}
	return nil
}

// RemoveParamsFiles deletes the temporary parameter files written while
// the plan was resolved. Files that are already gone are ignored.
func (p *Plan) RemoveParamsFiles(fs afero.Fs) error {
	for _, proc := range p.Processes {
		for _, f := range proc.ParamsFiles {
			if err := fs.Remove(f); err != nil && !os.IsNotExist(err) {
				return errors.Wrapf(err, "cannot remove parameter file %s", f)
			}
		}
	}
	return nil
}

// WriteJSON writes the plan as indented JSON.
func (p *Plan) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

// WriteText writes a human readable plan.
func (p *Plan) WriteText(w io.Writer) error {
	var b strings.Builder
	b.WriteString("Launch configurations:\n")
	for _, c := range p.Configurations {
		fmt.Fprintf(&b, "    %s: '%s'\n", c.Name, c.Value)
	}
	b.WriteString("\nProcesses:\n")
	for _, proc := range p.Processes {
		fmt.Fprintf(&b, "    [%s] (output: %s)\n", proc.Name, proc.Output)
		fmt.Fprintf(&b, "        cmd: %s\n", proc.CommandLine())
		for _, param := range proc.Parameters {
			fmt.Fprintf(&b, "        param %s: %s\n", param.Name, abbreviate(param.Value))
		}
	}
	if len(p.Skipped) > 0 {
		b.WriteString("\nSkipped:\n")
		for _, s := range p.Skipped {
			fmt.Fprintf(&b, "    %s: %s is false\n", s.Action, s.Reason)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func abbreviate(v interface{}) string {
	s, ok := v.(string)
	if !ok {
		return fmt.Sprintf("%v", v)
	}
	first := s
	if i := strings.IndexByte(first, '\n'); i >= 0 {
		first = first[:i]
	}
	if len(first) > maxTextValue {
		first = first[:maxTextValue]
	}
	if len(first) == len(s) {
		return fmt.Sprintf("'%s'", s)
	}
	return fmt.Sprintf("'%s...' (%d bytes)", first, len(s))
}
