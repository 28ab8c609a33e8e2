package launch

import (
	"fmt"

	"github.com/edwinhayes/e6launch/ros"
	"github.com/pkg/errors"
)

// Output selects where a process's output goes.
type Output string

const (
	// OutputScreen sends stdout and stderr to the terminal.
	OutputScreen Output = "screen"
	// OutputLog sends stdout and stderr to a log file; stderr is also
	// shown on the terminal.
	OutputLog Output = "log"
)

// Action is one step of a launch description.
type Action interface {
	Execute(lc *Context, plan *Plan) error
	Describe() string
}

// Node starts an executable installed by a ROS package.
type Node struct {
	Package    string
	Executable string
	Name       string
	Namespace  string
	Output     Output
	Parameters []Parameter
	Arguments  []Substitution
	Remappings [][2]string
	Condition  Condition
}

func (n *Node) Describe() string {
	return fmt.Sprintf("Node(package='%s', executable='%s')", n.Package, n.Executable)
}

func (n *Node) validate() error {
	if n.Package == "" || n.Executable == "" {
		return errors.Errorf("node must name a package and an executable, got %s", n.Describe())
	}
	if n.Name != "" && !ros.IsValidNodeName(n.Name) {
		return errors.Errorf("invalid node name '%s'", n.Name)
	}
	if ns := ros.ExpandNamespace(n.Namespace); ns != "" && !ros.IsValidNamespace(ns) {
		return errors.Errorf("invalid namespace '%s' for node '%s'", n.Namespace, n.Name)
	}
	switch n.Output {
	case "", OutputScreen, OutputLog:
	default:
		return errors.Errorf("invalid output '%s' for %s", n.Output, n.Describe())
	}
	return nil
}

// Execute adds the node's process to plan, or records it as skipped when
// its condition does not hold.
func (n *Node) Execute(lc *Context, plan *Plan) error {
	if n.Condition != nil {
		ok, err := n.Condition.Evaluate(lc)
		if err != nil {
			return errors.Wrapf(err, "%s", n.Describe())
		}
		if !ok {
			plan.Skipped = append(plan.Skipped, SkippedAction{
				Action: n.Describe(),
				Reason: n.Condition.Describe(),
			})
			return nil
		}
	}

	if lc.Index == nil {
		return errors.Errorf("%s: no package index", n.Describe())
	}
	path, err := lc.Index.Executable(n.Package, n.Executable)
	if err != nil {
		return err
	}

	args := make([]string, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		v, err := a.Perform(lc)
		if err != nil {
			return errors.Wrapf(err, "%s argument", n.Describe())
		}
		args = append(args, v)
	}

	params, err := resolveParameters(lc, n.Parameters)
	if err != nil {
		return errors.Wrapf(err, "%s", n.Describe())
	}
	rosArgs := ros.RosArgs{
		NodeName:   n.Name,
		Namespace:  n.Namespace,
		Remappings: n.Remappings,
	}
	if len(params) > 0 {
		file, err := writeParamsFile(lc, params)
		if err != nil {
			return err
		}
		rosArgs.ParamsFiles = append(rosArgs.ParamsFiles, file)
	}
	args = append(args, rosArgs.Args()...)

	output := n.Output
	if output == "" {
		output = OutputLog
	}
	proc := &Process{
		Name:        fmt.Sprintf("%s-%d", n.Executable, lc.nextProcessNumber()),
		Package:     n.Package,
		Executable:  n.Executable,
		Path:        path,
		Args:        args,
		Env:         lc.Env.Vars(),
		Output:      output,
		Parameters:  params,
		ParamsFiles: rosArgs.ParamsFiles,
	}
	if n.Name != "" {
		proc.NodeName = ros.QualifiedNodeName(n.Namespace, n.Name)
	}
	plan.Processes = append(plan.Processes, proc)
	lc.Logger.Debugf("planned %s: %s", proc.Name, proc.CommandLine())
	return nil
}
