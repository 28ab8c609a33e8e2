package launch

import (
	"github.com/edwinhayes/e6launch/ros"
	"github.com/pkg/errors"
)

// Description is an ordered set of launch arguments and actions.
type Description struct {
	Arguments []DeclaredArgument
	Actions   []Action
}

// NewDescription returns a description declaring args.
func NewDescription(args ...DeclaredArgument) *Description {
	return &Description{Arguments: append([]DeclaredArgument(nil), args...)}
}

// AddArgument declares another launch argument.
func (d *Description) AddArgument(arg DeclaredArgument) {
	d.Arguments = append(d.Arguments, arg)
}

// AddAction appends an action.
func (d *Description) AddAction(action Action) {
	d.Actions = append(d.Actions, action)
}

// Argument looks up a declared argument.
func (d *Description) Argument(name string) (DeclaredArgument, bool) {
	for _, a := range d.Arguments {
		if a.Name == name {
			return a, true
		}
	}
	return DeclaredArgument{}, false
}

// ArgumentNames returns the declared names in declaration order.
func (d *Description) ArgumentNames() []string {
	names := make([]string, 0, len(d.Arguments))
	for _, a := range d.Arguments {
		names = append(names, a.Name)
	}
	return names
}

// Validate checks the description for declaration errors.
func (d *Description) Validate() error {
	names := d.ArgumentNames()
	for i, a := range d.Arguments {
		if err := a.validateDeclaration(); err != nil {
			return err
		}
		if ros.Contains(names[:i], a.Name) {
			return errors.Errorf("launch argument '%s' declared twice", a.Name)
		}
	}
	for _, action := range d.Actions {
		if n, ok := action.(*Node); ok {
			if err := n.validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Resolve evaluates every argument and action. Supplied values override
// declared defaults; supplied names that are not declared are ignored
// with a warning.
func (d *Description) Resolve(lc *Context, supplied ros.NameMap) (*Plan, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	suppliedNames := make([]string, 0, len(supplied))
	for name := range supplied {
		suppliedNames = append(suppliedNames, name)
	}
	for _, name := range ros.SetDifference(suppliedNames, d.ArgumentNames()) {
		lc.Logger.Warnf("ignoring undeclared launch argument '%s'", name)
	}

	plan := &Plan{}
	for _, a := range d.Arguments {
		value, ok := supplied[a.Name]
		if !ok {
			if a.Default == nil {
				return nil, &MissingArgumentError{Argument: a.Name, Description: a.Description}
			}
			var err error
			value, err = a.Default.Perform(lc)
			if err != nil {
				return nil, errors.Wrapf(err, "default of launch argument '%s'", a.Name)
			}
		}
		if err := a.check(value); err != nil {
			return nil, err
		}
		lc.SetConfiguration(a.Name, value)
		plan.Configurations = append(plan.Configurations, Configuration{Name: a.Name, Value: value})
	}

	for _, action := range d.Actions {
		if err := action.Execute(lc, plan); err != nil {
			return nil, err
		}
	}
	return plan, nil
}
