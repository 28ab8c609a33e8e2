package launch

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	yaml "gopkg.in/yaml.v2"
)

// ParameterType selects how a parameter value is typed.
type ParameterType int

const (
	// TypeAuto types scalars the way YAML does.
	TypeAuto ParameterType = iota
	// TypeString keeps the value as a string.
	TypeString
)

// ParameterValue is a substitution with a value type.
type ParameterValue struct {
	Value Substitution
	Type  ParameterType
}

// Parameter is a single node parameter.
type Parameter struct {
	Name  string
	Value ParameterValue
}

// ResolvedParameter is a parameter after evaluation.
type ResolvedParameter struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value"`
}

func (p ParameterValue) evaluate(lc *Context) (interface{}, error) {
	raw, err := p.Value.Perform(lc)
	if err != nil {
		return nil, err
	}
	if p.Type == TypeString {
		return raw, nil
	}
	return typeScalar(raw), nil
}

// typeScalar converts raw to a bool, int or float when YAML reads it as
// one. Anything else, including mappings and sequences, stays a string.
func typeScalar(raw string) interface{} {
	var v interface{}
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	switch v.(type) {
	case bool, int, int64, uint64, float64:
		return v
	}
	return raw
}

func resolveParameters(lc *Context, params []Parameter) ([]ResolvedParameter, error) {
	resolved := make([]ResolvedParameter, 0, len(params))
	for _, p := range params {
		v, err := p.Value.evaluate(lc)
		if err != nil {
			return nil, errors.Wrapf(err, "parameter '%s'", p.Name)
		}
		resolved = append(resolved, ResolvedParameter{Name: p.Name, Value: v})
	}
	return resolved, nil
}

// writeParamsFile stores params in a temporary ROS 2 parameter file that
// applies to every node of the process.
func writeParamsFile(lc *Context, params []ResolvedParameter) (string, error) {
	values := make(yaml.MapSlice, 0, len(params))
	for _, p := range params {
		values = append(values, yaml.MapItem{Key: p.Name, Value: p.Value})
	}
	doc := yaml.MapSlice{
		{Key: "/**", Value: yaml.MapSlice{
			{Key: "ros__parameters", Value: values},
		}},
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", errors.Wrap(err, "cannot encode parameters")
	}

	if err := lc.Fs.MkdirAll(lc.TempDir, 0755); err != nil {
		return "", errors.Wrap(err, "cannot create parameter directory")
	}
	f, err := afero.TempFile(lc.Fs, lc.TempDir, "launch_params_")
	if err != nil {
		return "", errors.Wrap(err, "cannot create parameter file")
	}
	defer f.Close()
	if _, err := f.Write(data); err != nil {
		return "", errors.Wrapf(err, "cannot write parameter file %s", f.Name())
	}
	return f.Name(), nil
}
