package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

// Load reads and validates the configuration at path. An empty path
// yields the default configuration.
func Load(fs afero.Fs, path string) (*Configuration, error) {
	out := DefaultConfig()
	if path == "" {
		return out, nil
	}

	contents, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	if err := yaml.UnmarshalStrict(contents, out); err != nil {
		return nil, errors.Wrapf(err, "cannot parse %s", path)
	}
	if out.Arguments == nil {
		out.Arguments = map[string]interface{}{}
	}
	if err := out.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid configuration %s", path)
	}
	return out, nil
}
