// Package config holds the launcher configuration file.
package config

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Configuration is read from a YAML file. Every field is optional.
type Configuration struct {
	// Arguments are launch argument values; command line values win.
	Arguments map[string]interface{} `json:"arguments"`

	LogLevel        string   `json:"log_level" validate:"omitempty,oneof=panic fatal error warn warning info debug trace"`
	LogDir          string   `json:"log_dir"`
	SigtermTimeout  string   `json:"sigterm_timeout"`
	SigkillTimeout  string   `json:"sigkill_timeout"`
	AmentPrefixPath []string `json:"ament_prefix_path" validate:"dive,required"`
}

// DefaultConfig returns an empty configuration.
func DefaultConfig() *Configuration {
	return &Configuration{
		Arguments: map[string]interface{}{},
		LogLevel:  "info",
	}
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	if err := validate.Struct(c); err != nil {
		return err
	}
	for name, value := range c.Arguments {
		if strings.TrimSpace(name) == "" {
			return errors.New("argument with empty name")
		}
		if _, err := argumentString(value); err != nil {
			return errors.Wrapf(err, "argument %q", name)
		}
	}
	if _, err := c.SigtermTimeoutDuration(); err != nil {
		return err
	}
	_, err := c.SigkillTimeoutDuration()
	return err
}

// LaunchArguments returns the argument values as strings.
func (c *Configuration) LaunchArguments() (map[string]string, error) {
	out := make(map[string]string, len(c.Arguments))
	for name, value := range c.Arguments {
		s, err := argumentString(value)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %q", name)
		}
		out[name] = s
	}
	return out, nil
}

// SigtermTimeoutDuration parses sigterm_timeout; zero means unset.
func (c *Configuration) SigtermTimeoutDuration() (time.Duration, error) {
	return parseTimeout("sigterm_timeout", c.SigtermTimeout)
}

// SigkillTimeoutDuration parses sigkill_timeout; zero means unset.
func (c *Configuration) SigkillTimeoutDuration() (time.Duration, error) {
	return parseTimeout("sigkill_timeout", c.SigkillTimeout)
}

func parseTimeout(field, value string) (time.Duration, error) {
	if value == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", field)
	}
	if d <= 0 {
		return 0, errors.Errorf("%s must be positive, got %s", field, value)
	}
	return d, nil
}

// YAML scalars decode as JSON values, so false and 1.5 arrive as bool and
// float64.
func argumentString(value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	}
	return "", fmt.Errorf("unsupported value of type %T", value)
}
