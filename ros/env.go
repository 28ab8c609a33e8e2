package ros

import (
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
)

const (
	// MaxDomainID is the largest domain id usable with the default
	// DDS port mapping.
	MaxDomainID = 232

	envDomainID      = "ROS_DOMAIN_ID"
	envLocalhostOnly = "ROS_LOCALHOST_ONLY"
	envRMW           = "RMW_IMPLEMENTATION"
	envHome          = "ROS_HOME"
	envLogDir        = "ROS_LOG_DIR"
)

// Environment is the subset of the ROS 2 environment forwarded to every
// launched process.
type Environment struct {
	DomainID          int
	HasDomainID       bool
	LocalhostOnly     bool
	RMWImplementation string
}

// EnvironmentFrom reads the ROS environment variables through lookup,
// usually os.LookupEnv.
func EnvironmentFrom(lookup func(string) (string, bool)) (Environment, error) {
	var env Environment

	if value, ok := lookup(envDomainID); ok && value != "" {
		id, err := strconv.Atoi(value)
		if err != nil {
			return env, errors.Wrapf(err, "%s is not an integer", envDomainID)
		}
		if id < 0 || id > MaxDomainID {
			return env, errors.Errorf("%s=%d out of range [0, %d]", envDomainID, id, MaxDomainID)
		}
		env.DomainID = id
		env.HasDomainID = true
	}

	if value, ok := lookup(envLocalhostOnly); ok && value != "" {
		switch value {
		case "1":
			env.LocalhostOnly = true
		case "0":
		default:
			return env, errors.Errorf("%s must be 0 or 1, got %q", envLocalhostOnly, value)
		}
	}

	if value, ok := lookup(envRMW); ok {
		env.RMWImplementation = value
	}
	return env, nil
}

// Vars renders the environment as KEY=VALUE pairs.
func (e Environment) Vars() []string {
	var vars []string
	if e.HasDomainID {
		vars = append(vars, envDomainID+"="+strconv.Itoa(e.DomainID))
	}
	if e.LocalhostOnly {
		vars = append(vars, envLocalhostOnly+"=1")
	}
	if e.RMWImplementation != "" {
		vars = append(vars, envRMW+"="+e.RMWImplementation)
	}
	return vars
}

// LogDirFrom returns the directory launch logs go to: ROS_LOG_DIR, else
// ROS_HOME/log, else ~/.ros/log.
func LogDirFrom(lookup func(string) (string, bool)) string {
	if dir, ok := lookup(envLogDir); ok && len(dir) > 0 {
		return dir
	}
	if home, ok := lookup(envHome); ok && len(home) > 0 {
		return filepath.Join(home, "log")
	}
	home, _ := lookup("HOME")
	return filepath.Join(home, ".ros", "log")
}
