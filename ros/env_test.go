package ros

import (
	"testing"
)

func lookupFrom(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestEnvironmentFrom(t *testing.T) {
	env, err := EnvironmentFrom(lookupFrom(map[string]string{}))
	if err != nil {
		t.Fatal(err)
	}
	if env.HasDomainID || env.LocalhostOnly || env.RMWImplementation != "" {
		t.Errorf("expected empty environment but %+v", env)
	}
	if len(env.Vars()) != 0 {
		t.Error(env.Vars())
	}

	env, err = EnvironmentFrom(lookupFrom(map[string]string{
		"ROS_DOMAIN_ID":      "42",
		"ROS_LOCALHOST_ONLY": "1",
		"RMW_IMPLEMENTATION": "rmw_cyclonedds_cpp",
	}))
	if err != nil {
		t.Fatal(err)
	}
	vars := env.Vars()
	expected := []string{"ROS_DOMAIN_ID=42", "ROS_LOCALHOST_ONLY=1", "RMW_IMPLEMENTATION=rmw_cyclonedds_cpp"}
	if len(vars) != len(expected) {
		t.Fatalf("expected %v but %v", expected, vars)
	}
	for i := range expected {
		if vars[i] != expected[i] {
			t.Errorf("expected %s but %s", expected[i], vars[i])
		}
	}
}

func TestEnvironmentFromInvalid(t *testing.T) {
	invalid := []map[string]string{
		{"ROS_DOMAIN_ID": "abc"},
		{"ROS_DOMAIN_ID": "-1"},
		{"ROS_DOMAIN_ID": "233"},
		{"ROS_LOCALHOST_ONLY": "yes"},
	}
	for _, vars := range invalid {
		if _, err := EnvironmentFrom(lookupFrom(vars)); err == nil {
			t.Errorf("expected error for %v", vars)
		}
	}
}

func TestLogDir(t *testing.T) {
	var tests = []struct {
		vars     map[string]string
		expected string
	}{
		{map[string]string{"HOME": "/home/e6"}, "/home/e6/.ros/log"},
		{map[string]string{"HOME": "/home/e6", "ROS_HOME": "/data/ros"}, "/data/ros/log"},
		{map[string]string{"HOME": "/home/e6", "ROS_HOME": "/data/ros", "ROS_LOG_DIR": "/var/log/ros"}, "/var/log/ros"},
	}
	for _, test := range tests {
		if dir := LogDirFrom(lookupFrom(test.vars)); dir != test.expected {
			t.Errorf("%v: expected %s but %s", test.vars, test.expected, dir)
		}
	}
}
