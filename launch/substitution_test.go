package launch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextAndConfiguration(t *testing.T) {
	lc, _, _ := newTestContext(t, nil)
	lc.SetConfiguration("robot_name", "dobot_e6")

	v, err := Text("xacro").Perform(lc)
	require.NoError(t, err)
	assert.Equal(t, "xacro", v)

	v, err = LaunchConfiguration("robot_name").Perform(lc)
	require.NoError(t, err)
	assert.Equal(t, "dobot_e6", v)

	_, err = LaunchConfiguration("missing").Perform(lc)
	assert.EqualError(t, err, "launch configuration 'missing' does not exist")
}

func TestPathJoinFindPackageShare(t *testing.T) {
	lc, _, _ := newTestContext(t, map[string][]string{"dobot_e6_description": nil})

	sub := PathJoin{FindPackageShare("dobot_e6_description"), Text("rviz"), Text("dobot_e6_description.rviz")}
	v, err := sub.Perform(lc)
	require.NoError(t, err)
	assert.Equal(t, "/opt/ros/humble/share/dobot_e6_description/rviz/dobot_e6_description.rviz", v)
	assert.Equal(t, "PathJoin(FindPackageShare('dobot_e6_description'), 'rviz', 'dobot_e6_description.rviz')", sub.Describe())

	_, err = PathJoin{FindPackageShare("missing"), Text("x")}.Perform(lc)
	assert.Error(t, err)
}

func TestConcat(t *testing.T) {
	lc, _, _ := newTestContext(t, nil)
	lc.SetConfiguration("prefix", "left_")
	v, err := Concat{Text("prefix:="), LaunchConfiguration("prefix")}.Perform(lc)
	require.NoError(t, err)
	assert.Equal(t, "prefix:=left_", v)
}

func TestCommand(t *testing.T) {
	lc, runner, _ := newTestContext(t, nil)
	lc.SetConfiguration("urdf_model", "/share/my robot.xacro")
	lc.SetConfiguration("prefix", "")
	runner.stdout = "<robot/>"

	cmd := Command{Parts: []Substitution{
		Text("xacro"), Text(" "), Text("'"), LaunchConfiguration("urdf_model"), Text("'"), Text(" "),
		Text("prefix:="), LaunchConfiguration("prefix"), Text(" "),
	}}
	v, err := cmd.Perform(lc)
	require.NoError(t, err)
	assert.Equal(t, "<robot/>", v)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"xacro", "/share/my robot.xacro", "prefix:="}, runner.calls[0])
}

func TestCommandStderrPolicies(t *testing.T) {
	var tests = []struct {
		policy    StderrPolicy
		expected  string
		expectErr bool
	}{
		{"", "", true},
		{StderrFail, "", true},
		{StderrWarn, "out", false},
		{StderrIgnore, "out", false},
		{StderrCapture, "outwarning", false},
	}
	for _, test := range tests {
		lc, runner, hook := newTestContext(t, nil)
		runner.stdout = "out"
		runner.stderr = "warning"

		v, err := Command{Parts: []Substitution{Text("xacro")}, OnStderr: test.policy}.Perform(lc)
		if test.expectErr {
			var cmdErr *CommandError
			require.True(t, errors.As(err, &cmdErr), "policy %q", test.policy)
			assert.Equal(t, "warning", cmdErr.Stderr)
			continue
		}
		require.NoError(t, err, "policy %q", test.policy)
		assert.Equal(t, test.expected, v)
		if test.policy == StderrWarn {
			assert.True(t, hasWarning(hook, "wrote to stderr"))
		}
	}
}

func TestCommandFailure(t *testing.T) {
	lc, runner, _ := newTestContext(t, nil)
	runner.err = errors.New("exit status 2")
	runner.stderr = "No such file"

	_, err := Command{Parts: []Substitution{Text("xacro missing.xacro")}}.Perform(lc)
	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, "xacro missing.xacro", cmdErr.Command)
	assert.Contains(t, err.Error(), "No such file")

	_, err = Command{Parts: []Substitution{Text("  ")}}.Perform(lc)
	assert.Error(t, err)

	_, err = Command{Parts: []Substitution{Text("xacro 'unterminated")}}.Perform(lc)
	assert.Error(t, err)
}
