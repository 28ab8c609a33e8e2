package launch

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"
)

func TestTypeScalar(t *testing.T) {
	assert.Equal(t, true, typeScalar("true"))
	assert.Equal(t, 42, typeScalar("42"))
	assert.Equal(t, 1.5, typeScalar("1.5"))
	assert.Equal(t, "dobot_e6", typeScalar("dobot_e6"))
	assert.Equal(t, "", typeScalar(""))
	assert.Equal(t, "a: b", typeScalar("a: b"))
	assert.Equal(t, "[1, 2]", typeScalar("[1, 2]"))
}

func TestParameterValueTypes(t *testing.T) {
	lc, _, _ := newTestContext(t, nil)

	v, err := ParameterValue{Value: Text("42"), Type: TypeString}.evaluate(lc)
	require.NoError(t, err)
	assert.Equal(t, "42", v)

	v, err = ParameterValue{Value: Text("42")}.evaluate(lc)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestWriteParamsFile(t *testing.T) {
	lc, _, _ := newTestContext(t, nil)
	path, err := writeParamsFile(lc, []ResolvedParameter{
		{Name: "robot_description", Value: "<robot name=\"e6\">\n</robot>\n"},
		{Name: "publish_frequency", Value: 20.5},
	})
	require.NoError(t, err)

	data, err := afero.ReadFile(lc.Fs, path)
	require.NoError(t, err)

	var doc map[string]map[string]map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &doc))
	params := doc["/**"]["ros__parameters"]
	assert.Equal(t, "<robot name=\"e6\">\n</robot>\n", params["robot_description"])
	assert.Equal(t, 20.5, params["publish_frequency"])
}
