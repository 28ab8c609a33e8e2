package launch

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/edwinhayes/e6launch/ament"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const testPrefix = "/opt/ros/humble"

// fakeRunner records the commands it is asked to run.
type fakeRunner struct {
	calls  [][]string
	stdout string
	stderr string
	err    error
}

func (f *fakeRunner) Run(_ context.Context, argv []string) ([]byte, []byte, error) {
	f.calls = append(f.calls, argv)
	return []byte(f.stdout), []byte(f.stderr), f.err
}

func newTestContext(t *testing.T, packages map[string][]string) (*Context, *fakeRunner, *test.Hook) {
	t.Helper()
	fs := afero.NewMemMapFs()
	for pkg, executables := range packages {
		marker := filepath.Join(testPrefix, "share", "ament_index", "resource_index", "packages", pkg)
		require.NoError(t, afero.WriteFile(fs, marker, nil, 0644))
		for _, exe := range executables {
			require.NoError(t, afero.WriteFile(fs, filepath.Join(testPrefix, "lib", pkg, exe), nil, 0755))
		}
	}
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	lc := NewContext(context.Background(), ament.NewIndex(fs, []string{testPrefix}), logger)
	runner := &fakeRunner{}
	lc.Runner = runner
	lc.Fs = fs
	lc.TempDir = "/tmp"
	return lc, runner, hook
}

func hasWarning(hook *test.Hook, substr string) bool {
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
