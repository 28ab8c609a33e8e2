package launch

import (
	"bytes"
	"context"
	"os"
	"os/exec"

	"github.com/edwinhayes/e6launch/ament"
	"github.com/edwinhayes/e6launch/ros"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// CommandRunner runs a program to completion and returns its output.
type CommandRunner interface {
	Run(ctx context.Context, argv []string) (stdout []byte, stderr []byte, err error)
}

// ExecRunner runs commands as child processes of the launcher.
type ExecRunner struct {
	Env []string
}

// Run implements CommandRunner.
func (r ExecRunner) Run(ctx context.Context, argv []string) ([]byte, []byte, error) {
	if len(argv) == 0 {
		return nil, nil, errors.New("empty command")
	}
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = append(os.Environ(), r.Env...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// Context holds the state shared by everything evaluated while a
// description is resolved.
type Context struct {
	ctx            context.Context
	configurations ros.NameMap

	Index   *ament.Index
	Runner  CommandRunner
	Fs      afero.Fs
	TempDir string
	Env     ros.Environment
	Logger  logrus.FieldLogger

	processCount int
}

// NewContext returns a context that runs commands with ExecRunner and
// writes temporary files to the OS temp directory.
func NewContext(ctx context.Context, index *ament.Index, logger logrus.FieldLogger) *Context {
	if logger == nil {
		logger = ros.DefaultLogger()
	}
	return &Context{
		ctx:            ctx,
		configurations: make(ros.NameMap),
		Index:          index,
		Runner:         ExecRunner{},
		Fs:             afero.NewOsFs(),
		TempDir:        os.TempDir(),
		Logger:         logger,
	}
}

// Ctx returns the context.Context blocking operations run under.
func (lc *Context) Ctx() context.Context {
	return lc.ctx
}

// Configuration returns the value of a launch configuration.
func (lc *Context) Configuration(name string) (string, bool) {
	v, ok := lc.configurations[name]
	return v, ok
}

// SetConfiguration sets a launch configuration.
func (lc *Context) SetConfiguration(name, value string) {
	lc.configurations[name] = value
}

func (lc *Context) nextProcessNumber() int {
	lc.processCount++
	return lc.processCount
}
