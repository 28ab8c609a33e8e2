package launch

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultSigtermTimeout = 5 * time.Second
	DefaultSigkillTimeout = 5 * time.Second
)

// ProcessDiedError reports a process that exited with a failure before
// shutdown was requested.
type ProcessDiedError struct {
	Name     string
	Pid      int
	ExitCode int
}

func (e *ProcessDiedError) Error() string {
	return fmt.Sprintf("process has died [pid %d, exit code %d, name %s]", e.Pid, e.ExitCode, e.Name)
}

// Executor runs the processes of a plan and supervises them until they
// exit. Process output is logged through OutputLogger, which is not
// subject to the launcher's own log level.
type Executor struct {
	Logger         *logrus.Logger
	OutputLogger   *logrus.Logger
	Fs             afero.Fs
	LogDir         string
	SigtermTimeout time.Duration
	SigkillTimeout time.Duration
}

// NewExecutor returns an executor with default timeouts.
func NewExecutor(logger *logrus.Logger, logDir string) *Executor {
	return &Executor{
		Logger:         logger,
		OutputLogger:   outputLogger(logger),
		Fs:             afero.NewOsFs(),
		LogDir:         logDir,
		SigtermTimeout: DefaultSigtermTimeout,
		SigkillTimeout: DefaultSigkillTimeout,
	}
}

// outputLogger shares logger's destination, formatter and hooks but
// always lets process output through.
func outputLogger(logger *logrus.Logger) *logrus.Logger {
	return &logrus.Logger{
		Out:          logger.Out,
		Hooks:        logger.Hooks,
		Formatter:    logger.Formatter,
		ReportCaller: logger.ReportCaller,
		Level:        logrus.InfoLevel,
		ExitFunc:     logger.ExitFunc,
	}
}

type running struct {
	proc    *Process
	cmd     *exec.Cmd
	done    chan struct{}
	closers []io.Closer
}

// Run starts every process and blocks until all of them have exited.
// Cancelling ctx shuts the processes down: SIGINT first, then SIGTERM
// and SIGKILL after the configured timeouts.
func (e *Executor) Run(ctx context.Context, plan *Plan) error {
	if len(plan.Processes) == 0 {
		e.Logger.Info("no processes to launch")
		return nil
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var g errgroup.Group
	var startErr error
	for _, proc := range plan.Processes {
		r, err := e.start(proc)
		if err != nil {
			startErr = err
			break
		}

		g.Go(func() error {
			return e.wait(runCtx, r)
		})
		g.Go(func() error {
			e.watch(runCtx, r)
			return nil
		})
	}

	if startErr != nil {
		e.Logger.Errorf("shutting down after start failure: %v", startErr)
		cancel()
	}
	err := g.Wait()
	if startErr != nil {
		return startErr
	}
	return err
}

func (e *Executor) start(proc *Process) (*running, error) {
	cmd := exec.Command(proc.Path, proc.Args...)
	cmd.Env = append(os.Environ(), proc.Env...)
	setProcessGroup(cmd)

	r := &running{proc: proc, cmd: cmd, done: make(chan struct{})}
	entry := e.Logger.WithField("process", proc.Name)
	out := e.OutputLogger
	if out == nil {
		out = e.Logger
	}
	procEntry := out.WithField("process", proc.Name)
	stdout := procEntry.WriterLevel(logrus.InfoLevel)
	stderr := procEntry.WriterLevel(logrus.ErrorLevel)
	r.closers = append(r.closers, stdout, stderr)

	switch proc.Output {
	case OutputScreen:
		cmd.Stdout = stdout
		cmd.Stderr = stderr
	default:
		logFile, err := e.openLog(proc)
		if err != nil {
			r.close()
			return nil, err
		}
		r.closers = append(r.closers, logFile)
		cmd.Stdout = logFile
		cmd.Stderr = io.MultiWriter(logFile, stderr)
	}

	if err := cmd.Start(); err != nil {
		r.close()
		return nil, errors.Wrapf(err, "cannot start %s", proc.Name)
	}
	entry.Infof("process started with pid [%d]", cmd.Process.Pid)
	return r, nil
}

func (e *Executor) openLog(proc *Process) (afero.File, error) {
	if err := e.Fs.MkdirAll(e.LogDir, 0755); err != nil {
		return nil, errors.Wrap(err, "cannot create log directory")
	}
	path := filepath.Join(e.LogDir, proc.Name+".log")
	f, err := e.Fs.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open log file %s", path)
	}
	return f, nil
}

func (e *Executor) wait(ctx context.Context, r *running) error {
	err := r.cmd.Wait()
	close(r.done)
	r.close()

	entry := e.Logger.WithField("process", r.proc.Name)
	pid := r.cmd.Process.Pid
	if err == nil {
		entry.Infof("process has finished cleanly [pid %d]", pid)
		return nil
	}

	code := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitCode(exitErr)
	}
	if ctx.Err() != nil {
		entry.Infof("process has finished [pid %d, exit code %d]", pid, code)
		return nil
	}
	died := &ProcessDiedError{Name: r.proc.Name, Pid: pid, ExitCode: code}
	entry.Error(died.Error())
	return died
}

func (e *Executor) watch(ctx context.Context, r *running) {
	select {
	case <-r.done:
		return
	case <-ctx.Done():
	}

	entry := e.Logger.WithField("process", r.proc.Name)
	steps := []struct {
		sig     os.Signal
		timeout time.Duration
	}{
		{os.Interrupt, e.SigtermTimeout},
		{syscall.SIGTERM, e.SigkillTimeout},
	}
	for _, step := range steps {
		entry.Debugf("sending %v", step.sig)
		if err := signalGroup(r.cmd, step.sig); err != nil {
			return
		}
		select {
		case <-r.done:
			return
		case <-time.After(step.timeout):
			entry.Warnf("process did not exit %v after %v", step.timeout, step.sig)
		}
	}
	entry.Warn("killing process")
	_ = signalGroup(r.cmd, os.Kill)
}

// exitCode returns the exit status, or the negated signal number for a
// process killed by a signal.
func exitCode(exitErr *exec.ExitError) int {
	if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
		return -int(status.Signal())
	}
	return exitErr.ExitCode()
}

func (r *running) close() {
	for _, c := range r.closers {
		c.Close()
	}
}
