// Package launcher starts the external baker and the platform file browser.
// Callers never wait on started processes; a background goroutine reaps
// each one when it exits.
package launcher

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"go.uber.org/zap"
)

var (
	ErrNoExecutable  = errors.New("xNormal executable not configured")
	ErrNotExecutable = errors.New("not an executable file")
)

// Launcher starts xNormal with a settings document as its only argument.
type Launcher struct {
	log *zap.Logger

	// exited, when set, is called after a started process has been reaped.
	exited func(pid int, err error)
}

// New creates a launcher that logs to log.
func New(log *zap.Logger) *Launcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Launcher{log: log.Named("launcher")}
}

// Launch starts exe with document and returns once the process is running.
func (l *Launcher) Launch(exe, document string) error {
	if exe == "" {
		return ErrNoExecutable
	}

	info, err := os.Stat(exe)
	if err != nil {
		return fmt.Errorf("checking executable: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotExecutable, exe)
	}

	cmd := exec.Command(exe, document)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", exe, err)
	}

	l.log.Info("xNormal started",
		zap.String("executable", exe),
		zap.String("document", document),
		zap.Int("pid", cmd.Process.Pid))

	l.reap(cmd)
	return nil
}

// OpenDir shows dir in the platform file browser.
func (l *Launcher) OpenDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("checking directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dir)
	}

	name, args := openCommand(runtime.GOOS, dir)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("opening %s: %w", dir, err)
	}

	l.log.Debug("opened directory", zap.String("dir", dir), zap.String("browser", name))
	l.reap(cmd)
	return nil
}

// reap waits for cmd in the background so the exited child does not stay
// a zombie while a long-running panel keeps starting bakes.
func (l *Launcher) reap(cmd *exec.Cmd) {
	pid := cmd.Process.Pid
	go func() {
		err := cmd.Wait()
		l.log.Debug("process exited",
			zap.String("command", cmd.Path),
			zap.Int("pid", pid),
			zap.Error(err))
		if l.exited != nil {
			l.exited(pid, err)
		}
	}()
}

// openCommand returns the file browser command for goos.
func openCommand(goos, dir string) (string, []string) {
	switch goos {
	case "windows":
		return "explorer", []string{dir}
	case "darwin":
		return "open", []string{dir}
	default:
		return "xdg-open", []string{dir}
	}
}
