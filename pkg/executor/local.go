package executor

import (
	"os"
	"os/exec"
	"path"
	"syscall"
	"time"

	"github.com/paramcomp/paramcomp/pkg/utils/err_collection"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Local provisioning is responsible for providing the execution environment
// on local machine via exec.Command.
// It runs command as current user.
type Local struct {
	outputDir string
}

// NewLocal returns a Local instance keeping task output under os.TempDir().
func NewLocal() Local {
	return Local{outputDir: os.TempDir()}
}

// NewLocalWithOutputDir returns a Local instance keeping task output under dir.
func NewLocalWithOutputDir(dir string) Local {
	return Local{outputDir: dir}
}

// Name returns user-friendly name of executor.
func (l Local) Name() string {
	return "Local"
}

// Execute runs the command given as input.
// Returned TaskHandle is able to stop & monitor the provisioned process.
func (l Local) Execute(command string, env []string) (TaskHandle, error) {
	stdoutFile, stderrFile, err := createExecutorOutputFiles(l.outputDir, command, "paramcomp")
	if err != nil {
		return nil, err
	}

	logrus.Debug("Starting ", command)

	cmd := exec.Command("sh", "-c", command)
	cmd.Env = append(os.Environ(), env...)
	// It is important to set additional Process Group ID for parent process and his children
	// to have ability to kill all the children processes.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Stdout = stdoutFile
	cmd.Stderr = stderrFile

	err = cmd.Start()
	if err != nil {
		stdoutFile.Close()
		stderrFile.Close()
		os.RemoveAll(path.Dir(stdoutFile.Name()))
		return nil, errors.Wrapf(err, "could not start %q", command)
	}

	logrus.Debug("Started with pid ", cmd.Process.Pid)

	exitCodeChannel := make(chan int, 1)

	// Wait for local task in goroutine.
	go func() {
		// Wait() error is ignored, the process state carries all we need.
		cmd.Wait()

		var exitCode int
		status := cmd.ProcessState.Sys().(syscall.WaitStatus)
		if status.Exited() {
			exitCode = status.ExitStatus()
		} else {
			// Show what signal caused the termination.
			exitCode = -int(status.Signal())
		}

		logrus.Debug(
			"Ended ", command,
			" with output in file: ", stdoutFile.Name(),
			" with err output in file: ", stderrFile.Name(),
			" with status code: ", exitCode)

		exitCodeChannel <- exitCode
	}()

	return newLocalTaskHandle(cmd, exitCodeChannel, stdoutFile, stderrFile), nil
}

// localTaskHandle implements TaskHandle interface.
type localTaskHandle struct {
	cmd             *exec.Cmd
	exitCodeChannel chan int
	exitCode        int
	terminated      bool
	stdoutFile      *os.File
	stderrFile      *os.File
}

func newLocalTaskHandle(cmd *exec.Cmd, exitCodeChannel chan int, stdoutFile, stderrFile *os.File) *localTaskHandle {
	return &localTaskHandle{
		cmd:             cmd,
		exitCodeChannel: exitCodeChannel,
		stdoutFile:      stdoutFile,
		stderrFile:      stderrFile,
	}
}

func (taskHandle *localTaskHandle) completeTask(exitCode int) {
	taskHandle.terminated = true
	taskHandle.exitCode = exitCode
}

// Stop terminates the whole process group of the task.
func (taskHandle *localTaskHandle) Stop() error {
	if taskHandle.terminated {
		return nil
	}

	// The kill syscall interprets a negated PID N as the process group N belongs to.
	pid := taskHandle.cmd.Process.Pid
	logrus.Debug("Sending SIGTERM to PID ", -pid)
	if err := syscall.Kill(-pid, syscall.SIGTERM); err != nil && err != syscall.ESRCH {
		return errors.Wrapf(err, "could not stop process group %d", pid)
	}

	taskHandle.completeTask(<-taskHandle.exitCodeChannel)
	return nil
}

// Status returns a state of the task.
func (taskHandle *localTaskHandle) Status() TaskState {
	if !taskHandle.terminated {
		select {
		case exitCode := <-taskHandle.exitCodeChannel:
			taskHandle.completeTask(exitCode)
		default:
			return RUNNING
		}
	}
	return TERMINATED
}

// ExitCode returns the exit code of a terminated task.
func (taskHandle *localTaskHandle) ExitCode() (int, error) {
	if taskHandle.Status() != TERMINATED {
		return -1, errors.New("task is not terminated")
	}
	return taskHandle.exitCode, nil
}

func openFile(file *os.File) (*os.File, error) {
	if file == nil {
		return nil, errors.New("output file does not exist")
	}
	f, err := os.Open(file.Name())
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %q", file.Name())
	}
	return f, nil
}

// StdoutFile returns a new handle to the stdout file, positioned at its beginning.
func (taskHandle *localTaskHandle) StdoutFile() (*os.File, error) {
	return openFile(taskHandle.stdoutFile)
}

// StderrFile returns a new handle to the stderr file, positioned at its beginning.
func (taskHandle *localTaskHandle) StderrFile() (*os.File, error) {
	return openFile(taskHandle.stderrFile)
}

// Wait blocks until process is terminated or timeout appeared.
// Returns true when process terminates before timeout, otherwise false.
func (taskHandle *localTaskHandle) Wait(timeout time.Duration) bool {
	if taskHandle.terminated {
		return true
	}

	if timeout == 0 {
		taskHandle.completeTask(<-taskHandle.exitCodeChannel)
		return true
	}

	select {
	case exitCode := <-taskHandle.exitCodeChannel:
		taskHandle.completeTask(exitCode)
		return true
	case <-time.After(timeout):
		return false
	}
}

// Clean closes stdout and stderr files of the task.
func (taskHandle *localTaskHandle) Clean() error {
	var errCollection errcollection.ErrorCollection
	if err := taskHandle.stdoutFile.Close(); err != nil {
		errCollection.Add(errors.Wrap(err, "could not close stdout file"))
	}
	if err := taskHandle.stderrFile.Close(); err != nil {
		errCollection.Add(errors.Wrap(err, "could not close stderr file"))
	}
	return errCollection.GetErrIfAny()
}

// EraseOutput removes the task's output directory.
func (taskHandle *localTaskHandle) EraseOutput() error {
	outputDir := path.Dir(taskHandle.stdoutFile.Name())
	if err := os.RemoveAll(outputDir); err != nil {
		return errors.Wrapf(err, "could not remove %q", outputDir)
	}
	return nil
}
