package reader

import (
	"io/ioutil"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/paramcomp/paramcomp/pkg/executor"
	"github.com/paramcomp/paramcomp/pkg/grid"
	"github.com/paramcomp/paramcomp/pkg/utils/err_collection"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// EnvPrefix prefixes the upper-cased parameter names exported to commands.
const EnvPrefix = "PARAMCOMP_"

// Command computes results by running a shell command for every assignment.
// Parameters are exported as "<name>=<value>" and "PARAMCOMP_<NAME>=<value>".
type Command struct {
	executor  executor.Executor
	run       string
	repeat    int
	precision int
}

// NewCommand prepares a command reader. Repeat has to be at least 1.
func NewCommand(exec executor.Executor, run string, repeat, precision int) (*Command, error) {
	if exec == nil {
		return nil, &grid.InvalidCollaboratorError{Collaborator: "executor", Reason: "executor is nil"}
	}
	if strings.TrimSpace(run) == "" {
		return nil, errors.New("command is empty")
	}
	if repeat < 1 {
		return nil, errors.Errorf("repeat has to be positive, got %d", repeat)
	}
	if precision < NoPrecision {
		return nil, errors.Errorf("precision has to be %d or more, got %d", NoPrecision, precision)
	}
	return &Command{executor: exec, run: run, repeat: repeat, precision: precision}, nil
}

// Env returns environment variables describing params.
// The bare name is only exported when it does not shadow a variable of the process
// environment, so parameters such as PATH never replace it.
func Env(params grid.Params) []string {
	env := []string{}
	for _, name := range params.Names() {
		value := params.Get(name)
		if isEnvName(name) {
			if _, inherited := os.LookupEnv(name); !inherited {
				env = append(env, name+"="+value)
			} else {
				logrus.Debugf("parameter %q shadows an environment variable, exported only as %s%s", name, EnvPrefix, envName(name))
			}
		}
		env = append(env, EnvPrefix+envName(name)+"="+value)
	}
	return env
}

func isEnvName(name string) bool {
	for i, r := range name {
		if r == '_' || (r < unicode.MaxASCII && unicode.IsLetter(r)) {
			continue
		}
		if i > 0 && r < unicode.MaxASCII && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return name != ""
}

func envName(name string) string {
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return unicode.ToUpper(r)
		}
		return '_'
	}, name)
}

// Read runs the command repeat times and aggregates the outputs.
func (c *Command) Read(params grid.Params) (interface{}, error) {
	env := Env(params)

	outputs := make([]string, 0, c.repeat)
	for i := 0; i < c.repeat; i++ {
		output, err := c.runOnce(env)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, output)
	}

	if c.repeat == 1 {
		return formatText(outputs[0], c.precision), nil
	}

	values := make([]float64, 0, len(outputs))
	for _, output := range outputs {
		value, err := strconv.ParseFloat(output, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "output %q of %q is not a number", output, c.run)
		}
		values = append(values, value)
	}
	return summarize(values, c.precision)
}

func (c *Command) runOnce(env []string) (string, error) {
	logrus.Debugf("Running %q with %s", c.run, strings.Join(env, " "))
	task, err := c.executor.Execute(c.run, env)
	if err != nil {
		return "", errors.Wrapf(err, "could not execute %q", c.run)
	}
	defer func() {
		var errCollection errcollection.ErrorCollection
		errCollection.Add(task.Clean())
		errCollection.Add(task.EraseOutput())
		if err := errCollection.GetErrIfAny(); err != nil {
			logrus.Warnf("Cleaning task %q failed: %v", c.run, err)
		}
	}()

	task.Wait(0)
	exitCode, err := task.ExitCode()
	if err != nil {
		return "", errors.Wrapf(err, "could not get exit code of %q", c.run)
	}

	if exitCode != 0 {
		executor.LogUnsuccessfulExecution(c.run, task)
		stderr, err := readAll(task.StderrFile)
		if err != nil {
			return "", err
		}
		return "", errors.Errorf("%q exited with code %d: %s", c.run, exitCode, strings.TrimSpace(stderr))
	}

	executor.LogSuccessfulExecution(c.run, task)
	stdout, err := readAll(task.StdoutFile)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(stdout), nil
}

func readAll(open func() (*os.File, error)) (string, error) {
	file, err := open()
	if err != nil {
		return "", errors.Wrap(err, "could not open task output")
	}
	defer file.Close()

	content, err := ioutil.ReadAll(file)
	if err != nil {
		return "", errors.Wrapf(err, "could not read %q", file.Name())
	}
	return string(content), nil
}
