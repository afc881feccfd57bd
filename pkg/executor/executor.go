package executor

// Executor is responsible for creating execution environment for given command.
// It returns TaskHandle when the command started gracefully.
// Command is executed asynchronously.
type Executor interface {
	// Execute executes command with additional environment variables ("KEY=value").
	Execute(command string, env []string) (TaskHandle, error)
	// Name returns user-friendly name of executor.
	Name() string
}
