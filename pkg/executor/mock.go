package executor

import "context"

// MockExecutor is a mock implementation of Executor for testing.
type MockExecutor struct {
	RunFunc      func(ctx context.Context, cmd Command) (Result, error)
	LookPathFunc func(name string) (string, error)
}

func (m *MockExecutor) Run(ctx context.Context, cmd Command) (Result, error) {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, cmd)
	}
	return Result{}, nil
}

func (m *MockExecutor) LookPath(name string) (string, error) {
	if m.LookPathFunc != nil {
		return m.LookPathFunc(name)
	}
	return name, nil
}
