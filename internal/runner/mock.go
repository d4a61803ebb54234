package runner

import "context"

// MockRunner is a test double for Runner
type MockRunner struct {
	RunFunc     func(ctx context.Context, command string) (string, error)
	RunFullFunc func(ctx context.Context, command string) Output
}

// Run calls the mock function
func (m *MockRunner) Run(ctx context.Context, command string) (string, error) {
	if m.RunFunc == nil {
		return "", nil
	}
	return m.RunFunc(ctx, command)
}

// RunFull calls the mock function
func (m *MockRunner) RunFull(ctx context.Context, command string) Output {
	if m.RunFullFunc == nil {
		return Output{}
	}
	return m.RunFullFunc(ctx, command)
}
