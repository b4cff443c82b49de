// ForgeRunner is a mock that implements forge.IForgeRunner
package mocks

import (
	"context"

	"github.com/trustless-agents/registry-cli/pkg/types"
)

// Invocation records one Run call so tests can assert how the dispatcher
// shaped its forge command lines.
type Invocation struct {
	WorkingDir string
	Env        []string
	Command    []string
}

type ForgeRunner struct {
	Invocations []Invocation
	// ExitCodes are consumed one per Run call; when exhausted, runs
	// succeed with exit 0.
	ExitCodes []int
	// RunErr is returned by every Run call when set (spawn failure).
	RunErr error
}

func NewForgeRunner() *ForgeRunner {
	return &ForgeRunner{}
}

func (r *ForgeRunner) Run(_ context.Context, workingDir string, env []string, command ...string) (*types.CommandResult, error) {
	r.Invocations = append(r.Invocations, Invocation{
		WorkingDir: workingDir,
		Env:        env,
		Command:    command,
	})
	exitCode := 0
	if len(r.ExitCodes) > 0 {
		exitCode = r.ExitCodes[0]
		r.ExitCodes = r.ExitCodes[1:]
	}
	if r.RunErr != nil {
		return &types.CommandResult{ExitCode: -1}, r.RunErr
	}
	return &types.CommandResult{ExitCode: exitCode}, nil
}
