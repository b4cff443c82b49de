// Copyright © 2025 Trustless Agents Contributors
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package forge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/trustless-agents/registry-cli/internal/log"
	"github.com/trustless-agents/registry-cli/pkg/types"
)

// RunForgeCommand runs one forge invocation and blocks until it exits.
// The result carries the exit code, captured output, and duration; the
// returned error is non-nil only when the process could not be started
// at all. Exit-code policy belongs to the caller. Nothing here retries
// or interprets failures.
//
// In verbose mode output is streamed through to the terminal as well as
// captured, so long deploys stay observable.
func RunForgeCommand(ctx context.Context, workingDir string, env []string, command ...string) (*types.CommandResult, error) {
	l := log.LoggerFromContext(ctx)
	l.Debug(fmt.Sprintf("running: forge %s", strings.Join(command, " ")))

	forgeCmd := exec.CommandContext(ctx, "forge", command...)
	forgeCmd.Dir = workingDir
	if len(env) > 0 {
		forgeCmd.Env = append(os.Environ(), env...)
	}

	var stdout, stderr bytes.Buffer
	if log.VerbosityFromContext(ctx) {
		forgeCmd.Stdout = io.MultiWriter(os.Stdout, &stdout)
		forgeCmd.Stderr = io.MultiWriter(os.Stderr, &stderr)
	} else {
		forgeCmd.Stdout = &stdout
		forgeCmd.Stderr = &stderr
	}

	start := time.Now()
	err := forgeCmd.Run()
	result := &types.CommandResult{
		ExitCode: -1,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}
	if forgeCmd.ProcessState != nil {
		result.ExitCode = forgeCmd.ProcessState.ExitCode()
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return result, fmt.Errorf("failed to run forge: %w", err)
		}
	}
	return result, nil
}
