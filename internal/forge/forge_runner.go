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
	"context"

	"github.com/trustless-agents/registry-cli/pkg/types"
)

// IForgeRunner is the seam between the dispatcher and the forge binary,
// so tests can assert argument shapes without spawning processes.
type IForgeRunner interface {
	Run(ctx context.Context, workingDir string, env []string, command ...string) (*types.CommandResult, error)
}

// ForgeRunner implements IForgeRunner against the real binary.
type ForgeRunner struct{}

func NewForgeRunner() *ForgeRunner {
	return &ForgeRunner{}
}

func (r *ForgeRunner) Run(ctx context.Context, workingDir string, env []string, command ...string) (*types.CommandResult, error) {
	return RunForgeCommand(ctx, workingDir, env, command...)
}
