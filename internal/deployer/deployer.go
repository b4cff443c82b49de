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

// Package deployer orchestrates registry deployments: it gates on
// configuration, probes the endpoint, drives forge, and archives the
// resulting broadcast records. All chain work is forge's.
package deployer

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/trustless-agents/registry-cli/internal/broadcast"
	"github.com/trustless-agents/registry-cli/internal/constants"
	"github.com/trustless-agents/registry-cli/internal/forge"
	"github.com/trustless-agents/registry-cli/internal/foundry"
	"github.com/trustless-agents/registry-cli/internal/log"
	"github.com/trustless-agents/registry-cli/internal/networks"
	"github.com/trustless-agents/registry-cli/internal/rpc"
	"github.com/trustless-agents/registry-cli/pkg/types"
)

type Deployer struct {
	Log        log.Logger
	Config     *types.Config
	ProjectDir string
	// ArchiveRoot is where broadcast snapshots are kept after a deploy.
	ArchiveRoot string
	// SkipPreflight disables the chain-id probe before each deploy.
	SkipPreflight bool
	// SkipMainnet skips the mainnet networks, set when the operator
	// declines the confirmation prompt during a composite run.
	SkipMainnet bool

	forgeMgr forge.IForgeRunner
}

func NewDeployer(logger log.Logger, cfg *types.Config, projectDir string) *Deployer {
	return &Deployer{
		Log:         logger,
		Config:      cfg,
		ProjectDir:  projectDir,
		ArchiveRoot: constants.DeploymentsDir,
		forgeMgr:    forge.NewForgeRunner(),
	}
}

// Result is the outcome of one network deployment attempt. Skipped and
// Err are mutually exclusive; a skip is not a failure.
type Result struct {
	Network    types.Network
	Skipped    bool
	Err        error
	Duration   time.Duration
	Addresses  *types.RegistryAddresses
	ArchiveDir string
}

// Deploy runs the deploy script against one network. A network whose
// RPC variable is unset is skipped with a warning and no subprocess is
// spawned. The returned error is also recorded on the Result so the
// composite run can collect outcomes without stopping.
func (d *Deployer) Deploy(ctx context.Context, network types.Network) (*Result, error) {
	l := d.Log
	descriptor := networks.GetDescriptor(network)
	result := &Result{Network: network}

	rpcURL := d.Config.RPCURL(descriptor.RPCEnvVar)
	if rpcURL == "" {
		l.Warn(fmt.Sprintf("%s is not set in '%s', skipping %s", descriptor.RPCEnvVar, d.Config.EnvFile, network))
		result.Skipped = true
		return result, nil
	}
	if descriptor.Mainnet && d.SkipMainnet {
		l.Warn(fmt.Sprintf("mainnet confirmation declined, skipping %s", network))
		result.Skipped = true
		return result, nil
	}

	if descriptor.Mode == types.VerifyEtherscan && d.Config.EtherscanAPIKey == "" {
		l.Warn(fmt.Sprintf("ETHERSCAN_API_KEY is not set in '%s'. explorer verification on %s will fail", d.Config.EnvFile, descriptor.DisplayName))
	}
	if foundryConfig, err := foundry.LoadConfig(d.ProjectDir); err == nil && !foundryConfig.HasRPCEndpoint(network.String()) {
		l.Warn(fmt.Sprintf("foundry.toml has no [rpc_endpoints] alias '%s'. forge may not resolve the endpoint", network))
	}
	if !d.SkipPreflight {
		d.preflight(ctx, descriptor, rpcURL)
	}

	l.Info(fmt.Sprintf("deploying to %s (chain id %d) as %s", descriptor.DisplayName, descriptor.ChainID, d.Config.DeployerAddress))

	args := []string{"script", constants.DeployScriptTarget, "--rpc-url", network.String(), "--broadcast", "-vvvv"}
	if descriptor.Mode == types.VerifyEtherscan {
		args = append(args, "--verify")
	}

	start := time.Now()
	commandResult, err := d.forgeMgr.Run(ctx, d.ProjectDir, d.forgeEnv(descriptor, rpcURL), args...)
	result.Duration = time.Since(start)
	if err != nil {
		result.Err = err
		return result, result.Err
	}
	if !commandResult.Succeeded() {
		d.replayOutput(ctx, commandResult)
		result.Err = fmt.Errorf("forge script exited with code %d deploying to %s", commandResult.ExitCode, network)
		return result, result.Err
	}

	recordPath := broadcast.RunLatestPath(d.ProjectDir, constants.BroadcastScriptDir, descriptor.ChainID)
	if record, err := broadcast.LoadRecord(recordPath); err != nil {
		l.Warn(fmt.Sprintf("deployed, but could not read broadcast record '%s': %s", recordPath, err))
	} else if addresses, err := record.RegistryAddresses(); err != nil {
		l.Warn(fmt.Sprintf("deployed, but %s", err))
	} else {
		result.Addresses = addresses
	}

	if archiveDir, err := d.ArchiveDeployment(network, descriptor.ChainID); err != nil {
		l.Warn(fmt.Sprintf("could not archive deployment record: %s", err))
	} else {
		result.ArchiveDir = archiveDir
	}

	l.Info(fmt.Sprintf("deployed to %s in %s", descriptor.DisplayName, result.Duration.Round(time.Millisecond)))
	return result, nil
}

// DeployAll walks every network in table order. One network's failure
// never stops the rest; the aggregate error reports how many attempts
// failed so the process can exit non-zero after the summary.
func (d *Deployer) DeployAll(ctx context.Context) ([]*Result, error) {
	allNetworks := types.AllNetworks()
	results := make([]*Result, 0, len(allNetworks))
	for _, network := range allNetworks {
		result, _ := d.Deploy(ctx, network)
		results = append(results, result)
	}
	failed := 0
	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return results, fmt.Errorf("%d of %d deployments failed", failed, len(results))
	}
	return results, nil
}

// forgeEnv builds the child process environment. foundry.toml resolves
// the --rpc-url alias through ${VAR} interpolation and the deploy script
// reads PRIVATE_KEY itself, so credentials travel by env rather than
// argv.
func (d *Deployer) forgeEnv(descriptor *networks.Descriptor, rpcURL string) []string {
	env := []string{
		"PRIVATE_KEY=0x" + d.Config.PrivateKey,
		descriptor.RPCEnvVar + "=" + rpcURL,
	}
	if d.Config.EtherscanAPIKey != "" {
		env = append(env, "ETHERSCAN_API_KEY="+d.Config.EtherscanAPIKey)
	}
	return env
}

// preflight asks the endpoint for its chain id before handing it to
// forge. An unreachable endpoint or a mismatched id is only a warning.
// forge stays the authority on whether the endpoint is usable.
func (d *Deployer) preflight(ctx context.Context, descriptor *networks.Descriptor, rpcURL string) {
	chainID, err := rpc.NewClient(rpcURL).ChainID(ctx)
	if err != nil {
		d.Log.Warn(fmt.Sprintf("could not reach the %s endpoint: %s", descriptor.DisplayName, err))
		return
	}
	if chainID != descriptor.ChainID {
		d.Log.Warn(fmt.Sprintf("the %s endpoint reports chain id %d, expected %d. check %s", descriptor.DisplayName, chainID, descriptor.ChainID, descriptor.RPCEnvVar))
	}
}

// replayOutput prints what forge said when a run failed and output was
// not already streaming.
func (d *Deployer) replayOutput(ctx context.Context, commandResult *types.CommandResult) {
	if log.VerbosityFromContext(ctx) {
		return
	}
	if out := strings.TrimSpace(commandResult.Stdout); out != "" {
		fmt.Println(out)
	}
	if errOut := strings.TrimSpace(commandResult.Stderr); errOut != "" {
		fmt.Fprintln(os.Stderr, errOut)
	}
}
