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

package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/trustless-agents/registry-cli/internal/config"
	"github.com/trustless-agents/registry-cli/internal/deployer"
	"github.com/trustless-agents/registry-cli/internal/forge"
	"github.com/trustless-agents/registry-cli/internal/foundry"
	"github.com/trustless-agents/registry-cli/internal/log"
	"github.com/trustless-agents/registry-cli/internal/networks"
	"github.com/trustless-agents/registry-cli/internal/ux"
	"github.com/trustless-agents/registry-cli/pkg/types"
)

var deployYes bool
var skipPreflight bool

var deployCmd = &cobra.Command{
	Use:               "deploy <network>",
	Short:             "Deploy the registries to a network",
	ValidArgsFunction: listNetworks,
	Args:              cobra.ExactArgs(1),
	Long: `Deploy the registries to a network

Runs the project's deploy script (script/Deploy.s.sol) through forge
against the named network, or against every known network in order when
the argument is "all". Networks whose RPC variable is not set in the env
file are skipped with a warning.

Deploying to X Layer mainnet asks for confirmation first (suppress with
--yes). Under "all", declining the confirmation skips the mainnet
network and the remaining deploys still run.

Run from the root of the contracts repo.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		composite := args[0] == "all"
		var network types.Network
		if !composite {
			var err error
			if network, err = types.NetworkFromString(args[0]); err != nil {
				return err
			}
		}

		cfg, err := config.Load(envFile)
		if err != nil {
			return err
		}
		if err := forge.CheckForgeInstalled(); err != nil {
			return err
		}
		projectDir, err := os.Getwd()
		if err != nil {
			return err
		}
		if err := foundry.CheckProject(projectDir); err != nil {
			return err
		}

		var spin *spinner.Spinner
		if fancyFeatures && !verbose {
			spin = spinner.New(spinner.CharSets[11], 100*time.Millisecond)
			logger = log.NewSpinnerLogger(spin)
		}
		ctx := log.WithVerbosity(context.Background(), verbose)
		ctx = log.WithLogger(ctx, logger)

		d := deployer.NewDeployer(logger, cfg, projectDir)
		d.SkipPreflight = skipPreflight

		// the prompt happens before the spinner takes over the terminal
		mainnet := networks.GetDescriptor(types.NetworkXLayer)
		promptNeeded := !deployYes && cfg.RPCURL(mainnet.RPCEnvVar) != "" &&
			(composite || network == types.NetworkXLayer)
		if promptNeeded {
			prompt := fmt.Sprintf("deploying to %s (chain id %d) spends real OKB. continue?", mainnet.DisplayName, mainnet.ChainID)
			if err := confirm(prompt); err != nil {
				if !composite {
					return err
				}
				// a declined mainnet never stops the testnet deploys
				d.SkipMainnet = true
			}
		}

		if spin != nil {
			spin.Start()
		}

		if composite {
			results, err := d.DeployAll(ctx)
			if spin != nil {
				spin.Stop()
			}
			printDeploySummary(results)
			return err
		}

		result, err := d.Deploy(ctx, network)
		if spin != nil {
			spin.Stop()
		}
		if err != nil {
			return err
		}
		printDeployedAddresses(result)
		return nil
	},
}

func printDeployedAddresses(result *deployer.Result) {
	if result.Skipped || result.Addresses == nil {
		return
	}
	fmt.Printf("\nRegistry addresses on %s:\n", result.Network)
	fmt.Printf("  IdentityRegistry:   %s\n", result.Addresses.IdentityRegistry)
	if result.Addresses.ReputationRegistry != "" {
		fmt.Printf("  ReputationRegistry: %s\n", result.Addresses.ReputationRegistry)
	}
	if result.Addresses.ValidationRegistry != "" {
		fmt.Printf("  ValidationRegistry: %s\n", result.Addresses.ValidationRegistry)
	}
	if result.ArchiveDir != "" {
		fmt.Printf("\nBroadcast record archived to %s\n", result.ArchiveDir)
	}
}

func printDeploySummary(results []*deployer.Result) {
	t := ux.DefaultTable("deployment summary", table.Row{"network", "status", "details"})
	t.SetOutputMirror(os.Stdout)
	for _, result := range results {
		descriptor := networks.GetDescriptor(result.Network)
		switch {
		case result.Skipped:
			t.AppendRow(table.Row{result.Network, "skipped", descriptor.RPCEnvVar + " not set"})
		case result.Err != nil:
			t.AppendRow(table.Row{result.Network, "failed", result.Err.Error()})
		default:
			details := ""
			if result.Addresses != nil {
				details = "IdentityRegistry " + result.Addresses.IdentityRegistry
			}
			t.AppendRow(table.Row{result.Network, "deployed", details})
		}
	}
	t.Render()
}

func init() {
	deployCmd.Flags().BoolVarP(&deployYes, "yes", "y", false, "deploy to mainnet without prompting for confirmation")
	deployCmd.Flags().BoolVar(&skipPreflight, "skip-preflight", false, "skip the RPC endpoint chain-id probe")

	rootCmd.AddCommand(deployCmd)
}
