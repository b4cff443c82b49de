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
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/trustless-agents/registry-cli/internal/config"
	"github.com/trustless-agents/registry-cli/internal/deployer"
	"github.com/trustless-agents/registry-cli/internal/forge"
	"github.com/trustless-agents/registry-cli/internal/foundry"
	"github.com/trustless-agents/registry-cli/internal/log"
	"github.com/trustless-agents/registry-cli/pkg/types"
)

var verifyCmd = &cobra.Command{
	Use:               "verify <network>",
	Short:             "Submit OKLink source verification for a past deployment",
	ValidArgsFunction: listOKLinkNetworks,
	Args:              cobra.ExactArgs(1),
	Long: `Submit OKLink source verification for a past deployment

Reads the most recent broadcast record for the network and submits each
deployed registry to the OKLink explorer verification plugin. Only the
X Layer networks use this path; the other networks verify inline during
deploy.

Verification is fire-and-forget: a submission the explorer rejects is
logged and the command still succeeds, so it is always safe to re-run.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		network, err := types.NetworkFromString(args[0])
		if err != nil {
			return err
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
		if spin != nil {
			spin.Start()
			defer spin.Stop()
		}
		return d.Verify(ctx, network)
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
