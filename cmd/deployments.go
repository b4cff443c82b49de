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
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/trustless-agents/registry-cli/internal/constants"
	"github.com/trustless-agents/registry-cli/internal/deployer"
	"github.com/trustless-agents/registry-cli/internal/ux"
	"github.com/trustless-agents/registry-cli/pkg/types"
)

var deploymentsOutput = "table"

var deploymentsCmd = &cobra.Command{
	Use:               "deployments [network]",
	Short:             "List archived deployment records",
	ValidArgsFunction: listNetworks,
	Args:              cobra.MaximumNArgs(1),
	Long: `List archived deployment records

Every successful deploy snapshots its broadcast record under
` + constants.DeploymentsDir + `.
This lists the snapshots with the registry addresses parsed from each,
optionally narrowed to one network.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		networkFilter := ""
		if len(args) == 1 {
			network, err := types.NetworkFromString(args[0])
			if err != nil {
				return err
			}
			networkFilter = network.String()
		}

		deployments, err := deployer.ListDeployments(constants.DeploymentsDir, networkFilter)
		if err != nil {
			return err
		}

		switch deploymentsOutput {
		case "table":
			if len(deployments) == 0 {
				fmt.Println("No archived deployments. Run 'treg deploy <network>' first.")
				return nil
			}
			t := ux.DefaultTable("archived deployments", table.Row{"network", "timestamp", "identity registry", "reputation registry", "validation registry"})
			t.SetOutputMirror(os.Stdout)
			for _, deployment := range deployments {
				identity, reputation, validation := "", "", ""
				if deployment.Addresses != nil {
					identity = deployment.Addresses.IdentityRegistry
					reputation = deployment.Addresses.ReputationRegistry
					validation = deployment.Addresses.ValidationRegistry
				}
				t.AppendRow(table.Row{deployment.Network, deployment.Timestamp, identity, reputation, validation})
			}
			t.Render()
		case "json":
			bytes, err := json.MarshalIndent(deployments, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(bytes))
		case "yaml":
			bytes, err := yaml.Marshal(deployments)
			if err != nil {
				return err
			}
			fmt.Println(string(bytes))
		default:
			return fmt.Errorf("invalid output '%s'", deploymentsOutput)
		}
		return nil
	},
}

func init() {
	deploymentsCmd.Flags().StringVarP(&deploymentsOutput, "output", "o", "table", "output format (\"table\"|\"json\"|\"yaml\")")

	rootCmd.AddCommand(deploymentsCmd)
}
