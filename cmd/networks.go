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

	"github.com/trustless-agents/registry-cli/internal/config"
	"github.com/trustless-agents/registry-cli/internal/networks"
	"github.com/trustless-agents/registry-cli/internal/ux"
	"github.com/trustless-agents/registry-cli/pkg/types"
)

var networksOutput = "table"

// networkView is the row shape for every output format.
type networkView struct {
	Identifier   string `json:"identifier" yaml:"identifier"`
	Name         string `json:"name" yaml:"name"`
	ChainID      int64  `json:"chainId" yaml:"chainId"`
	RPCEnvVar    string `json:"rpcEnvVar" yaml:"rpcEnvVar"`
	Verification string `json:"verification" yaml:"verification"`
	Configured   bool   `json:"configured" yaml:"configured"`
}

var networksCmd = &cobra.Command{
	Use:   "networks",
	Short: "List the supported deployment networks",
	Long: `List the supported deployment networks

Shows every network the CLI can deploy to, its chain id, the env
variable that must hold its RPC endpoint, how contract verification is
handled there, and whether the current env file configures it.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// the listing works without credentials; a missing or incomplete
		// env file just means nothing shows as configured
		cfg, _ := config.Load(envFile)
		views := buildNetworkViews(cfg)

		switch networksOutput {
		case "table":
			t := ux.DefaultTable("deployment networks", table.Row{"identifier", "name", "chain id", "rpc variable", "verification", "configured"})
			t.SetOutputMirror(os.Stdout)
			for _, view := range views {
				configured := "no"
				if view.Configured {
					configured = "yes"
				}
				t.AppendRow(table.Row{view.Identifier, view.Name, view.ChainID, view.RPCEnvVar, view.Verification, configured})
			}
			t.Render()
		case "json":
			bytes, err := json.MarshalIndent(views, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(bytes))
		case "yaml":
			bytes, err := yaml.Marshal(views)
			if err != nil {
				return err
			}
			fmt.Println(string(bytes))
		default:
			return fmt.Errorf("invalid output '%s'", networksOutput)
		}
		return nil
	},
}

func buildNetworkViews(cfg *types.Config) []*networkView {
	descriptors := networks.All()
	views := make([]*networkView, 0, len(descriptors))
	for _, descriptor := range descriptors {
		views = append(views, &networkView{
			Identifier:   descriptor.Network.String(),
			Name:         descriptor.DisplayName,
			ChainID:      descriptor.ChainID,
			RPCEnvVar:    descriptor.RPCEnvVar,
			Verification: descriptor.Mode.String(),
			Configured:   cfg != nil && cfg.RPCURL(descriptor.RPCEnvVar) != "",
		})
	}
	return views
}

func init() {
	networksCmd.Flags().StringVarP(&networksOutput, "output", "o", "table", "output format (\"table\"|\"json\"|\"yaml\")")

	rootCmd.AddCommand(networksCmd)
}
