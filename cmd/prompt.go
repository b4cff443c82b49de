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
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trustless-agents/registry-cli/pkg/types"
)

func confirm(promptText string) error {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Printf("%s [y/N] ", promptText)
		if str, err := reader.ReadString('\n'); err != nil {
			return err
		} else {
			str = strings.ToLower(strings.TrimSpace(str))
			if str == "y" || str == "yes" {
				return nil
			} else {
				return fmt.Errorf("confirmation declined with response: '%s'", str)
			}
		}
	}
}

// listNetworks aids in completion, to provide network names to commands
// taking a network argument.
func listNetworks(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	options := append([]string{}, types.NetworkStrings...)
	options = append(options, "all")
	return options, cobra.ShellCompDirectiveNoFileComp
}

// listOKLinkNetworks narrows completion to the networks whose explorer
// verification runs as a separate pass.
func listOKLinkNetworks(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	options := make([]string, 0, 2)
	for _, network := range types.AllNetworks() {
		if network == types.NetworkXLayer || network == types.NetworkXLayerTestnet {
			options = append(options, network.String())
		}
	}
	return options, cobra.ShellCompDirectiveNoFileComp
}
