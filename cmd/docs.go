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
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

var docsPath string

var docsCmd = &cobra.Command{
	Use:    "docs",
	Short:  "Generate markdown docs for every command",
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := os.MkdirAll(docsPath, 0755); err != nil {
			return err
		}
		return doc.GenMarkdownTree(rootCmd, docsPath)
	},
}

func init() {
	docsCmd.Flags().StringVar(&docsPath, "path", filepath.Join("docs", "command_docs"), "directory to write the generated markdown into")
	rootCmd.AddCommand(docsCmd)
}
