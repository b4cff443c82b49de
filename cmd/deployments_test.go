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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trustless-agents/registry-cli/internal/constants"
)

const archivedRecord = `{
	"transactions": [
		{
			"hash": "0x11",
			"transactionType": "CREATE",
			"contractName": "IdentityRegistry",
			"contractAddress": "0x8004a169fb4a3325136eb29fa0ceb6d2e539a432"
		}
	],
	"timestamp": 1735689600,
	"chain": 196,
	"commit": "abc1234"
}`

func TestDeploymentsCmd(t *testing.T) {
	archiveRoot := filepath.Join(t.TempDir(), "deployments")
	recordDir := filepath.Join(archiveRoot, "xlayer", "2025-08-25T10-30-00Z")
	assert.NoError(t, os.MkdirAll(recordDir, 0755))
	assert.NoError(t, os.WriteFile(filepath.Join(recordDir, "run-latest.json"), []byte(archivedRecord), 0644))

	originalDir := constants.DeploymentsDir
	constants.DeploymentsDir = archiveRoot
	defer func() { constants.DeploymentsDir = originalDir }()

	testcases := []struct {
		Name          string
		Args          []string
		ExpectedError string
	}{
		{
			Name: "table output",
			Args: []string{"deployments", "-o", "table"},
		},
		{
			Name: "filtered json output",
			Args: []string{"deployments", "xlayer", "-o", "json"},
		},
		{
			Name: "yaml output",
			Args: []string{"deployments", "-o", "yaml"},
		},
		{
			Name:          "unknown network",
			Args:          []string{"deployments", "goerli", "-o", "table"},
			ExpectedError: "is not a valid network selection",
		},
		{
			Name:          "invalid output",
			Args:          []string{"deployments", "-o", "csv"},
			ExpectedError: "invalid output 'csv'",
		},
	}
	for _, tc := range testcases {
		t.Run(tc.Name, func(t *testing.T) {
			rootCmd.SetArgs(tc.Args)
			err := rootCmd.Execute()
			if tc.ExpectedError != "" {
				assert.ErrorContains(t, err, tc.ExpectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDeploymentsCmdEmptyArchive(t *testing.T) {
	originalDir := constants.DeploymentsDir
	constants.DeploymentsDir = filepath.Join(t.TempDir(), "never-written")
	defer func() { constants.DeploymentsDir = originalDir }()

	rootCmd.SetArgs([]string{"deployments", "-o", "table"})
	assert.NoError(t, rootCmd.Execute())
}
