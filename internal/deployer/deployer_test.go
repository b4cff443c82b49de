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

package deployer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustless-agents/registry-cli/internal/forge/mocks"
	"github.com/trustless-agents/registry-cli/internal/log"
	"github.com/trustless-agents/registry-cli/internal/networks"
	"github.com/trustless-agents/registry-cli/internal/utils"
	"github.com/trustless-agents/registry-cli/pkg/types"
)

// testLogger records messages so tests can assert on warnings without
// scraping stdout.
type testLogger struct {
	infos    []string
	warnings []string
	errors   []error
}

func (l *testLogger) SetLogLevel(_ log.LogLevel) {}
func (l *testLogger) Trace(_ string)             {}
func (l *testLogger) Debug(_ string)             {}
func (l *testLogger) Info(s string)              { l.infos = append(l.infos, s) }
func (l *testLogger) Warn(s string)              { l.warnings = append(l.warnings, s) }
func (l *testLogger) Error(e error)              { l.errors = append(l.errors, e) }

const testPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
const testDeployerAddress = "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"

func testConfig(rpcURLs map[string]string) *types.Config {
	if rpcURLs == nil {
		rpcURLs = map[string]string{}
	}
	return &types.Config{
		EnvFile:         ".env",
		PrivateKey:      testPrivateKey,
		DeployerAddress: testDeployerAddress,
		EtherscanAPIKey: "etherscan-key",
		OKLinkAPIKey:    "oklink-key",
		RPCURLs:         rpcURLs,
	}
}

const testRecordTemplate = `{
	"transactions": [
		{"transactionType": "CREATE", "contractName": "IdentityRegistry", "contractAddress": "0x8004a169fb4a3325136eb29fa0ceb6d2e539a432"},
		{"transactionType": "CREATE", "contractName": "ReputationRegistry", "contractAddress": "0x1111111111111111111111111111111111111111"},
		{"transactionType": "CREATE", "contractName": "ValidationRegistry", "contractAddress": "0x2222222222222222222222222222222222222222"}
	],
	"chain": %d,
	"timestamp": 1755561600
}`

// writeProject lays out a minimal Foundry project, optionally with a
// broadcast record for one chain id.
func writeProject(t *testing.T, recordJSON string, chainID int64) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "foundry.toml"), []byte("[profile.default]\nsrc = \"src\"\n"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "script"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "script", "Deploy.s.sol"), []byte("// script"), 0755))
	if recordJSON != "" {
		recordDir := filepath.Join(dir, "broadcast", "Deploy.s.sol", fmt.Sprintf("%d", chainID))
		require.NoError(t, os.MkdirAll(recordDir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(recordDir, "run-latest.json"), []byte(recordJSON), 0755))
	}
	return dir
}

func newTestDeployer(t *testing.T, cfg *types.Config, projectDir string) (*Deployer, *mocks.ForgeRunner, *testLogger) {
	t.Helper()
	logger := &testLogger{}
	d := NewDeployer(logger, cfg, projectDir)
	d.ArchiveRoot = filepath.Join(t.TempDir(), "deployments")
	d.SkipPreflight = true
	runner := mocks.NewForgeRunner()
	d.forgeMgr = runner
	return d, runner, logger
}

func TestDeployNetworkBinding(t *testing.T) {
	tests := []struct {
		Network      types.Network
		RPCEnvVar    string
		InlineVerify bool
	}{
		{types.NetworkSepolia, "SEPOLIA_RPC_URL", true},
		{types.NetworkBaseSepolia, "BASE_SEPOLIA_RPC_URL", true},
		{types.NetworkOptimismSepolia, "OPTIMISM_SEPOLIA_RPC_URL", true},
		{types.NetworkModeTestnet, "MODE_TESTNET_RPC_URL", false},
		{types.NetworkZGTestnet, "ZG_TESTNET_RPC_URL", false},
		{types.NetworkXLayer, "XLAYER_RPC_URL", false},
		{types.NetworkXLayerTestnet, "XLAYER_TESTNET_RPC_URL", false},
	}
	for _, tc := range tests {
		t.Run(tc.Network.String(), func(t *testing.T) {
			projectDir := writeProject(t, "", 0)
			cfg := testConfig(map[string]string{tc.RPCEnvVar: "https://rpc.example.com"})
			d, runner, _ := newTestDeployer(t, cfg, projectDir)

			result, err := d.Deploy(context.Background(), tc.Network)
			assert.NoError(t, err)
			assert.False(t, result.Skipped)
			require.Len(t, runner.Invocations, 1)

			invocation := runner.Invocations[0]
			assert.Equal(t, projectDir, invocation.WorkingDir)
			assert.Contains(t, invocation.Env, tc.RPCEnvVar+"=https://rpc.example.com")
			assert.Contains(t, invocation.Env, "PRIVATE_KEY=0x"+testPrivateKey)

			expected := []string{"script", "script/Deploy.s.sol:Deploy", "--rpc-url", tc.Network.String(), "--broadcast", "-vvvv"}
			if tc.InlineVerify {
				expected = append(expected, "--verify")
			}
			assert.Equal(t, expected, invocation.Command)
		})
	}
}

func TestDeploySkipsWhenRPCUnset(t *testing.T) {
	projectDir := writeProject(t, "", 0)
	d, runner, logger := newTestDeployer(t, testConfig(nil), projectDir)

	result, err := d.Deploy(context.Background(), types.NetworkSepolia)
	assert.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Len(t, runner.Invocations, 0)
	require.Len(t, logger.warnings, 1)
	assert.Regexp(t, "SEPOLIA_RPC_URL is not set", logger.warnings[0])
}

func TestDeployForgeFailure(t *testing.T) {
	projectDir := writeProject(t, "", 0)
	cfg := testConfig(map[string]string{"MODE_TESTNET_RPC_URL": "https://rpc.example.com"})
	d, runner, _ := newTestDeployer(t, cfg, projectDir)
	runner.ExitCodes = []int{1}

	result, err := d.Deploy(context.Background(), types.NetworkModeTestnet)
	assert.Regexp(t, "exited with code 1", err)
	assert.Equal(t, err, result.Err)
	assert.Len(t, runner.Invocations, 1)
}

func TestDeployForgeNotRunnable(t *testing.T) {
	projectDir := writeProject(t, "", 0)
	cfg := testConfig(map[string]string{"MODE_TESTNET_RPC_URL": "https://rpc.example.com"})
	d, runner, _ := newTestDeployer(t, cfg, projectDir)
	runner.RunErr = fmt.Errorf("failed to run forge: executable file not found in $PATH")

	result, err := d.Deploy(context.Background(), types.NetworkModeTestnet)
	assert.Regexp(t, "executable file not found", err)
	assert.Equal(t, err, result.Err)
}

func TestDeployMissingEtherscanKeyWarns(t *testing.T) {
	projectDir := writeProject(t, "", 0)
	cfg := testConfig(map[string]string{"SEPOLIA_RPC_URL": "https://rpc.example.com"})
	cfg.EtherscanAPIKey = ""
	d, _, logger := newTestDeployer(t, cfg, projectDir)

	_, err := d.Deploy(context.Background(), types.NetworkSepolia)
	assert.NoError(t, err)
	assert.Regexp(t, "ETHERSCAN_API_KEY is not set", logger.warnings[0])
}

func TestDeployReadsBroadcastRecordAndArchives(t *testing.T) {
	chainID := networks.GetDescriptor(types.NetworkXLayerTestnet).ChainID
	projectDir := writeProject(t, fmt.Sprintf(testRecordTemplate, chainID), chainID)
	cfg := testConfig(map[string]string{"XLAYER_TESTNET_RPC_URL": "https://rpc.example.com"})
	d, _, _ := newTestDeployer(t, cfg, projectDir)

	result, err := d.Deploy(context.Background(), types.NetworkXLayerTestnet)
	assert.NoError(t, err)
	require.NotNil(t, result.Addresses)
	assert.Equal(t, "0x8004a169fb4a3325136eb29fa0ceb6d2e539a432", result.Addresses.IdentityRegistry)

	require.NotEqual(t, "", result.ArchiveDir)
	archived, err := os.ReadFile(filepath.Join(result.ArchiveDir, "run-latest.json"))
	assert.NoError(t, err)
	assert.Contains(t, string(archived), "IdentityRegistry")
}

func TestDeployAllAttemptsEveryNetwork(t *testing.T) {
	projectDir := writeProject(t, "", 0)
	rpcURLs := make(map[string]string)
	for _, descriptor := range networks.All() {
		rpcURLs[descriptor.RPCEnvVar] = "https://rpc.example.com"
	}
	d, runner, _ := newTestDeployer(t, testConfig(rpcURLs), projectDir)
	runner.ExitCodes = []int{0, 1, 0, 1, 0, 0, 0}

	results, err := d.DeployAll(context.Background())
	assert.Regexp(t, "2 of 7 deployments failed", err)
	require.Len(t, results, 7)
	// every network is attempted in table order despite the failures
	require.Len(t, runner.Invocations, 7)
	for i, network := range types.AllNetworks() {
		assert.Contains(t, runner.Invocations[i].Command, network.String())
		assert.Equal(t, network, results[i].Network)
	}
	assert.Error(t, results[1].Err)
	assert.Error(t, results[3].Err)
	assert.NoError(t, results[0].Err)
}

func TestDeployAllSkipsUnsetNetworks(t *testing.T) {
	projectDir := writeProject(t, "", 0)
	cfg := testConfig(map[string]string{
		"SEPOLIA_RPC_URL": "https://rpc.example.com",
		"XLAYER_RPC_URL":  "https://xlayer.example.com",
	})
	d, runner, _ := newTestDeployer(t, cfg, projectDir)

	results, err := d.DeployAll(context.Background())
	assert.NoError(t, err)
	assert.Len(t, results, 7)
	assert.Len(t, runner.Invocations, 2)
	skipped := 0
	for _, result := range results {
		if result.Skipped {
			skipped++
		}
	}
	assert.Equal(t, 5, skipped)
}

func TestDeployAllSkipsDeclinedMainnet(t *testing.T) {
	projectDir := writeProject(t, "", 0)
	rpcURLs := make(map[string]string)
	for _, descriptor := range networks.All() {
		rpcURLs[descriptor.RPCEnvVar] = "https://rpc.example.com"
	}
	d, runner, logger := newTestDeployer(t, testConfig(rpcURLs), projectDir)
	d.SkipMainnet = true

	results, err := d.DeployAll(context.Background())
	assert.NoError(t, err)
	require.Len(t, results, 7)
	// every network except the declined mainnet still deploys
	assert.Len(t, runner.Invocations, 6)
	for _, result := range results {
		if result.Network == types.NetworkXLayer {
			assert.True(t, result.Skipped)
		} else {
			assert.False(t, result.Skipped)
		}
	}
	assert.True(t, warned(logger, "mainnet confirmation declined"))
}

func TestPreflightWarnsOnChainIDMismatch(t *testing.T) {
	endpoints := utils.NewTestEndPoint(t)
	utils.StartMockServer(t)
	defer utils.StopMockServer(t)
	// endpoint claims to be chain 1, not Sepolia
	httpmock.RegisterResponder("POST", endpoints.RPCURL,
		httpmock.NewStringResponder(200, `{"jsonrpc":"2.0","id":0,"result":"0x1"}`))

	projectDir := writeProject(t, "", 0)
	cfg := testConfig(map[string]string{"SEPOLIA_RPC_URL": endpoints.RPCURL})
	d, runner, logger := newTestDeployer(t, cfg, projectDir)
	d.SkipPreflight = false

	result, err := d.Deploy(context.Background(), types.NetworkSepolia)
	assert.NoError(t, err)
	assert.False(t, result.Skipped)
	assert.Len(t, runner.Invocations, 1)
	assert.True(t, warned(logger, "reports chain id 1, expected 11155111"))
}

// warned reports whether any recorded warning contains the substring.
func warned(logger *testLogger, substring string) bool {
	for _, warning := range logger.warnings {
		if strings.Contains(warning, substring) {
			return true
		}
	}
	return false
}

func TestPreflightUnreachableEndpointIsOnlyAWarning(t *testing.T) {
	utils.StartMockServer(t)
	defer utils.StopMockServer(t)
	// no responder registered: the probe fails outright

	projectDir := writeProject(t, "", 0)
	cfg := testConfig(map[string]string{"SEPOLIA_RPC_URL": "http://localhost:8545"})
	d, runner, logger := newTestDeployer(t, cfg, projectDir)
	d.SkipPreflight = false

	result, err := d.Deploy(context.Background(), types.NetworkSepolia)
	assert.NoError(t, err)
	assert.False(t, result.Skipped)
	assert.Len(t, runner.Invocations, 1)
	assert.True(t, warned(logger, "could not reach the Sepolia endpoint"))
}
