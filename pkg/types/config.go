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

package types

// Config holds everything read from the env file. It is constructed once
// at process entry and passed by reference to every component; nothing
// mutates it after load.
type Config struct {
	// EnvFile is the path the values were loaded from.
	EnvFile string
	// PrivateKey is the deployment signer key, without a 0x prefix.
	PrivateKey string
	// DeployerAddress is derived from PrivateKey at load time, 0x-prefixed.
	DeployerAddress string
	// EtherscanAPIKey is used by forge for inline --verify runs. Optional.
	EtherscanAPIKey string
	// OKLinkAPIKey authenticates against the OKLink verification plugin.
	// Only required for the verify pass on the X Layer networks.
	OKLinkAPIKey string
	// RPCURLs maps an RPC environment variable name, for example
	// SEPOLIA_RPC_URL, to its value. Unset variables are absent.
	RPCURLs map[string]string
}

// RPCURL returns the endpoint configured for the given RPC variable name,
// or the empty string when the variable was not set in the env file.
func (c *Config) RPCURL(varName string) string {
	return c.RPCURLs[varName]
}
