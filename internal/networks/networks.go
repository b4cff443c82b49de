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

package networks

import (
	"fmt"

	"github.com/trustless-agents/registry-cli/pkg/types"
)

// Descriptor statically binds a network to its RPC variable, display
// name, chain id, and verification mode. The table below is the closed
// set of deployment targets; nothing is derived at runtime.
type Descriptor struct {
	Network     types.Network
	DisplayName string
	// RPCEnvVar is the env-file variable holding the RPC endpoint, and
	// the rpc_endpoints alias forge resolves through foundry.toml.
	RPCEnvVar string
	ChainID   int64
	Mode      types.VerificationMode
	// Mainnet marks networks where a deploy spends real funds and the
	// CLI asks for confirmation first.
	Mainnet bool
	// VerifierShortName and VerifierURL target the OKLink verification
	// plugin. Set only when Mode is VerifyOKLink.
	VerifierShortName string
	VerifierURL       string
}

const oklinkVerifyURLBase = "https://www.oklink.com/api/v5/explorer/contract/verify-source-code-plugin/"

var descriptorTable = [...]Descriptor{
	types.NetworkSepolia: {
		Network:     types.NetworkSepolia,
		DisplayName: "Sepolia",
		RPCEnvVar:   "SEPOLIA_RPC_URL",
		ChainID:     11155111,
		Mode:        types.VerifyEtherscan,
	},
	types.NetworkBaseSepolia: {
		Network:     types.NetworkBaseSepolia,
		DisplayName: "Base Sepolia",
		RPCEnvVar:   "BASE_SEPOLIA_RPC_URL",
		ChainID:     84532,
		Mode:        types.VerifyEtherscan,
	},
	types.NetworkOptimismSepolia: {
		Network:     types.NetworkOptimismSepolia,
		DisplayName: "Optimism Sepolia",
		RPCEnvVar:   "OPTIMISM_SEPOLIA_RPC_URL",
		ChainID:     11155420,
		Mode:        types.VerifyEtherscan,
	},
	types.NetworkModeTestnet: {
		Network:     types.NetworkModeTestnet,
		DisplayName: "Mode Testnet",
		RPCEnvVar:   "MODE_TESTNET_RPC_URL",
		ChainID:     919,
		Mode:        types.VerifyNone,
	},
	types.NetworkZGTestnet: {
		Network:     types.NetworkZGTestnet,
		DisplayName: "0G Galileo Testnet",
		RPCEnvVar:   "ZG_TESTNET_RPC_URL",
		ChainID:     16601,
		Mode:        types.VerifyNone,
	},
	types.NetworkXLayer: {
		Network:           types.NetworkXLayer,
		DisplayName:       "X Layer Mainnet",
		RPCEnvVar:         "XLAYER_RPC_URL",
		ChainID:           196,
		Mode:              types.VerifyOKLink,
		Mainnet:           true,
		VerifierShortName: "XLAYER",
		VerifierURL:       oklinkVerifyURLBase + "XLAYER",
	},
	types.NetworkXLayerTestnet: {
		Network:           types.NetworkXLayerTestnet,
		DisplayName:       "X Layer Testnet",
		RPCEnvVar:         "XLAYER_TESTNET_RPC_URL",
		ChainID:           195,
		Mode:              types.VerifyOKLink,
		VerifierShortName: "XLAYER_TESTNET",
		VerifierURL:       oklinkVerifyURLBase + "XLAYER_TESTNET",
	},
}

// GetDescriptor returns the descriptor for a network. The returned value
// is a copy; the table itself is immutable for the process lifetime.
func GetDescriptor(network types.Network) *Descriptor {
	d := descriptorTable[network]
	return &d
}

// GetDescriptorByChainID looks a descriptor up by chain id.
func GetDescriptorByChainID(chainID int64) (*Descriptor, error) {
	for i := range descriptorTable {
		if descriptorTable[i].ChainID == chainID {
			d := descriptorTable[i]
			return &d, nil
		}
	}
	return nil, fmt.Errorf("no network with chain id %d", chainID)
}

// All returns the descriptors in deployment order.
func All() []*Descriptor {
	all := make([]*Descriptor, len(descriptorTable))
	for i := range descriptorTable {
		d := descriptorTable[i]
		all[i] = &d
	}
	return all
}
