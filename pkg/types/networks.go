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

import (
	"fmt"
	"strings"
)

// Network identifies one of the supported deployment targets. The set is
// closed: adding a network means adding a constant here and a descriptor
// row in internal/networks.
type Network int

const (
	NetworkSepolia Network = iota
	NetworkBaseSepolia
	NetworkOptimismSepolia
	NetworkModeTestnet
	NetworkZGTestnet
	NetworkXLayer
	NetworkXLayerTestnet
)

var NetworkStrings = []string{"sepolia", "base_sepolia", "optimism_sepolia", "mode_testnet", "zg_testnet", "xlayer", "xlayer_testnet"}

func (n Network) String() string {
	return NetworkStrings[n]
}

func NetworkFromString(s string) (Network, error) {
	for i, networkSelection := range NetworkStrings {
		if strings.ToLower(s) == networkSelection {
			return Network(i), nil
		}
	}
	return NetworkSepolia, fmt.Errorf("\"%s\" is not a valid network selection. valid options are: %v", s, NetworkStrings)
}

// AllNetworks returns every network in deployment order. The `deploy all`
// composite walks this slice front to back.
func AllNetworks() []Network {
	networks := make([]Network, len(NetworkStrings))
	for i := range NetworkStrings {
		networks[i] = Network(i)
	}
	return networks
}

// VerificationMode selects how contract source verification is handled
// for a network after deployment.
type VerificationMode int

const (
	// VerifyEtherscan passes --verify to the deploy run so forge submits
	// to an Etherscan-compatible explorer inline.
	VerifyEtherscan VerificationMode = iota
	// VerifyNone deploys without any verification step.
	VerifyNone
	// VerifyOKLink deploys without --verify; verification is a separate
	// pass against the OKLink explorer plugin API.
	VerifyOKLink
)

var VerificationModeStrings = []string{"verify", "no-verify", "oklink-plugin-verify"}

func (m VerificationMode) String() string {
	return VerificationModeStrings[m]
}

func VerificationModeFromString(s string) (VerificationMode, error) {
	for i, modeSelection := range VerificationModeStrings {
		if strings.ToLower(s) == modeSelection {
			return VerificationMode(i), nil
		}
	}
	return VerifyNone, fmt.Errorf("\"%s\" is not a valid verification mode. valid options are: %v", s, VerificationModeStrings)
}
