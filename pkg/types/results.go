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

import "time"

// CommandResult captures the outcome of one external tool invocation.
// Callers decide what to do with a non-zero exit; the runner itself
// never retries.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Succeeded reports whether the tool exited zero.
func (r *CommandResult) Succeeded() bool {
	return r != nil && r.ExitCode == 0
}

// VerificationRequest is one contract verification submission, built from
// a broadcast record and submitted to forge verify-contract. Requests are
// fire-and-forget: forge's --watch handles polling, and a failed
// submission never fails the run.
type VerificationRequest struct {
	// Address is the deployed contract address, 0x-prefixed.
	Address string
	// Contract is the source path and name, e.g.
	// "src/IdentityRegistry.sol:IdentityRegistry".
	Contract string
	// ChainID of the network the contract was deployed to.
	ChainID int64
	// Verifier is the explorer-specific backend short-name, e.g. "oklink".
	Verifier string
	// VerifierURL is the verification API endpoint.
	VerifierURL string
	// ConstructorArgs is the 0x-prefixed ABI encoding of the constructor
	// arguments, or empty for a no-argument constructor.
	ConstructorArgs string
}

// RegistryAddresses holds the deployed addresses of the three ERC-8004
// registries as recorded in a broadcast file. IdentityRegistry is always
// present in a valid record; the other two are empty when the deploy was
// run without them.
type RegistryAddresses struct {
	IdentityRegistry   string `json:"identityRegistry" yaml:"identityRegistry"`
	ReputationRegistry string `json:"reputationRegistry,omitempty" yaml:"reputationRegistry,omitempty"`
	ValidationRegistry string `json:"validationRegistry,omitempty" yaml:"validationRegistry,omitempty"`
}
