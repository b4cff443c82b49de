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

// Package broadcast reads the JSON records forge writes for every
// on-chain run under broadcast/<script>/<chainid>/.
package broadcast

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/trustless-agents/registry-cli/pkg/types"
)

// The three registry contracts a deploy run can create. IdentityRegistry
// is the primary: the other two take its address as their only
// constructor argument and cannot exist without it.
const (
	IdentityRegistry   = "IdentityRegistry"
	ReputationRegistry = "ReputationRegistry"
	ValidationRegistry = "ValidationRegistry"
)

// Transaction is one entry in a broadcast record. Only the fields the
// dispatcher reads are modelled; forge writes many more.
type Transaction struct {
	Hash            string `json:"hash"`
	TransactionType string `json:"transactionType"`
	ContractName    string `json:"contractName"`
	ContractAddress string `json:"contractAddress"`
}

// Record is a forge broadcast file: one entry per transaction attempted
// in a run, with the resulting contract addresses.
type Record struct {
	Transactions []*Transaction `json:"transactions"`
	Timestamp    int64          `json:"timestamp"`
	Chain        int64          `json:"chain"`
	Commit       string         `json:"commit"`
}

// RunLatestPath returns the path of the most recent broadcast record for
// a chain id, relative to the Foundry project root.
func RunLatestPath(projectDir, scriptFile string, chainID int64) string {
	return filepath.Join(projectDir, "broadcast", scriptFile, strconv.FormatInt(chainID, 10), "run-latest.json")
}

// LoadRecord parses a broadcast file. A missing file surfaces as an
// os.ErrNotExist so callers can tell "never deployed" apart from a
// corrupt record.
func LoadRecord(path string) (*Record, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var record *Record
	if err := json.Unmarshal(d, &record); err != nil {
		return nil, fmt.Errorf("failed to parse broadcast record '%s': %w", path, err)
	}
	// a file holding the JSON literal null unmarshals without error
	if record == nil {
		return nil, fmt.Errorf("failed to parse broadcast record '%s': document is null", path)
	}
	return record, nil
}

// AddressOf returns the deployed address of the first transaction whose
// contract name matches exactly, or "" when the record has none.
// Duplicate names are possible in a record that mixes creates and calls;
// the first entry wins.
func (r *Record) AddressOf(contractName string) string {
	for _, tx := range r.Transactions {
		if tx.ContractName == contractName {
			return tx.ContractAddress
		}
	}
	return ""
}

// RegistryAddresses extracts the three registry addresses from a record.
// A missing or null IdentityRegistry address is an error: nothing can be
// verified without the primary registry. The other two registries are
// optional, matching deploys run with features disabled.
func (r *Record) RegistryAddresses() (*types.RegistryAddresses, error) {
	identity := r.AddressOf(IdentityRegistry)
	if identity == "" || identity == "null" {
		return nil, fmt.Errorf("no IdentityRegistry address in broadcast record. the deployment did not complete")
	}
	return &types.RegistryAddresses{
		IdentityRegistry:   identity,
		ReputationRegistry: optionalAddress(r.AddressOf(ReputationRegistry)),
		ValidationRegistry: optionalAddress(r.AddressOf(ValidationRegistry)),
	}, nil
}

func optionalAddress(addr string) string {
	if addr == "null" {
		return ""
	}
	return addr
}
