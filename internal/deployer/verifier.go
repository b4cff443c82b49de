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
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/hyperledger/firefly-signer/pkg/abi"
	"github.com/hyperledger/firefly-signer/pkg/ethtypes"

	"github.com/trustless-agents/registry-cli/internal/broadcast"
	"github.com/trustless-agents/registry-cli/internal/constants"
	"github.com/trustless-agents/registry-cli/internal/networks"
	"github.com/trustless-agents/registry-cli/pkg/types"
)

// contractSources maps each registry to its source location in the
// Foundry project, the path:name form forge verify-contract expects.
var contractSources = map[string]string{
	broadcast.IdentityRegistry:   "src/IdentityRegistry.sol:IdentityRegistry",
	broadcast.ReputationRegistry: "src/ReputationRegistry.sol:ReputationRegistry",
	broadcast.ValidationRegistry: "src/ValidationRegistry.sol:ValidationRegistry",
}

// ReputationRegistry and ValidationRegistry share this constructor. The
// sole argument is the IdentityRegistry address.
const registryConstructorABI = `[{"type":"constructor","inputs":[{"name":"identityRegistry","type":"address"}]}]`

// Verify submits OKLink source verification for every registry found in
// the network's most recent broadcast record. Submission failures are
// logged and swallowed: a verification pass never fails the run, and it
// can simply be re-run later.
func (d *Deployer) Verify(ctx context.Context, network types.Network) error {
	descriptor := networks.GetDescriptor(network)
	if descriptor.Mode != types.VerifyOKLink {
		return fmt.Errorf("%s does not use the OKLink verifier. verification for it runs inline during deploy", network)
	}
	if d.Config.OKLinkAPIKey == "" {
		return fmt.Errorf("OKLINK_API_KEY is not set in '%s'. OKLink verification requires an API key", d.Config.EnvFile)
	}

	recordPath := broadcast.RunLatestPath(d.ProjectDir, constants.BroadcastScriptDir, descriptor.ChainID)
	record, err := broadcast.LoadRecord(recordPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no broadcast record at '%s'. run 'treg deploy %s' first", recordPath, network)
		}
		return err
	}

	requests, err := d.buildVerificationRequests(descriptor, record)
	if err != nil {
		return err
	}

	for _, request := range requests {
		d.Log.Info(fmt.Sprintf("verifying %s at %s on %s", request.Contract, request.Address, descriptor.DisplayName))
		if err := d.submitVerification(ctx, request); err != nil {
			d.Log.Warn(fmt.Sprintf("verification of %s failed: %s. re-run verify after the explorer indexes the contract", request.Contract, err))
		}
	}
	return nil
}

// buildVerificationRequests turns a broadcast record into one request
// per deployed registry. The IdentityRegistry must be present and valid;
// without it the secondary registries' constructor args cannot be
// reproduced, so nothing is submitted at all.
func (d *Deployer) buildVerificationRequests(descriptor *networks.Descriptor, record *broadcast.Record) ([]*types.VerificationRequest, error) {
	addresses, err := record.RegistryAddresses()
	if err != nil {
		return nil, err
	}
	identity, err := ethtypes.NewAddress(addresses.IdentityRegistry)
	if err != nil {
		return nil, fmt.Errorf("IdentityRegistry address '%s' in the broadcast record is not a valid address: %w", addresses.IdentityRegistry, err)
	}

	requests := []*types.VerificationRequest{{
		Address:     identity.String(),
		Contract:    contractSources[broadcast.IdentityRegistry],
		ChainID:     descriptor.ChainID,
		Verifier:    "oklink",
		VerifierURL: descriptor.VerifierURL,
	}}

	constructorArgs, err := encodeConstructorArgs(identity.String())
	if err != nil {
		return nil, err
	}
	for _, name := range []string{broadcast.ReputationRegistry, broadcast.ValidationRegistry} {
		rawAddress := addresses.ReputationRegistry
		if name == broadcast.ValidationRegistry {
			rawAddress = addresses.ValidationRegistry
		}
		if rawAddress == "" {
			continue
		}
		address, err := ethtypes.NewAddress(rawAddress)
		if err != nil {
			return nil, fmt.Errorf("%s address '%s' in the broadcast record is not a valid address: %w", name, rawAddress, err)
		}
		requests = append(requests, &types.VerificationRequest{
			Address:         address.String(),
			Contract:        contractSources[name],
			ChainID:         descriptor.ChainID,
			Verifier:        "oklink",
			VerifierURL:     descriptor.VerifierURL,
			ConstructorArgs: constructorArgs,
		})
	}
	return requests, nil
}

func (d *Deployer) submitVerification(ctx context.Context, request *types.VerificationRequest) error {
	args := []string{
		"verify-contract", request.Address, request.Contract,
		"--chain-id", strconv.FormatInt(request.ChainID, 10),
		"--verifier", request.Verifier,
		"--verifier-url", request.VerifierURL,
		"--api-key", d.Config.OKLinkAPIKey,
	}
	if request.ConstructorArgs != "" {
		args = append(args, "--constructor-args", request.ConstructorArgs)
	}
	args = append(args, "--watch")

	commandResult, err := d.forgeMgr.Run(ctx, d.ProjectDir, nil, args...)
	if err != nil {
		return err
	}
	if !commandResult.Succeeded() {
		d.replayOutput(ctx, commandResult)
		return fmt.Errorf("forge verify-contract exited with code %d", commandResult.ExitCode)
	}
	return nil
}

// encodeConstructorArgs ABI-encodes the single-address constructor the
// secondary registries share, producing the 0x-prefixed word forge
// passes through --constructor-args.
func encodeConstructorArgs(identityAddress string) (string, error) {
	var constructorABI abi.ABI
	if err := json.Unmarshal([]byte(registryConstructorABI), &constructorABI); err != nil {
		return "", err
	}
	data, err := constructorABI.Constructor().Inputs.EncodeABIDataJSON([]byte(fmt.Sprintf(`["%s"]`, identityAddress)))
	if err != nil {
		return "", err
	}
	return "0x" + hex.EncodeToString(data), nil
}
