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

package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/hyperledger/firefly-signer/pkg/secp256k1"
	"github.com/spf13/viper"
	"github.com/trustless-agents/registry-cli/internal/networks"
	"github.com/trustless-agents/registry-cli/pkg/types"
)

// Load reads the env file at the given path into an immutable Config.
// A missing file or an empty PRIVATE_KEY aborts before anything else
// happens; per-network RPC variables are allowed to be absent and are
// handled at dispatch time.
func Load(envFile string) (*types.Config, error) {
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		return nil, fmt.Errorf("env file '%s' not found. copy .env.example to .env and fill in your deployment credentials", envFile)
	} else if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read env file '%s': %w", envFile, err)
	}

	privateKey := strings.TrimSpace(v.GetString("PRIVATE_KEY"))
	if privateKey == "" {
		return nil, fmt.Errorf("PRIVATE_KEY is not set in '%s'. deployment requires a funded signer key", envFile)
	}

	deployerAddress, err := deriveAddress(privateKey)
	if err != nil {
		return nil, fmt.Errorf("PRIVATE_KEY in '%s' is invalid: %w", envFile, err)
	}

	cfg := &types.Config{
		EnvFile:         envFile,
		PrivateKey:      strings.TrimPrefix(privateKey, "0x"),
		DeployerAddress: deployerAddress,
		EtherscanAPIKey: v.GetString("ETHERSCAN_API_KEY"),
		OKLinkAPIKey:    v.GetString("OKLINK_API_KEY"),
		RPCURLs:         make(map[string]string),
	}

	for _, descriptor := range networks.All() {
		if url := strings.TrimSpace(v.GetString(descriptor.RPCEnvVar)); url != "" {
			cfg.RPCURLs[descriptor.RPCEnvVar] = url
		}
	}

	return cfg, nil
}

// deriveAddress recovers the deployer account address from the signer
// key so the operator can see which account pays for the run.
func deriveAddress(privateKey string) (string, error) {
	keyBytes, err := hex.DecodeString(strings.TrimPrefix(privateKey, "0x"))
	if err != nil {
		return "", fmt.Errorf("not valid hex: %w", err)
	}
	if len(keyBytes) != 32 {
		return "", fmt.Errorf("expected a 32 byte secp256k1 key, got %d bytes", len(keyBytes))
	}
	keyPair, err := secp256k1.NewSecp256k1KeyPair(keyBytes)
	if err != nil {
		return "", err
	}
	return keyPair.Address.String(), nil
}
