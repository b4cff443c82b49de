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

// Package foundry inspects the Foundry project the dispatcher is run
// from. It never compiles anything. forge owns the build.
package foundry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/trustless-agents/registry-cli/internal/constants"
)

const ConfigFile = "foundry.toml"

// Config is the subset of foundry.toml the dispatcher reads. The
// rpc_endpoints table maps network aliases to URLs, usually
// "${SEPOLIA_RPC_URL}"-style references that forge interpolates from
// the process environment.
type Config struct {
	Profile      map[string]Profile `toml:"profile"`
	RPCEndpoints map[string]string  `toml:"rpc_endpoints"`
}

type Profile struct {
	Src    string   `toml:"src"`
	Out    string   `toml:"out"`
	Script string   `toml:"script"`
	Libs   []string `toml:"libs"`
}

// Detect checks if a directory is a Foundry project
func Detect(dir string) (bool, error) {
	configPath := filepath.Join(dir, ConfigFile)
	_, err := os.Stat(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CheckProject verifies the working directory holds a Foundry project
// with the expected deploy script. Run before any forge invocation so
// the operator gets a path diagnostic instead of a forge stack trace.
func CheckProject(dir string) error {
	detected, err := Detect(dir)
	if err != nil {
		return err
	}
	if !detected {
		return fmt.Errorf("no Foundry project detected (missing foundry.toml) in '%s'. run from the contracts repo root", dir)
	}
	scriptPath := filepath.Join(dir, constants.DeployScriptFile)
	if _, err := os.Stat(scriptPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("deploy script '%s' not found in '%s'", constants.DeployScriptFile, dir)
		}
		return err
	}
	return nil
}

// LoadConfig parses foundry.toml from a project directory.
func LoadConfig(dir string) (*Config, error) {
	data, err := os.ReadFile(filepath.Join(dir, ConfigFile))
	if err != nil {
		return nil, err
	}
	var config Config
	if _, err := toml.Decode(string(data), &config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigFile, err)
	}
	return &config, nil
}

// HasRPCEndpoint reports whether foundry.toml declares an alias in its
// [rpc_endpoints] table. forge resolves --rpc-url through this table,
// so a missing alias is worth a warning before the run.
func (c *Config) HasRPCEndpoint(alias string) bool {
	_, ok := c.RPCEndpoints[alias]
	return ok
}
