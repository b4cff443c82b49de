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

package foundry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testFoundryToml = `[profile.default]
src = "src"
out = "out"
libs = ["lib"]

[rpc_endpoints]
sepolia = "${SEPOLIA_RPC_URL}"
xlayer = "${XLAYER_RPC_URL}"
`

func writeProject(t *testing.T, withScript bool) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte(testFoundryToml), 0755)
	assert.NoError(t, err)
	if withScript {
		err := os.MkdirAll(filepath.Join(dir, "script"), 0755)
		assert.NoError(t, err)
		err = os.WriteFile(filepath.Join(dir, "script", "Deploy.s.sol"), []byte("// solidity"), 0755)
		assert.NoError(t, err)
	}
	return dir
}

func TestDetect(t *testing.T) {
	t.Run("with foundry.toml", func(t *testing.T) {
		dir := writeProject(t, false)
		detected, err := Detect(dir)
		assert.NoError(t, err)
		assert.True(t, detected)
	})

	t.Run("without foundry.toml", func(t *testing.T) {
		detected, err := Detect(t.TempDir())
		assert.NoError(t, err)
		assert.False(t, detected)
	})
}

func TestCheckProject(t *testing.T) {
	t.Run("complete project", func(t *testing.T) {
		dir := writeProject(t, true)
		assert.NoError(t, CheckProject(dir))
	})

	t.Run("missing foundry.toml", func(t *testing.T) {
		err := CheckProject(t.TempDir())
		assert.Regexp(t, "no Foundry project detected", err)
	})

	t.Run("missing deploy script", func(t *testing.T) {
		dir := writeProject(t, false)
		err := CheckProject(dir)
		assert.Regexp(t, "Deploy.s.sol' not found", err)
	})
}

func TestLoadConfig(t *testing.T) {
	dir := writeProject(t, false)
	config, err := LoadConfig(dir)
	assert.NoError(t, err)
	assert.Equal(t, "src", config.Profile["default"].Src)
	assert.True(t, config.HasRPCEndpoint("sepolia"))
	assert.True(t, config.HasRPCEndpoint("xlayer"))
	assert.False(t, config.HasRPCEndpoint("base_sepolia"))
}

func TestLoadConfigBadTOML(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte("[rpc_endpoints\n"), 0755)
	assert.NoError(t, err)
	_, err = LoadConfig(dir)
	assert.Regexp(t, "parsing foundry.toml", err)
}
