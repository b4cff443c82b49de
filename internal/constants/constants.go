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

package constants

import (
	"os"
	"path/filepath"
)

var homeDir, _ = os.UserHomeDir()
var DeploymentsDir = filepath.Join(homeDir, ".treg", "deployments")

// The deploy script every target Foundry project is expected to carry.
var DeployScriptFile = filepath.Join("script", "Deploy.s.sol")
var DeployScriptTarget = "script/Deploy.s.sol:Deploy"

// BroadcastScriptDir is the per-script directory name forge uses under
// broadcast/ when writing run records.
var BroadcastScriptDir = "Deploy.s.sol"

var DefaultEnvFile = ".env"
