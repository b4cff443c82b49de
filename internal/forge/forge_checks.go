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

package forge

import (
	"fmt"
	"os/exec"
)

// CheckForgeInstalled probes for a working forge binary before any
// deployment is attempted.
func CheckForgeInstalled() error {
	forgeCmd := exec.Command("forge", "--version")
	_, err := forgeCmd.Output()
	if err != nil {
		return fmt.Errorf("an error occurred while running forge. Is Foundry installed on your computer? See https://getfoundry.sh")
	}
	return nil
}
