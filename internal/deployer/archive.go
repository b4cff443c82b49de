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
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/otiai10/copy"

	"github.com/trustless-agents/registry-cli/internal/broadcast"
	"github.com/trustless-agents/registry-cli/internal/constants"
	"github.com/trustless-agents/registry-cli/pkg/types"
)

// Colons are avoided so archive names stay portable across filesystems.
const archiveTimeFormat = "2006-01-02T15-04-05Z"

// ArchiveDeployment snapshots the chain's broadcast directory into the
// deployments archive. forge overwrites run-latest.json on every run,
// so without a snapshot a later deploy erases the record of this one.
func (d *Deployer) ArchiveDeployment(network types.Network, chainID int64) (string, error) {
	sourceDir := filepath.Join(d.ProjectDir, "broadcast", constants.BroadcastScriptDir, strconv.FormatInt(chainID, 10))
	if _, err := os.Stat(sourceDir); err != nil {
		return "", err
	}
	archiveDir := filepath.Join(d.ArchiveRoot, network.String(), time.Now().UTC().Format(archiveTimeFormat))
	if err := copy.Copy(sourceDir, archiveDir); err != nil {
		return "", err
	}
	return archiveDir, nil
}

// ArchivedDeployment is one snapshot in the archive listing.
type ArchivedDeployment struct {
	Network   string                   `json:"network" yaml:"network"`
	Timestamp string                   `json:"timestamp" yaml:"timestamp"`
	Path      string                   `json:"path" yaml:"path"`
	Addresses *types.RegistryAddresses `json:"addresses,omitempty" yaml:"addresses,omitempty"`
}

// ListDeployments walks the archive and parses the registry addresses
// out of each snapshot. Snapshots whose records no longer parse are
// listed without addresses rather than dropped. networkFilter narrows
// the listing to one network when non-empty.
func ListDeployments(archiveRoot, networkFilter string) ([]*ArchivedDeployment, error) {
	networkDirs, err := os.ReadDir(archiveRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return []*ArchivedDeployment{}, nil
		}
		return nil, err
	}

	deployments := make([]*ArchivedDeployment, 0)
	for _, networkDir := range networkDirs {
		if !networkDir.IsDir() {
			continue
		}
		if networkFilter != "" && networkDir.Name() != networkFilter {
			continue
		}
		snapshots, err := os.ReadDir(filepath.Join(archiveRoot, networkDir.Name()))
		if err != nil {
			return nil, err
		}
		for _, snapshot := range snapshots {
			if !snapshot.IsDir() {
				continue
			}
			deployment := &ArchivedDeployment{
				Network:   networkDir.Name(),
				Timestamp: snapshot.Name(),
				Path:      filepath.Join(archiveRoot, networkDir.Name(), snapshot.Name()),
			}
			if record, err := broadcast.LoadRecord(filepath.Join(deployment.Path, "run-latest.json")); err == nil {
				if addresses, err := record.RegistryAddresses(); err == nil {
					deployment.Addresses = addresses
				}
			}
			deployments = append(deployments, deployment)
		}
	}
	return deployments, nil
}
