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

package cmd

import (
	"fmt"
	"os"

	isatty "github.com/mattn/go-isatty"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/trustless-agents/registry-cli/internal/log"
)

var envFile string
var verbose bool
var fancyFeatures bool
var ansiOutput string

var logger log.Logger = &log.StdoutLogger{
	LogLevel: log.Debug,
}

func GetRegistryAsciiArt() string {
	s := ""
	s += "\u001b[33m   __                 \u001b[0m\n"    // yellow
	s += "\u001b[33m  / /_________  ____ _\u001b[0m\n"    // yellow
	s += "\u001b[31m / __/ ___/ _ \\/ __ `/\u001b[0m\n"   // red
	s += "\u001b[31m/ /_/ /  /  __/ /_/ / \u001b[0m\n"    // red
	s += "\u001b[35m\\__/_/   \\___/\\__, /  \u001b[0m\n" // magenta
	s += "\u001b[35m             /____/   \u001b[0m\n"    // magenta

	return s
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "treg",
	Short: "treg is a developer tool that deploys the ERC-8004 trustless-agent registries",
	Long: GetRegistryAsciiArt() + `
treg is a developer tool that deploys the ERC-8004 trustless-agent
registries (IdentityRegistry, ReputationRegistry, ValidationRegistry)
to a fixed set of EVM networks.

It wraps the Foundry toolchain: forge does all the chain work, and treg
routes it to the right network, checks credentials up front, and keeps
a record of every deployment.

To get started run: treg networks
	`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		switch ansiOutput {
		case "always":
			fancyFeatures = true
		case "never":
			fancyFeatures = false
		default:
			fancyFeatures = isatty.IsTerminal(os.Stdout.Fd())
		}
		if stdoutLogger, ok := logger.(*log.StdoutLogger); ok {
			stdoutLogger.Fancy = fancyFeatures
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&envFile, "env-file", "e", ".env", "env file holding deployment credentials")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "stream forge output instead of buffering it")
	rootCmd.PersistentFlags().StringVar(&ansiOutput, "ansi", "auto", "control when to print ANSI control characters (\"always\"|\"never\"|\"auto\")")
}

// initConfig reads in the optional home config file and ENV variables.
func initConfig() {
	// Find home directory.
	home, err := homedir.Dir()
	cobra.CheckErr(err)

	// Search config in home directory with name ".registry-cli" (without extension).
	viper.AddConfigPath(home)
	viper.SetConfigName(".registry-cli")

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
