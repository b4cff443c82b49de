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

package log

import (
	"fmt"
	"os"
)

// StdoutLogger prints to stdout, with warnings and errors highlighted
// when Fancy is set (errors go to stderr either way).
type StdoutLogger struct {
	LogLevel LogLevel
	Fancy    bool
}

func (l *StdoutLogger) SetLogLevel(level LogLevel) {
	l.LogLevel = level
}

func (l *StdoutLogger) Trace(s string) {
	if l.LogLevel <= Trace {
		fmt.Println(s)
	}
}

func (l *StdoutLogger) Debug(s string) {
	if l.LogLevel <= Debug {
		fmt.Println(s)
	}
}

func (l *StdoutLogger) Info(s string) {
	if l.LogLevel <= Info {
		fmt.Println(s)
	}
}

func (l *StdoutLogger) Warn(s string) {
	if l.LogLevel <= Warn {
		if l.Fancy {
			fmt.Printf("\u001b[33mWARNING: %s\u001b[0m\n", s)
		} else {
			fmt.Printf("WARNING: %s\n", s)
		}
	}
}

func (l *StdoutLogger) Error(e error) {
	if l.LogLevel <= Error {
		if l.Fancy {
			fmt.Fprintf(os.Stderr, "\u001b[31mError: %s\u001b[0m\n", e.Error())
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", e.Error())
		}
	}
}
