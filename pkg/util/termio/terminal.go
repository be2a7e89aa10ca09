// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package termio

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal determines whether a given writer is attached to a terminal, in
// which case ANSI escapes can be used.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	//
	return ok && term.IsTerminal(int(f.Fd()))
}

// Width returns the width of the terminal a given writer is attached to, or
// false if it is not attached to a terminal.
func Width(w io.Writer) (uint, bool) {
	if !IsTerminal(w) {
		return 0, false
	}
	//
	width, _, err := term.GetSize(int(w.(*os.File).Fd()))
	//
	if err != nil || width <= 0 {
		return 0, false
	}
	//
	return uint(width), true
}
