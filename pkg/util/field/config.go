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
package field

// RATIONAL is the field of rational numbers, and the default for all
// computations.  Coefficients are exact and unbounded.
var RATIONAL = Config{"RATIONAL", "0"}

// GF_8209 is small prime field used mostly for testing.
var GF_8209 = Config{"GF_8209", "8209"}

// KOALABEAR corresponds to the KoalaBear prime field (2³¹ - 2²⁴ + 1).
var KOALABEAR = Config{"KOALABEAR", "2130706433"}

// BLS12_377 is the scalar field of the BLS12-377 curve.
var BLS12_377 = Config{"BLS12_377",
	"8444461749428370424248824938781546531375899335154063827935233455917409239041"}

// FIELD_CONFIGS determines the set of supported fields.
var FIELD_CONFIGS = []Config{
	RATIONAL,
	GF_8209,
	KOALABEAR,
	BLS12_377,
}

// Config identifies a coefficient field which polynomial computations can be
// carried out over.
type Config struct {
	// Name suitable for identifying the config.  This is used for selecting a
	// field from the command line and for improving error reporting, etc.
	Name string
	// Characteristic of the field in decimal.
	Characteristic string
}

// GetConfig returns the field configuration corresponding with the given
// name, or nil no such config exists.
func GetConfig(name string) *Config {
	for i := range FIELD_CONFIGS {
		if FIELD_CONFIGS[i].Name == name {
			return &FIELD_CONFIGS[i]
		}
	}
	//
	return nil
}

// Names returns the names of all supported fields, in the order they are
// declared.
func Names() []string {
	names := make([]string, len(FIELD_CONFIGS))
	//
	for i, c := range FIELD_CONFIGS {
		names[i] = c.Name
	}
	//
	return names
}
