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
package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/consensys/go-groebner/pkg/ideal"
	"github.com/consensys/go-groebner/pkg/poly"
	"github.com/consensys/go-groebner/pkg/poly/parse"
	"github.com/consensys/go-groebner/pkg/util/field"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ENV_PREFIX is the prefix for environment variables which override
// configuration settings (e.g. GROEBNER_FIELD).
const ENV_PREFIX = "GROEBNER"

// Config holds the settings shared by all commands.  These come from command
// line flags, environment variables or a YAML configuration file (in that
// order of precedence).
type Config struct {
	// Field is the name of the coefficient field.
	Field string `mapstructure:"field" validate:"required,field"`
	// Vars fixes the indeterminates (in decreasing order of significance).
	// When empty, indeterminates are ordered by first appearance.
	Vars []string `mapstructure:"vars" validate:"dive,variable"`
	// Order names the monomial ordering.
	Order string `mapstructure:"order" validate:"required,oneof=lex grlex grevlex"`
	// MaxRounds bounds the number of Buchberger rounds (0 for no limit).
	MaxRounds uint `mapstructure:"max_rounds"`
	// MaxBasisSize bounds the size of the basis (0 for no limit).
	MaxBasisSize uint `mapstructure:"max_basis_size"`
	// Timeout bounds the time spent computing a basis (0 for no limit).
	Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`
	// Verbose enables debug logging.
	Verbose bool `mapstructure:"verbose"`
}

// Maps configuration keys to the flags which set them.
var configFlags = map[string]string{
	"field":          "field",
	"vars":           "vars",
	"order":          "order",
	"max_rounds":     "max-rounds",
	"max_basis_size": "max-basis-size",
	"timeout":        "timeout",
	"verbose":        "verbose",
}

// LoadConfig loads the configuration for a command from its flags, the
// environment and (if the "config" flag is given) a configuration file.
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	var (
		v   = viper.New()
		cfg Config
	)
	//
	v.SetConfigType("yaml")
	//
	if path, err := flags.GetString("config"); err == nil && path != "" {
		v.SetConfigFile(path)
		//
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read configuration file: %w", err)
		}
	}
	// Configure environment variables
	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	//
	for key, name := range configFlags {
		if flag := flags.Lookup(name); flag == nil {
			return nil, fmt.Errorf("missing flag %s", name)
		} else if err := v.BindPFlag(key, flag); err != nil {
			return nil, fmt.Errorf("error binding flag %s: %w", name, err)
		}
	}
	// Unmarshal and validate
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	} else if err := newValidator().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	//
	return &cfg, nil
}

// Ordering returns the configured monomial ordering, or an error if it is not
// supported.
func (c *Config) Ordering() (poly.Ordering, error) {
	return poly.GetOrdering(c.Order)
}

// Variables returns the configured indeterminates, in canonical form.
func (c *Config) Variables() poly.Variables {
	var vars poly.Variables
	//
	for _, name := range c.Vars {
		// Validation ensures names are valid
		canonical, _ := parse.CanonicalVariable(name)
		vars.Add(canonical)
	}
	//
	return vars
}

// Options returns the budget for computing a basis.
func (c *Config) Options() []ideal.Option {
	return []ideal.Option{ideal.WithMaxRounds(c.MaxRounds), ideal.WithMaxBasisSize(c.MaxBasisSize)}
}

// Context returns a context which expires after the configured timeout (if
// any).  A nil parent is treated as the background context.
func (c *Config) Context(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	//
	if c.Timeout == 0 {
		return context.WithCancel(parent)
	}
	//
	return context.WithTimeout(parent, c.Timeout)
}

func newValidator() *validator.Validate {
	validate := validator.New()
	// Neither registration can fail, since both tags are well formed.
	_ = validate.RegisterValidation("field", func(fl validator.FieldLevel) bool {
		return field.GetConfig(fl.Field().String()) != nil
	})
	_ = validate.RegisterValidation("variable", func(fl validator.FieldLevel) bool {
		_, ok := parse.CanonicalVariable(fl.Field().String())
		return ok
	})
	//
	return validate
}
