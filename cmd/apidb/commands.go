// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fillmore-labs.com/apiguard/internal/axis"
	"fillmore-labs.com/apiguard/internal/config"
	"fillmore-labs.com/apiguard/internal/requirement"
)

// ErrNotImplied is returned by the implies command when the implication does not hold.
var ErrNotImplied = errors.New("constraint not implied")

type rootOptions struct {
	logger  *zap.Logger
	verbose bool
	config  string
}

func newRootCmd(logger *zap.Logger) *cobra.Command {
	o := &rootOptions{logger: logger}

	cmd := &cobra.Command{
		Use:          "apidb",
		Short:        "Inspect apiguard platform descriptions",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if !o.verbose {
				o.logger = o.logger.WithOptions(zap.IncreaseLevel(zapcore.WarnLevel))
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&o.verbose, "verbose", "v", false, "enable verbose logging")

	cmd.AddCommand(
		newValidateCmd(o),
		newLookupCmd(o),
		newImpliesCmd(o),
	)

	return cmd
}

func newValidateCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Load platform descriptions and report their contents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed int

			for _, path := range args {
				p, err := config.Load(path, o.logger)
				if err != nil {
					o.logger.Error("Invalid platform description", zap.String("file", path), zap.Error(err))
					failed++

					continue
				}

				summarize(cmd.OutOrStdout(), path, p)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files %w", failed, len(args), config.ErrInvalid)
			}

			return nil
		},
	}
}

func summarize(w io.Writer, path string, p *config.Platform) {
	var unresolved int

	for _, e := range p.Symbols {
		if e.Err != nil {
			unresolved++
		}
	}

	fmt.Fprintf(w, "%s: baseline %s, %d symbols (%d unresolved), %d predicates, %d version expressions\n",
		path, p.Axes.Format(p.Baseline), len(p.Symbols), unresolved, len(p.Predicates), len(p.Versions))
}

func newLookupCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <file> <symbol>...",
		Short: "Resolve the requirements of symbols",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.Load(args[0], o.logger)
			if err != nil {
				return err
			}

			resolver := requirement.NewResolver(p.Symbols,
				requirement.WithDesugaring(p.Desugared...),
				requirement.WithLogger(o.logger),
			)

			w := cmd.OutOrStdout()

			for _, key := range args[1:] {
				sym := requirement.Symbol{Key: key, Owner: ownerOf(key), Category: p.Categories[key]}
				req := resolver.RequirementOf(sym)

				if !req.Resolved {
					fmt.Fprintf(w, "%s: unresolved: %s\n", key, req.Note)

					continue
				}

				fmt.Fprintf(w, "%s: %s", key, p.Axes.Format(req.Constraint))

				if len(req.Sources) > 0 && !slices.Equal(req.Sources, []string{key}) {
					fmt.Fprintf(w, " (from %s)", strings.Join(req.Sources, ", "))
				}

				if req.Note != "" {
					fmt.Fprintf(w, " (%s)", req.Note)
				}

				fmt.Fprintln(w)
			}

			return nil
		},
	}
}

// ownerOf returns the owner key of a "(path.Type).Member" key.
func ownerOf(key string) string {
	if !strings.HasPrefix(key, "(") {
		return ""
	}

	owner, _, ok := strings.Cut(key[1:], ")")
	if !ok {
		return ""
	}

	return owner
}

func newImpliesCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "implies <given> <required>",
		Short: "Test whether one constraint implies another",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			axes := axis.Default()

			if o.config != "" {
				p, err := config.Load(o.config, o.logger)
				if err != nil {
					return err
				}

				axes = p.Axes
			}

			given, err := axes.Parse(args[0])
			if err != nil {
				return fmt.Errorf("given: %w", err)
			}

			required, err := axes.Parse(args[1])
			if err != nil {
				return fmt.Errorf("required: %w", err)
			}

			w := cmd.OutOrStdout()

			if !given.Implies(required) {
				fmt.Fprintf(w, "%s does not imply %s\n", axes.Format(given), axes.Format(required))

				return ErrNotImplied
			}

			fmt.Fprintf(w, "%s implies %s\n", axes.Format(given), axes.Format(required))

			return nil
		},
	}

	cmd.Flags().StringVarP(&o.config, "config", "c", "", "platform description defining the axes")

	return cmd
}

