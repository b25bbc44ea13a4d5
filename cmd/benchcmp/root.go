// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "benchcmp",
		Short: "Compare micro-benchmark reports",
		Long: `Benchcmp parses textual micro-benchmark reports, joins benchmarks
that occur in two sources under the same name, and renders the
comparison as a table or as per-benchmark bar charts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cobra.OnInitialize(initConfig)

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .benchcmp.yaml in the working directory)")

	cmd.AddCommand(newTableCmd())
	cmd.AddCommand(newPlotCmd())
	return cmd
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".benchcmp")
	}

	viper.SetEnvPrefix("BENCHCMP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	// A missing config file is not an error.
	_ = viper.ReadInConfig()
}
