/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"dirpx.dev/derrfmt"
	"dirpx.dev/derrfmt/mask"
	"dirpx.dev/derrfmt/slogx"
)

const (
	envPrefix = "DERRFMT"

	flagRules   = "rules"
	flagVerbose = "verbose"
	flagConfig  = "config"

	// maxLine bounds a single input line.
	maxLine = 1 << 20
)

// app is the state shared by the subcommands, built in PersistentPreRunE.
type app struct {
	v      *viper.Viper
	log    *slog.Logger
	masker *mask.Masker
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:           "derrfmt",
		Short:         "Mask and group volatile values in error logs",
		SilenceUsage:  true,  // Don't print usage on error
		SilenceErrors: false, // Do print errors
		Long: `derrfmt rewrites UUIDs, byte counts, ISO-8601 timestamps and memory
addresses into fixed placeholders so that log lines describing the same
failure become identical.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.String(flagRules, "", "YAML file with additional mask rules (env "+envPrefix+"_RULES)")
	pf.BoolP(flagVerbose, "v", false, "log debug information to stderr")
	pf.String(flagConfig, "", "optional config file")
	bindFlags(a.v, pf, flagRules, flagVerbose)

	a.v.SetEnvPrefix(envPrefix)
	a.v.AutomaticEnv()

	root.AddCommand(newMaskCmd(a), newGroupCmd(a))
	return root
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet, names ...string) {
	for _, name := range names {
		// Bind flags to viper
		_ = v.BindPFlag(name, fs.Lookup(name))
	}
}

// setup reads the configuration and builds the logger and masker.
func (a *app) setup(cmd *cobra.Command) error {
	if path, _ := cmd.Flags().GetString(flagConfig); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	level := slog.LevelWarn
	if a.v.GetBool(flagVerbose) {
		level = slog.LevelDebug
	}
	a.log = slog.New(slogx.NewHandler(
		slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}),
	))

	a.masker = mask.Default()
	path := a.v.GetString(flagRules)
	if path == "" {
		return nil
	}
	rules, err := mask.LoadFile(path)
	if err != nil {
		a.log.Debug("load mask rules", slogx.Err(derrfmt.Wrap(err)))
		return err
	}
	for _, r := range rules {
		if !r.Valid() {
			a.log.Warn("mask rule does not compile and is ignored", "rule", r.Name, "pattern", r.Pattern)
		}
	}
	a.masker = a.masker.With(rules...)
	a.log.Debug("mask rules loaded", "file", path, "count", len(rules))
	return nil
}

// eachLine calls fn for every line of the named files, or of stdin when no
// file (or "-") is given.
func (a *app) eachLine(cmd *cobra.Command, files []string, fn func(string)) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, name := range files {
		if name == "-" {
			if err := scan(cmd.InOrStdin(), fn); err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			continue
		}
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		err = scan(f, fn)
		_ = f.Close()
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		a.log.Debug("input read", "file", name)
	}
	return nil
}

func scan(r io.Reader, fn func(string)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for sc.Scan() {
		fn(sc.Text())
	}
	return sc.Err()
}
