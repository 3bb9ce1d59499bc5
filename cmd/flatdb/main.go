// Copyright 2021 hardcore-os Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License")
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// flatdb 是定长记录文件库的命令行入口:
//
//	flatdb [flags] <dbfile> <action> [action params]
//
// 每次调用打开一次文件, 执行一个动作, 修改类动作执行后整表写回.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hardcore-os/flatdb"
	"github.com/hardcore-os/flatdb/utils"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

const usage = "Usage: flatdb [flags] <dbfile> <action> [action params]"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var verbose, noSync bool

	flagSet := pflag.NewFlagSet("flatdb", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.SetInterspersed(false)
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log database lifecycle events to stderr")
	flagSet.BoolVar(&noSync, "no-sync", false, "skip fdatasync after writing the table")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printHelp(stdout, flagSet)
			return 0
		}
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return 1
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stdout, flagSet)
		return 0
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if err := execute(flagSet.Args(), stdin, stdout, logger, !noSync); err != nil {
		if verbose {
			utils.Err(stderr, err)
		}
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return 1
	}
	return 0
}

func execute(args []string, stdin io.Reader, stdout io.Writer, logger *slog.Logger, syncWrites bool) error {
	if len(args) < 2 {
		return errors.New(usage)
	}
	path, action := args[0], args[1]
	if action == "" {
		return errors.New(usage)
	}

	var cmd *command
	if action[0] != actionBatch {
		var err error
		if cmd, err = parseCommand(args[1:]); err != nil {
			return err
		}
	}

	opt := flatdb.NewDefaultOptions(path)
	opt.Mode = flatdb.ParseMode(action[0])
	opt.SyncWrites = syncWrites
	opt.Logger = logger

	db, err := flatdb.Open(opt)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if cmd == nil {
		return runBatch(db, stdin, stdout)
	}
	if cmd.action == actionCreate {
		if err := db.Create(); err != nil {
			return err
		}
		return db.Write()
	}
	mutated, err := cmd.apply(db, stdout)
	if err != nil {
		return err
	}
	if mutated {
		return db.Write()
	}
	return nil
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintln(w, usage)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Actions:")
	fmt.Fprintln(w, "  c                   create an empty database")
	fmt.Fprintln(w, "  g <id>              print one record")
	fmt.Fprintln(w, "  s <id> <name> <email>  set a record")
	fmt.Fprintln(w, "  d <id>              delete a record")
	fmt.Fprintln(w, "  l                   list all records")
	fmt.Fprintln(w, "  i                   print table stats")
	fmt.Fprintln(w, "  b                   read actions from stdin, one per line")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}
