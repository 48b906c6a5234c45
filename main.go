// © 2024 Thriftlab
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"gopkg.thriftlab.org/thriftc/internal/compiler"
	"gopkg.thriftlab.org/thriftc/internal/fs"
	"gopkg.thriftlab.org/thriftc/internal/idl"
)

type opts struct {
	Roots   []string
	DumpAST bool
	Verbose bool
	Debug   bool
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	op := &opts{}
	flags := pflag.NewFlagSet("thriftc", pflag.PanicOnError)
	flags.StringSliceVar(&op.Roots, "root", []string{"."}, "Root search paths for thrift files.")
	flags.BoolVar(&op.DumpAST, "dump-ast", false, "Output the parsed AST as JSON")
	flags.BoolVar(&op.Verbose, "verbose", false, "Enable info logging")
	flags.BoolVar(&op.Debug, "debug", false, "Enable debug logging")
	_ = flags.Parse(os.Args[1:])
	targets := flags.Args()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	if op.Verbose {
		logger.SetLevel(logrus.InfoLevel)
	}
	if op.Debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	defaultFS, err := compiler.NewDefaultFS(os.LookupEnv)
	if err != nil {
		logger.Fatal(err)
	}
	mf := make(fs.FileSystemMulti, 0, len(op.Roots)+1)
	for _, root := range op.Roots {
		absRoot, errAbs := filepath.Abs(root)
		if errAbs != nil {
			logger.Fatal(errAbs)
		}
		rf, err := fs.NewFileSystemLocal(absRoot)
		if err != nil {
			logger.Fatal(err)
		}
		mf = append(mf, rf)
	}
	mf = append(mf, defaultFS)

	c, err := compiler.New(
		compiler.OptionWithLookupEnv(os.LookupEnv),
		compiler.OptionWithFS(mf),
		compiler.OptionWithLogger(logger),
	)
	if err != nil {
		logger.Fatal(err)
	}

	out, err := c.Compile(ctx, &idl.CompileRequest{
		Files:    targets,
		DumpTree: op.DumpAST,
	})
	if err != nil {
		var me compiler.MultiException
		if errors.As(err, &me) {
			for _, err := range me {
				fmt.Fprintln(os.Stderr, err.Error())
			}
			os.Exit(1)
		}
		logger.Fatal(err)
	}

	logger.WithField("modules", len(out.Image.Modules)).Info("compiled")
}
