// LKit -- a simple, embeddable expression language
// Copyright (C) 2012+ the LKit project contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package cli handles all of the core command line parsing. It's the thin
// driver around the parser package: a one-shot eval command, and a
// watch-and-re-evaluate run command.
package cli

import (
	"fmt"
	"os"

	"github.com/drbobbeaty/LKit/util/errwrap"

	"github.com/alexflint/go-arg"
)

// Data is some data that is passed into the Args compiled structure.
type Data struct {
	// Program is the name of this program.
	Program string

	// Version is the version of this program.
	Version string

	// Args is the CLI args that we passed in. It includes the program name.
	Args []string
}

// Args is the CLI parsing structure and type for the parsed result.
type Args struct {
	EvalCmd *EvalArgs `arg:"subcommand:eval" help:"compile an expression and print its value"`
	RunCmd  *RunArgs  `arg:"subcommand:run" help:"watch a source file and re-evaluate it"`

	Debug bool `arg:"--debug" help:"enable debug logging"`

	version string // private copy of the version string
}

// Version returns the version string. Implementing this signature is part of
// the API for the cli library.
func (obj *Args) Version() string {
	return obj.version
}

// CLI is the entry point for using lkit normally from the CLI.
func CLI(data *Data) error {
	// test for sanity
	if data == nil {
		return fmt.Errorf("this CLI was not run correctly")
	}
	if data.Program == "" || data.Version == "" {
		return fmt.Errorf("program was not compiled correctly")
	}

	args := Args{}
	args.version = data.Version // copy this in

	config := arg.Config{
		Program: data.Program,
	}
	parser, err := arg.NewParser(config, &args)
	if err != nil {
		// programming error
		return errwrap.Wrapf(err, "cli config error")
	}
	err = parser.Parse(data.Args[1:]) // drop the program name
	if err == arg.ErrHelp {
		parser.WriteHelp(os.Stdout)
		return nil
	}
	if err == arg.ErrVersion {
		fmt.Printf("%s\n", data.Version)
		return nil
	}
	if err != nil {
		return errwrap.Wrapf(err, "cli parse error")
	}

	switch {
	case args.EvalCmd != nil:
		return args.EvalCmd.Run(&args, data)

	case args.RunCmd != nil:
		return args.RunCmd.Run(&args, data)
	}

	parser.WriteHelp(os.Stdout) // no subcommand given
	return nil
}
