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

package cli

import (
	"fmt"
	"log"

	"github.com/drbobbeaty/LKit/lang/parser"
	"github.com/drbobbeaty/LKit/util/errwrap"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/afero"
)

// EvalArgs is the CLI parsing structure and type of the parsed result. This
// particular one contains all the settings for the one-shot eval command.
type EvalArgs struct {
	Expr string `arg:"positional" help:"expression source text"`
	File string `arg:"-f,--file" help:"read the source from this file instead"`
	Vars string `arg:"--vars" help:"yaml file of variable bindings"`
}

// Run executes the eval command: compile once, evaluate once, print the
// result.
func (obj *EvalArgs) Run(args *Args, data *Data) error {
	src := obj.Expr
	fs := afero.Afero{Fs: afero.NewOsFs()}
	if obj.File != "" {
		b, err := fs.ReadFile(obj.File)
		if err != nil {
			return errwrap.Wrapf(err, "could not read source file `%s`", obj.File)
		}
		src = string(b)
	}
	if src == "" {
		return fmt.Errorf("no expression given, use an argument or --file")
	}

	p := parser.NewWithSource(src)
	p.Debug = args.Debug
	p.Logf = func(format string, v ...interface{}) {
		log.Printf(data.Program+": "+format, v...)
	}
	if obj.Vars != "" {
		if err := loadVars(fs, obj.Vars, p); err != nil {
			return err
		}
	}

	result, err := p.Evaluate()
	if err != nil {
		return errwrap.Wrapf(err, "could not evaluate")
	}
	if args.Debug {
		log.Printf("%s: variables: %s", data.Program, spew.Sdump(p.Variables()))
	}
	fmt.Printf("%s\n", result.String())
	return nil
}
