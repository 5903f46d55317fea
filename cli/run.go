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
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/drbobbeaty/LKit/lang/parser"
	"github.com/drbobbeaty/LKit/util/errwrap"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// RunArgs is the CLI parsing structure and type of the parsed result. This
// particular one contains all the settings for the long-running command that
// watches a source file, recompiles it when it changes, and keeps
// re-evaluating the compiled tree.
type RunArgs struct {
	File     string `arg:"positional,required" help:"source file to watch"`
	Vars     string `arg:"--vars" help:"yaml file of variable bindings"`
	Interval uint   `arg:"--interval" help:"also re-evaluate every this many seconds"`
}

// Run executes the run command. It blocks until interrupted.
func (obj *RunArgs) Run(args *Args, data *Data) error {
	fs := afero.Afero{Fs: afero.NewOsFs()}

	p := parser.New()
	p.Debug = args.Debug
	p.Logf = func(format string, v ...interface{}) {
		log.Printf(data.Program+": "+format, v...)
	}
	if obj.Vars != "" {
		if err := loadVars(fs, obj.Vars, p); err != nil {
			return err
		}
	}

	reload := func() error {
		b, err := fs.ReadFile(obj.File)
		if err != nil {
			return errwrap.Wrapf(err, "could not read source file `%s`", obj.File)
		}
		p.SetSource(string(b))
		return nil
	}
	evaluate := func() {
		result, err := p.Evaluate()
		if err != nil {
			log.Printf("%s: error: %v", data.Program, err)
			return
		}
		fmt.Printf("%s\n", result.String())
	}

	if err := reload(); err != nil {
		return err
	}
	evaluate()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errwrap.Wrapf(err, "could not start the file watcher")
	}
	defer watcher.Close()
	if err := watcher.Add(obj.File); err != nil {
		return errwrap.Wrapf(err, "could not watch `%s`", obj.File)
	}

	var tick <-chan time.Time
	if obj.Interval > 0 {
		ticker := time.NewTicker(time.Duration(obj.Interval) * time.Second)
		defer ticker.Stop()
		tick = ticker.C
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if args.Debug {
				log.Printf("%s: source changed: %s", data.Program, event)
			}
			if err := reload(); err != nil {
				log.Printf("%s: error: %v", data.Program, err)
				continue
			}
			evaluate()

		case <-tick:
			evaluate()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("%s: watch error: %v", data.Program, err)

		case <-sig:
			log.Printf("%s: interrupted, exiting", data.Program)
			return nil
		}
	}
}
