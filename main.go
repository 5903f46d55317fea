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

package main

import (
	"fmt"
	"os"

	"github.com/drbobbeaty/LKit/cli"
)

// set at compile time
var (
	program = "lkit"
	version = "0.0.1"
)

func main() {
	data := &cli.Data{
		Program: program,
		Version: version,
		Args:    os.Args,
	}
	if err := cli.CLI(data); err != nil {
		fmt.Println(err)
		os.Exit(1)
		return
	}
}
