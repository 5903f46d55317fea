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

	"github.com/drbobbeaty/LKit/lang/parser"
	"github.com/drbobbeaty/LKit/lang/types"
	"github.com/drbobbeaty/LKit/util/errwrap"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

// loadVars reads a yaml file of name: value pairs and adds each one to the
// parser as a variable. The yaml scalar types map onto the language's: a
// yaml bool, int, and float map directly, and a string is parsed as one of
// the timestamp forms.
func loadVars(fs afero.Afero, path string, p *parser.Parser) error {
	data, err := fs.ReadFile(path)
	if err != nil {
		return errwrap.Wrapf(err, "could not read vars file `%s`", path)
	}
	bindings := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &bindings); err != nil {
		return errwrap.Wrapf(err, "could not parse vars file `%s`", path)
	}

	for name, x := range bindings {
		var v *types.Value
		switch val := x.(type) {
		case bool:
			v = types.NewBool(val)
		case int:
			v = types.NewInt(int32(val))
		case float64:
			v = types.NewFloat(val)
		case string:
			stamp, err := types.ParseTimestamp(val)
			if err != nil {
				return errwrap.Wrapf(err, "variable `%s`", name)
			}
			v = types.NewTime(stamp)
		default:
			return fmt.Errorf("variable `%s` has unsupported type %T", name, x)
		}
		p.AddVariable(name, v)
	}
	return nil
}
