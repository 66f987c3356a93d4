// seehuhn.de/go/brush - pressure-sensitive stroke stamping
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package testcases

// All contains every scenario, grouped by category.
var All = map[string][]Scenario{
	"tap":      tapCases,
	"line":     lineCases,
	"curve":    curveCases,
	"dynamics": dynamicsCases,
	"blend":    blendCases,
	"texture":  textureCases,
	"ctm":      ctmCases,
}

// Find returns the scenario with the given name. Names may be given
// with or without the "category_" prefix.
func Find(name string) (Scenario, bool) {
	for category, cases := range All {
		for _, sc := range cases {
			if sc.Name == name || category+"_"+sc.Name == name {
				return sc, true
			}
		}
	}
	return Scenario{}, false
}
