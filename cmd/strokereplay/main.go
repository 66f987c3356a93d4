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

// Command strokereplay renders recorded strokes to PNG files.
//
// A stroke is taken either from the built-in scenarios (--scenario) or
// from a JSON file written by testcases/export (--events). The brush can
// be replaced by a preset from a TOML file (--preset, --brush).
package main

import (
	"fmt"
	"image/png"
	"log/slog"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"seehuhn.de/go/brush"
	"seehuhn.de/go/brush/preset"
	"seehuhn.de/go/brush/testcases"
)

var (
	presetFile   string
	brushName    string
	scenarioName string
	eventsFile   string
	outFile      string
	scale        int
	drawSpine    bool
	verbose      bool
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Log every stroke")
	rootCmd.PersistentFlags().StringVar(&presetFile, "preset", "", "Brush preset file (default is the built-in presets)")

	rootCmd.Flags().StringVar(&brushName, "brush", "", "Replace the recorded brush by this preset")
	rootCmd.Flags().StringVar(&scenarioName, "scenario", "line_straight", "Scenario to replay")
	rootCmd.Flags().StringVar(&eventsFile, "events", "", "Read scenarios from this JSON file instead of the built-in ones")
	rootCmd.Flags().StringVar(&outFile, "out", "", "Output PNG file (default is <scenario>.png)")
	rootCmd.Flags().IntVar(&scale, "scale", 1, "Supersampling factor")
	rootCmd.Flags().BoolVar(&drawSpine, "spine", false, "Draw the smoothed curve on top of the stroke")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(presetsCmd)
}

var rootCmd = &cobra.Command{
	Use:   "strokereplay",
	Short: "Render a recorded stroke to a PNG file",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		brush.SetLogger(logger)
	},
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScenario()
		if err != nil {
			return err
		}
		if brushName != "" {
			presets, err := loadPresets()
			if err != nil {
				return err
			}
			p, err := preset.Find(presets, brushName)
			if err != nil {
				return err
			}
			sc.Params, err = p.Params()
			if err != nil {
				return err
			}
			sc.Renderer = p.Renderer
		}

		res, err := render(sc, scale, drawSpine)
		if err != nil {
			return err
		}

		name := outFile
		if name == "" {
			name = sc.Name + ".png"
		}
		if err := writePNG(name, res); err != nil {
			return err
		}
		logger.Info("stroke rendered",
			"scenario", sc.Name, "file", name,
			"stamps", res.stamps, "length", res.length,
			"dirty", res.dirty.Pixels())
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in scenarios and the available brushes",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
			for _, sc := range testcases.All[category] {
				fmt.Printf("scenario  %s_%s\n", category, sc.Name)
			}
		}
		presets, err := loadPresets()
		if err != nil {
			return err
		}
		for _, p := range presets {
			fmt.Printf("brush     %s\n", p.Name)
		}
		return nil
	},
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Print the brush presets in TOML format",
	RunE: func(cmd *cobra.Command, args []string) error {
		presets, err := loadPresets()
		if err != nil {
			return err
		}
		return preset.Write(os.Stdout, presets)
	},
}

func loadPresets() ([]preset.Preset, error) {
	if presetFile == "" {
		return preset.Default(), nil
	}
	return preset.LoadFile(presetFile)
}

func loadScenario() (testcases.Scenario, error) {
	if eventsFile == "" {
		sc, ok := testcases.Find(scenarioName)
		if !ok {
			return testcases.Scenario{}, fmt.Errorf("unknown scenario %q", scenarioName)
		}
		return sc, nil
	}

	fd, err := os.Open(eventsFile)
	if err != nil {
		return testcases.Scenario{}, err
	}
	defer fd.Close()
	all, err := testcases.ReadJSON(fd)
	if err != nil {
		return testcases.Scenario{}, fmt.Errorf("%s: %w", eventsFile, err)
	}
	for _, sc := range all {
		if sc.Name == scenarioName {
			return sc, nil
		}
	}
	if len(all) == 1 {
		return all[0], nil
	}
	return testcases.Scenario{}, fmt.Errorf("%s: no scenario %q", eventsFile, scenarioName)
}

func writePNG(name string, res *result) error {
	fd, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(fd, res.img); err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
