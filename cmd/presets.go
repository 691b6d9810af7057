package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/arr-ai/apc/combiner"
)

var presetsCommand = cli.Command{
	Name:    "presets",
	Aliases: []string{"p"},
	Usage:   "List the preset combiners",
	Action:  presets,
}

func presets(c *cli.Context) error {
	for _, p := range combiner.SortedPresets() {
		if _, err := fmt.Fprintf(c.App.Writer, "%-8s %s\n", p.Name(), p.Kind()); err != nil {
			return err
		}
	}
	return nil
}
