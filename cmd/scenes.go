package cmd

import (
	"bytes"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/strohs/raytracer/pkg/scene"
)

// ListScenes prints the available preset scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Description"})
	for _, info := range scene.List() {
		table.Append([]string{info.Name, info.Description})
	}

	table.Render()
	logger.Noticef("available scenes\n%s", buf.String())
	return nil
}
