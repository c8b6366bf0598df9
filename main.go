package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/strohs/raytracer/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "raytracer"
	app.Usage = "render preset scenes using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a preset scene to an image file",
			Description: `
Build one of the preset scenes, trace it with the one-shot parallel renderer
(or the multi-pass progressive renderer with --progressive) and write the
frame to a PPM or PNG file chosen by the output extension.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "random-spheres",
					Usage: "preset scene name (see the scenes command)",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width (0 = use the scene preset)",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height (0 = use the scene preset)",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel (0 = use the scene preset)",
				},
				cli.IntFlag{
					Name:  "max-depth",
					Usage: "maximum ray bounce depth (0 = use the scene preset)",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of render workers (0 = CPU count)",
				},
				cli.BoolFlag{
					Name:  "progressive",
					Usage: "refine the frame over multiple passes instead of one shot",
				},
				cli.IntFlag{
					Name:  "passes",
					Usage: "number of progressive passes (0 = default)",
				},
				cli.IntFlag{
					Name:  "tile-size",
					Usage: "progressive tile size in pixels (0 = default)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 42,
					Usage: "base seed for scene assembly and pixel sampling",
				},
				cli.StringFlag{
					Name:  "texture",
					Value: "earthmap.jpg",
					Usage: "image file for texture-mapped scenes",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list the available preset scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:  "serve",
			Usage: "start the progressive web preview server",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port, p",
					Value: 8080,
					Usage: "port for the web server",
				},
				cli.StringFlag{
					Name:  "static",
					Value: "static",
					Usage: "directory of static web assets",
				},
				cli.StringFlag{
					Name:  "texture",
					Value: "earthmap.jpg",
					Usage: "image file for texture-mapped scenes",
				},
			},
			Action: cmd.Serve,
		},
	}

	app.Run(os.Args)
}
