package cmd

import (
	"github.com/urfave/cli"

	"github.com/strohs/raytracer/web/server"
)

// Serve starts the web preview server.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	srv := server.New(server.Config{
		Port:        ctx.Int("port"),
		StaticDir:   ctx.String("static"),
		TexturePath: ctx.String("texture"),
	})
	return srv.Start()
}
