package cli

import (
	"github.com/urfave/cli/v2"
	"github.com/xyz-company/xyzsite"
	"github.com/xyz-company/xyzsite/core"
)

func configFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Value:   core.DefaultConfigFile,
		Usage:   "path to the site config file",
	}
}

func serverFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "host", Usage: "interface to bind (default from config)"},
		&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Usage: "port to listen on (default from config)"},
		configFlag(),
	}
}

func runtimeConfig(c *cli.Context, env string) xyzsite.RuntimeConfig {
	return xyzsite.RuntimeConfig{
		Env:          env,
		Host:         c.String("host"),
		Port:         c.Int("port"),
		ConfigPath:   c.String("config"),
		EnableMinify: env == core.EnvProd,
	}
}

var DevCommand = &cli.Command{
	Name:  "dev",
	Usage: "Start the site in dev mode (live reload, no minification)",
	Flags: serverFlags(),
	Action: func(c *cli.Context) error {
		xyzsite.Start(runtimeConfig(c, core.EnvDev))
		return nil
	},
}

var ProdCommand = &cli.Command{
	Name:  "prod",
	Usage: "Start the site in production mode (minified HTML, immutable assets)",
	Flags: serverFlags(),
	Action: func(c *cli.Context) error {
		xyzsite.Start(runtimeConfig(c, core.EnvProd))
		return nil
	},
}

// loadRouter builds a router for offline rendering.
func loadRouter(c *cli.Context, env string, minify bool) (*core.Router, *core.Config, error) {
	config, err := xyzsite.ResolveConfig(xyzsite.RuntimeConfig{
		Env:          env,
		ConfigPath:   c.String("config"),
		EnableMinify: minify,
	})
	if err != nil {
		return nil, nil, err
	}

	router, err := core.New(*config, core.RuntimeContext{Env: env})
	if err != nil {
		return nil, nil, err
	}
	return router, config, nil
}
