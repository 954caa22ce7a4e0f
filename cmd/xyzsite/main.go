package main

import (
	"log"
	"os"

	sitecli "github.com/xyz-company/xyzsite/cli"
	clilib "github.com/urfave/cli/v2"
)

func runApp(args []string) error {
	app := &clilib.App{
		Name:  "xyzsite",
		Usage: "XYZ Company corporate website",
		Commands: []*clilib.Command{
			sitecli.DevCommand,
			sitecli.ProdCommand,
			sitecli.CheckCommand,
			sitecli.InfoCommand,
			sitecli.InitCommand,
			sitecli.BuildCommand,
			sitecli.CleanCommand,
		},
	}

	return app.Run(args)
}

func main() {
	if err := runApp(os.Args); err != nil {
		log.Fatal(err)
	}
}
