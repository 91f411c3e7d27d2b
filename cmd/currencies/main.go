package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := createCliApp()

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func createCliApp() *cli.App {
	return &cli.App{
		Name:  "currencies",
		Usage: "Look up display names of currency codes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Usage:   "Base URL of a running currency names API, the embedded table is used when empty",
				Aliases: []string{"s"},
				EnvVars: []string{"CURRENCIES_SERVER"},
			},
		},
		Commands: []*cli.Command{
			createLookupCommand(),
			createListCommand(),
		},
	}
}
