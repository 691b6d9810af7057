package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

type VersionTags struct {
	Version   string
	GitCommit string
	BuildDate string
	BuildOS   string
}

func Main(info VersionTags) {
	if err := NewApp(info).Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func NewApp(info VersionTags) *cli.App {
	app := cli.NewApp()

	app.EnableBashCompletion = true

	app.Name = "apc"
	app.Usage = "fold parse results with node combiners"
	app.Version = info.Version
	app.Metadata = map[string]interface{}{
		"GitCommit": info.GitCommit,
		"BuildDate": info.BuildDate,
		"BuildOS":   info.BuildOS,
	}

	app.Commands = []cli.Command{foldCommand, presetsCommand}
	return app
}
