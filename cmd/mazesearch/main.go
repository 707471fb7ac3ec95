// Command mazesearch generates obstacle mazes and runs the search variants
// over them from the command line.
package main

import (
	"os"

	"github.com/gonuts/commander"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

var verbose bool

var app = &commander.Command{
	UsageLine: "mazesearch [options] <command>",
	Short:     "generate obstacle mazes and search them",
	Subcommands: []*commander.Command{
		SolveCmd(),
		CompareCmd(),
		SchemaCmd(),
	},
}

func init() {
	app.Flag.BoolVar(&verbose, "v", false, "enable debug logging")
}

func main() {
	if err := app.Flag.Parse(os.Args[1:]); err != nil {
		log.Fatalf("**err**: %v", err)
	}
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if err := app.Dispatch(app.Flag.Args()); err != nil {
		log.Fatalf("**err**: %v", err)
	}
}
