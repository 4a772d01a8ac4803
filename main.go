package main

import (
	"context"
	"log"
	"os"

	"github.com/ChainSafe/stackapp/cmd"
	"github.com/ChainSafe/stackapp/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = os.Args[0]
	app.Usage = "Bounded Stack Playground"
	app.Description = "Push and pop digits on a fixed-capacity stack"
	app.Commands = []*cli.Command{
		cmd.ReplCommand,
		cmd.ExecCommand,
	}
	app.After = func(*cli.Context) error {
		logger.Sync()
		return nil
	}
	err := app.RunContext(context.Background(), os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
