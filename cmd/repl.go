package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/ChainSafe/stackapp/profile"
)

func CreateReplCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "repl",
		Usage:       "Starts an interactive stack session",
		Description: "Reads commands (push X, pop, quit) from stdin until quit or end of input",
		Action:      action,
		Flags:       sessionFlags(),
	}
}

var ReplCommand = CreateReplCommand(StartRepl)

func StartRepl(ctx *cli.Context) error {
	prof, err := loadProfile(ctx)
	if err != nil {
		return err
	}
	prompt := prof.Prompt
	if prof.Format == profile.FormatJSON {
		// keep the output stream valid JSON lines
		prompt = ""
	}
	return runSession(prof, ctx.App.Reader, ctx.App.Writer, runOptions{
		prompt:        prompt,
		renderInitial: true,
	})
}
