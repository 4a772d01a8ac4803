package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
)

var ScriptFlag = &cli.PathFlag{
	Name:     "script",
	Usage:    "File with one command per line. Blank lines and lines starting with # are skipped",
	Required: false,
}

func CreateExecCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "exec",
		Usage:       "Runs stack commands given as arguments or read from a script",
		Description: "Runs stack commands given as arguments or read from a script. Ex: exec \"push 1\" \"push 2\" pop",
		ArgsUsage:   "[command...]",
		Action:      action,
		Flags:       sessionFlags(ScriptFlag),
	}
}

var ExecCommand = CreateExecCommand(ExecCommands)

func ExecCommands(ctx *cli.Context) error {
	prof, err := loadProfile(ctx)
	if err != nil {
		return err
	}

	var input io.Reader
	scriptPath := ctx.Path(ScriptFlag.Name)
	switch {
	case scriptPath != "" && ctx.Args().Present():
		return fmt.Errorf("commands can be given either as arguments or with --%s, not both", ScriptFlag.Name)
	case scriptPath != "":
		absPath, err := filepath.Abs(scriptPath)
		if err != nil {
			return fmt.Errorf("unable to determine absolute path: %w", err)
		}
		file, err := os.Open(absPath)
		if err != nil {
			return fmt.Errorf("unable to open script: %w", err)
		}
		defer func() {
			_ = file.Close()
		}()
		input = file
	case ctx.Args().Present():
		input = strings.NewReader(strings.Join(ctx.Args().Slice(), "\n"))
	default:
		return fmt.Errorf("no commands given")
	}

	return runSession(prof, input, ctx.App.Writer, runOptions{skipBlank: true})
}
