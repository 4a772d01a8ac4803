// Package cmd defines all the commands for the cli
package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ChainSafe/stackapp/logger"
	"github.com/ChainSafe/stackapp/profile"
)

var (
	ProfileFlag = &cli.PathFlag{
		Name:     "profile",
		Usage:    "Path to the YAML session profile",
		Required: false,
	}
	CapacityFlag = &cli.IntFlag{
		Name:        "capacity",
		Usage:       "Number of slots in the stack. Overrides the profile",
		Required:    false,
		DefaultText: "3",
	}
	FormatFlag = &cli.StringFlag{
		Name:        "format",
		Usage:       "format of the output. Options: json, text. Overrides the profile",
		Required:    false,
		DefaultText: "text",
	}
	DebugFlag = &cli.BoolFlag{
		Name:     "debug",
		Usage:    "enable debug logging on stderr",
		Required: false,
		Value:    false,
	}
)

func sessionFlags(extra ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		ProfileFlag,
		CapacityFlag,
		FormatFlag,
		DebugFlag,
	}, extra...)
}

// loadProfile resolves the profile file and applies command line overrides.
func loadProfile(ctx *cli.Context) (*profile.Profile, error) {
	prof := profile.Default()
	if path := ctx.Path(ProfileFlag.Name); path != "" {
		var err error
		prof, err = profile.LoadProfile(path)
		if err != nil {
			return nil, fmt.Errorf("error loading profile: %w", err)
		}
	}
	if ctx.IsSet(CapacityFlag.Name) {
		prof.Capacity = ctx.Int(CapacityFlag.Name)
	}
	if ctx.IsSet(FormatFlag.Name) {
		prof.Format = ctx.String(FormatFlag.Name)
	}
	if err := prof.Validate(); err != nil {
		return nil, err
	}

	if err := logger.Init(prof.Logger.Development || ctx.Bool(DebugFlag.Name)); err != nil {
		return nil, fmt.Errorf("unable to initialise logger: %w", err)
	}
	return prof, nil
}
