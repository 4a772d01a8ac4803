package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ChainSafe/stackapp/logger"
	"github.com/ChainSafe/stackapp/profile"
	"github.com/ChainSafe/stackapp/renderer"
	"github.com/ChainSafe/stackapp/session"
)

// runOptions controls how runSession consumes its input.
type runOptions struct {
	prompt        string // written before every line when not empty
	skipBlank     bool   // ignore blank lines and '#' comments
	renderInitial bool
}

// runSession feeds every input line to a fresh session and renders the
// result after each one. It returns when input is exhausted or on quit.
func runSession(prof *profile.Profile, input io.Reader, output io.Writer, opts runOptions) error {
	rendererInstance, err := renderer.NewRenderer(prof.Format, prof)
	if err != nil {
		return err
	}

	sess := session.New(prof.Capacity, logger.Sugar)
	if opts.renderInitial {
		if err := rendererInstance.Render(sess.Snapshot(), output); err != nil {
			return fmt.Errorf("unable to render session: %w", err)
		}
	}

	scanner := bufio.NewScanner(input)
	for {
		if opts.prompt != "" {
			if _, err := io.WriteString(output, opts.prompt); err != nil {
				return err
			}
		}
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if opts.skipBlank {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "#") {
				continue
			}
		}

		res := sess.Exec(line)
		if err := rendererInstance.Render(sess.Snapshot(), output); err != nil {
			return fmt.Errorf("unable to render session: %w", err)
		}
		if res.Quit() {
			logger.Sugar.Debugw("session ended by quit", "contents", res.Contents)
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading commands: %w", err)
	}
	logger.Sugar.Debugw("session ended at end of input", "contents", sess.Contents())
	return nil
}
