package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/advent/config"
)

func sessionCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "session",
		Short: "Manage the adventofcode.com session cookie",
	}
	c.AddCommand(&cobra.Command{
		Use:   "set",
		Short: "Prompt for the session cookie and store it in the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.ErrOrStderr(), "session cookie: ")
			secret, err := a.readSecret()
			fmt.Fprintln(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if secret == "" {
				return errors.New("empty session cookie")
			}

			// Only file settings are persisted, never values from the environment.
			stored, err := config.ReadFile(a.cfgPath)
			if err != nil {
				return err
			}
			stored.Session = secret
			if err := config.Save(a.cfgPath, stored); err != nil {
				return err
			}
			a.log.Info("session saved", "path", a.cfgPath)
			return nil
		},
	})
	return c
}

// readSecret reads without echo from a terminal, or a single line otherwise.
func (a *app) readSecret() (string, error) {
	if f, ok := a.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}
	line, err := bufio.NewReader(a.stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
