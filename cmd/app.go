// Package cmd implements the CLI application to reconcile partner shares.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/etawil/recon"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&loadCmd{}, "session")
	c.Register(&selectCmd{}, "session")
	c.Register(&rateCmd{}, "session")
	c.Register(&carryCmd{}, "session")

	c.Register(&reportCmd{}, "reporting")
	c.Register(&summaryCmd{}, "reporting")
	c.Register(&exportCmd{}, "reporting")

	c.Register(&commissionCmd{}, "commissions")
	c.Register(&addRowCmd{}, "commissions")
	c.Register(&rmRowCmd{}, "commissions")
	c.Register(&setRowCmd{}, "commissions")

	c.Register(&bookCmd{}, "book")
	c.Register(&confirmCmd{}, "book")
	c.Register(&unconfirmCmd{}, "book")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var sessionFile = flag.String("session-file", "session.jsonl", "Path to the session file (JSONL format)")

// DecodeSession decodes the session from the app session file.
// If the file does not exist, it returns a new empty session.
func DecodeSession() (*recon.Session, error) {
	f, err := os.Open(*sessionFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return recon.NewSession(), nil
		}
		return nil, fmt.Errorf("could not open session file %q: %w", *sessionFile, err)
	}
	defer f.Close()

	s, err := recon.DecodeSession(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode session file %q: %w", *sessionFile, err)
	}
	return s, nil
}

// SaveSession writes the whole session back to the app session file.
func SaveSession(s *recon.Session) error {
	f, err := os.Create(*sessionFile)
	if err != nil {
		return fmt.Errorf("could not create session file %q: %w", *sessionFile, err)
	}
	defer f.Close()

	if err := recon.EncodeSession(f, s); err != nil {
		return fmt.Errorf("could not encode session file %q: %w", *sessionFile, err)
	}
	return nil
}
