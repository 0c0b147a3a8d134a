package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// atLeastOne rejects an empty argument list with the command's usage message.
func atLeastOne(name string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("todo %s takes at least 1 argument", name)
		}
		return nil
	}
}

func exactlyTwo(name string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return fmt.Errorf("todo %s takes exactly 2 arguments", name)
		}
		return nil
	}
}

func rawArgs(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return fmt.Errorf("todo raw takes 1 argument (done/todo), but none was given")
	case len(args) > 1:
		return fmt.Errorf("todo raw takes only 1 argument; not %d", len(args))
	}
	return nil
}

const sortUsage = "todo sort takes either no arguments, or the single flag '--alphabetical'"

func sortArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return errors.New(sortUsage)
	}
	return nil
}
