package main

import (
	"fmt"

	"github.com/fwojciec/docbot"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	answer, err := deps.Bot.Answer(deps.Ctx, docbot.ResolvedQuery{
		Topic:       c.Topic,
		Subcategory: c.Subcategory,
		Question:    c.Question,
	})
	if err != nil {
		if docbot.ErrorCode(err) == docbot.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: %s. Use 'docbot topics' to see available topics.\n", docbot.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", docbot.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
