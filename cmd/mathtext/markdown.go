package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMarkdownCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "markdown [file]",
		Short: "Convert Markdown with math to HTML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			src, err := inputFile(cmd, path)
			if err != nil {
				return err
			}
			e, err := a.engine()
			if err != nil {
				return err
			}
			defer e.Close()

			html, err := e.RenderMarkdown(string(src))
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), html)
			return err
		},
	}
}
