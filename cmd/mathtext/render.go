package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newRenderCmd(a *app) *cobra.Command {
	var display, plain bool
	cmd := &cobra.Command{
		Use:   "render [text]",
		Short: "Render text to nodes (JSON) or plain text",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			e, err := a.engine()
			if err != nil {
				return err
			}
			defer e.Close()

			if plain {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), e.RenderPlainText(text, display))
				return err
			}
			nodes := e.Render(text, display)
			a.log.WithField("nodes", len(nodes)).Debug("rendered")
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(nodes)
		},
	}
	cmd.Flags().BoolVar(&display, "display", false, "render every formula in display style")
	cmd.Flags().BoolVar(&plain, "plain", false, "print plain text instead of JSON nodes")
	return cmd
}
