package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	mathtext "github.com/riverfjs/mathtext-go"
)

func newQuizCmd(a *app) *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "quiz [file]",
		Short: "Render every question of a quiz bank (YAML or JSON)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.Quiz.Bank
			if len(args) == 1 {
				path = args[0]
			}
			bank, err := mathtext.LoadBank(path)
			if err != nil {
				return err
			}
			e, err := a.engine()
			if err != nil {
				return err
			}
			defer e.Close()

			ids := bank.IDs()
			if id != "" {
				ids = []string{id}
			}
			out := make([]mathtext.RenderedQuiz, 0, len(ids))
			for _, qid := range ids {
				q, ok := bank.Get(qid)
				if !ok {
					return errQuizNotFound(qid)
				}
				out = append(out, e.RenderQuiz(q))
			}
			a.log.WithField("quizzes", len(out)).Info("quiz bank rendered")

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "render only the quiz with this id")
	return cmd
}

func errQuizNotFound(id string) error {
	return fmt.Errorf("%w: quiz %q not found", mathtext.ErrInvalidQuiz, id)
}
