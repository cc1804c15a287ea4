package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newScoresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "High score commands",
	}

	cmd.AddCommand(newScoresTopCmd())
	cmd.AddCommand(newScoresSubmitCmd())

	return cmd
}

func newScoresTopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "top",
		Short: "Show the high score table",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result HighScoresResult

			if err := client.Get("/api/v1/highscores", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newScoresSubmitCmd() *cobra.Command {
	var sixSevens int

	cmd := &cobra.Command{
		Use:   "submit <name> <face> <total>",
		Short: "Submit a score to the high score table",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			faceCards, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid face card count: %w", err)
			}

			totalCards, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid total card count: %w", err)
			}

			req := map[string]any{
				"player_name":     args[0],
				"face_cards":      faceCards,
				"total_cards":     totalCards,
				"six_seven_count": sixSevens,
			}
			var result SubmitScoreResult

			if err := client.Post("/api/v1/highscores", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&sixSevens, "six-sevens", 0, "Six-seven count for the score")

	return cmd
}
