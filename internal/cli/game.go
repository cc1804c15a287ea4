package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameNewCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameDrawCmd())
	cmd.AddCommand(newGamePlaysCmd())
	cmd.AddCommand(newGamePlayCmd())
	cmd.AddCommand(newGameCollectCmd())
	cmd.AddCommand(newGamePassCmd())
	cmd.AddCommand(newGameNextCmd())
	cmd.AddCommand(newGameScoresCmd())

	return cmd
}

func newGameNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <player>...",
		Short: "Create a new game with the given players",
		Args:  cobra.RangeArgs(1, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string][]string{"player_names": args}
			var result GameState

			if err := client.Post("/api/v1/games", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Get current game state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameState

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameDrawCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "draw <id>",
		Short: "Draw a card from the number deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result DrawResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/draw", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGamePlaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plays <id>",
		Short: "List legal plays for the drawn card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result LegalPlaysResult

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s/legal-plays", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGamePlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play <id> <stack> <side>",
		Short: "Play the drawn card (side: left, right, match)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			stackIndex, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid stack index: %w", err)
			}

			req := map[string]any{"stack_index": stackIndex, "side": args[2]}
			var result PlayResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/play", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameCollectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "collect <id> <stack> <condition>",
		Short: "Collect a stack after triggering a condition",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			stackIndex, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid stack index: %w", err)
			}

			req := map[string]any{"stack_index": stackIndex, "condition": args[2]}
			var result CollectResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/collect", args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGamePassCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pass <id>",
		Short: "Declare no legal play for the drawn card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result NoPlayResult

			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/no-legal-play", args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next <id>",
		Short: "End the current turn",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/next-turn", args[0]), nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Turn ended")
			return nil
		},
	}
}

func newGameScoresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scores <id>",
		Short: "Show final standings for a finished game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ScoresResult

			if err := client.Get(fmt.Sprintf("/api/v1/games/%s/scores", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
