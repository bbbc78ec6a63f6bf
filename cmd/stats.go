package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/taldlab/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show attempt history and scores",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		ctx := context.Background()

		s, err := openStore(ctx, cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		stats, err := s.Stats(ctx)
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		if stats.Total == 0 {
			fmt.Println("No attempts recorded yet.")
			return nil
		}

		fmt.Printf("Attempts: %d   Mean score: %.2f\n\n", stats.Total, stats.MeanScore)
		for mode, ms := range stats.ByMode {
			fmt.Printf("  %-12s  %4d attempts  mean %.2f\n", mode, ms.Count, ms.MeanScore)
		}

		attempts, err := s.ListAttempts(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("list attempts: %w", err)
		}

		fmt.Println()
		fmt.Printf("%-19s  %-12s  %-8s  %-9s  %-6s  %s\n",
			"When", "Mode", "Score", "Outcome", "Turns", "Items")
		fmt.Println(strings.Repeat("─", 80))
		for _, a := range attempts {
			fmt.Printf("%-19s  %-12s  %-8.2f  %-9s  %-6d  %s\n",
				a.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				a.Mode, a.Score, a.Outcome, a.TurnCount, joinInts(a.AssignedItems))
		}
		return nil
	},
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}
	return strings.Join(parts, ",")
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 20, "Number of attempts to show")
}
