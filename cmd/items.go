package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/taldlab/internal/catalog"
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List the 30 TALD scale items",
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")

		c, err := catalog.Load()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		fmt.Printf("%-4s  %-30s  %-10s  %s\n", "ID", "Name", "Category", "Synonyms")
		fmt.Println(strings.Repeat("─", 90))

		for _, item := range c.Items() {
			fmt.Printf("%-4d  %-30s  %-10s  %s\n",
				item.ID, item.Name, item.Category, strings.Join(item.Synonyms, ", "))
			if verbose {
				fmt.Printf("      %s\n", item.Description)
				fmt.Printf("      Criteria: %s\n\n", item.Criteria)
			}
		}
		return nil
	},
}

func init() {
	itemsCmd.Flags().BoolP("verbose", "v", false, "Include descriptions and criteria")
}
