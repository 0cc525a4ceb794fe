package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sells-group/sitegen/internal/recommend"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the embedded template catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := recommend.LoadCatalog()
		if err != nil {
			return err
		}

		for _, tpl := range catalog {
			tones := make([]string, len(tpl.Tones))
			for i, t := range tpl.Tones {
				tones[i] = string(t)
			}
			fmt.Printf("%-16s %s\n", tpl.ID, tpl.Name)
			fmt.Printf("  %s\n", tpl.Description)
			fmt.Printf("  categories: %s\n", strings.Join(tpl.Categories, ", "))
			fmt.Printf("  tones:      %s\n", strings.Join(tones, ", "))
			fmt.Printf("  sections:   %s\n\n", strings.Join(tpl.Sections, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
