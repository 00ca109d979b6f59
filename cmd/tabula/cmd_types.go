package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hlop3z/tabula/internal/types"
	"github.com/hlop3z/tabula/internal/ui"
)

// typesCmd lists the supported attribute types and their column mappings.
func typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List supported attribute types",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(ui.Header(Msg.Types.Title))
			fmt.Println()
			fmt.Printf("  %-10s %-14s %-10s %s\n", "TYPE", "POSTGRES", "SQLITE", "GO")
			for _, t := range types.All() {
				fmt.Printf("  %-10s %-14s %-10s %s\n",
					t.Name, t.SQLTypes.Postgres, t.SQLTypes.SQLite, t.GoType)
			}
			fmt.Println()
			fmt.Println(ui.Help("Composites: name:array:<type>, name:references:<table>"))
			fmt.Println(ui.Help("Modifier:   append :unique for a unique index"))
			return nil
		},
	}
}
