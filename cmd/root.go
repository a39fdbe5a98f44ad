package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enricher",
		Short: "Product attribute enrichment service with LLM-powered extraction",
		Long: `Enricher fills in product attribute values and image URLs for
manufacturer part numbers using an LLM and Google image search.

It serves a single-record enrichment endpoint and a bulk endpoint that
processes uploaded product tables as background tasks.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newEnrichCmd())

	return cmd
}
