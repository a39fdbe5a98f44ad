package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lighthouse-data/enricher/internal/config"
	"github.com/lighthouse-data/enricher/internal/models"
)

func newEnrichCmd() *cobra.Command {
	var (
		mpn          string
		manufacturer string
		category     string
		subcategory  string
		attributes   []string
		images       bool
	)

	cmd := &cobra.Command{
		Use:   "enrich",
		Short: "Enrich a single product record from the command line",
		Example: `  # Extract attributes for one part
  enricher enrich --mpn ABC123 --manufacturer "Example Corp" --category Electrical \
    --attr Material --attr Voltage --images`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if mpn == "" {
				return fmt.Errorf("--mpn is required")
			}

			cfg := config.FromEnv()
			enricher, err := buildEnricher(cfg)
			if err != nil {
				return err
			}

			result := enricher.Enrich(cmd.Context(), models.ProductRecord{
				MPN:           mpn,
				Manufacturer:  manufacturer,
				Category:      category,
				Subcategory:   subcategory,
				Attributes:    attributes,
				IncludeImages: images,
			})

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&mpn, "mpn", "", "Manufacturer part number (required)")
	cmd.Flags().StringVar(&manufacturer, "manufacturer", "", "Manufacturer name")
	cmd.Flags().StringVar(&category, "category", "", "Product category")
	cmd.Flags().StringVar(&subcategory, "subcategory", "", "Product subcategory")
	cmd.Flags().StringArrayVar(&attributes, "attr", nil, "Attribute to extract (repeatable)")
	cmd.Flags().BoolVar(&images, "images", false, "Also resolve a product image URL")

	_ = cmd.MarkFlagRequired("mpn")

	return cmd
}
