package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/gonogo-cli/internal/economics"
	"github.com/sells-group/gonogo-cli/internal/session"
)

var (
	evalDescription string
	evalCategory    string
	evalChannel     string
	evalWeight      float64
	evalPrice       float64
	evalZone        string
	evalPackaging   string
	evalOffline     bool
	evalJSON        bool
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate unit economics for a single product idea",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		e := buildEnv(cfg, evalOffline)

		sess := session.New(session.RawInput{
			Description:   evalDescription,
			Category:      evalCategory,
			Channel:       evalChannel,
			WeightGrams:   evalWeight,
			Price:         evalPrice,
			Zone:          evalZone,
			PackagingType: evalPackaging,
		}, e.Limits)

		if evalZone == "" {
			sess.Zone = e.Zone
		}

		for _, adj := range sess.Adjustments {
			zap.L().Warn("input adjusted", zap.String("adjustment", adj))
		}

		report := e.Aggregator.Compute(ctx, economics.Request{
			Description:   sess.Description,
			Category:      sess.Category,
			Channel:       sess.Channel,
			WeightGrams:   sess.WeightGrams,
			Price:         sess.Price,
			Zone:          sess.Zone,
			PackagingType: sess.PackagingType,
		})

		if evalJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		fmt.Fprintln(os.Stdout, economics.Render(report))
		return nil
	},
}

func init() {
	evaluateCmd.Flags().StringVar(&evalDescription, "description", "", "product description, ideally listing ingredients (required)")
	evaluateCmd.Flags().StringVar(&evalCategory, "category", "", "product category (packaged snacks, personal care, supplements, ...)")
	evaluateCmd.Flags().StringVar(&evalChannel, "channel", "e-commerce", "sales channel: e-commerce, quick-commerce or d2c")
	evaluateCmd.Flags().Float64Var(&evalWeight, "weight", 0, "pack weight in grams (required)")
	evaluateCmd.Flags().Float64Var(&evalPrice, "price", 0, "planned selling price in INR (required)")
	evaluateCmd.Flags().StringVar(&evalZone, "zone", "", "shipping zone: local, regional or national (default from config)")
	evaluateCmd.Flags().StringVar(&evalPackaging, "packaging", "", "packaging type override")
	evaluateCmd.Flags().BoolVar(&evalOffline, "offline", false, "skip all network lookups, use bundled rate tables only")
	evaluateCmd.Flags().BoolVar(&evalJSON, "json", false, "print the full report as JSON")
	_ = evaluateCmd.MarkFlagRequired("description")
	_ = evaluateCmd.MarkFlagRequired("weight")
	_ = evaluateCmd.MarkFlagRequired("price")
	rootCmd.AddCommand(evaluateCmd)
}
