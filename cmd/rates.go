package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/gonogo-cli/internal/rates"
)

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Print the bundled rate tables as YAML",
	Long:  "Dumps every bundled assumption: manufacturing coefficients, overhead and GST rates, platform fee brackets, carrier slabs and the ingredient price database.",
	RunE: func(cmd *cobra.Command, args []string) error {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()
		if err := enc.Encode(rates.Default()); err != nil {
			return eris.Wrap(err, "rates: encode")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ratesCmd)
}
