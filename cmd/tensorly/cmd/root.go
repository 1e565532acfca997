package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "v0.1.0-dev"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "tensorly",
	Short: "Tucker tensor toolbox",
	Long: `Tensor algebra in Go: mode products, Kronecker products and Tucker
reconstruction on a gonum-backed CPU backend.

Examples:
  tensorly reconstruct --shape 30,20,10 --rank 4,4,4
  tensorly reconstruct --shape 90,80,70 --rank 8,6,4 --seed 7 --skip 1`,
	Version:      version,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and runs it.
// Called once from main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
