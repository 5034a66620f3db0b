package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notargets/gaussfit/linsolve"
)

// SolveCmd represents the solve command
var SolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a linear system directly by Gaussian elimination with partial pivoting",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		sp, err := processInput(cmd)
		if err != nil {
			return
		}
		A, b, err := sp.System()
		if err != nil {
			return
		}
		x, err := linsolve.Solve(A, b)
		if err != nil {
			return
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "x = %v\n", formatVec(x.Data()))
		fmt.Fprintf(w, "max |A·x - b| = %10.3e\n", linsolve.Residual(A, x, b))
		return
	},
}

func init() {
	rootCmd.AddCommand(SolveCmd)
	SolveCmd.Flags().StringP("inputFile", "I", "", "YAML file describing A and B")
	SolveCmd.Flags().BoolP("verbose", "v", false, "print the input parameters")
}
