package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gaussfit/InputParameters"
	"github.com/notargets/gaussfit/gaussseidel"
	"github.com/notargets/gaussfit/linsolve"
	"github.com/notargets/gaussfit/types"
	"github.com/notargets/gaussfit/utils"
)

// GSCmd represents the gs command
var GSCmd = &cobra.Command{
	Use:   "gs",
	Short: "Solve a linear system with Gauss-Seidel iteration",
	Long: `
Reads A, b and the stopping criteria from a YAML file. Flags, GAUSSFIT_GS_*
environment variables or the config file override the file's criteria,

gaussfit gs -I system.yaml --errorType relative --steps`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			sp   *InputParameters.SystemParameters
			A    utils.Matrix
			b    utils.Vector
			o    gaussseidel.Options
			res  *gaussseidel.Result
			opts []gaussseidel.Option
		)
		if sp, err = processInput(cmd); err != nil {
			return
		}
		if A, b, err = sp.System(); err != nil {
			return
		}
		if o, err = sp.Options(); err != nil {
			return
		}
		opts = append(opts, gaussseidel.WithOptions(o))
		if viper.IsSet("gs.tol") {
			opts = append(opts, gaussseidel.WithTolerance(viper.GetFloat64("gs.tol")))
		}
		if viper.IsSet("gs.maxIter") {
			opts = append(opts, gaussseidel.WithMaxIterations(viper.GetInt("gs.maxIter")))
		}
		if viper.IsSet("gs.errorType") {
			var et types.ErrorType
			if et, err = types.NewErrorType(viper.GetString("gs.errorType")); err != nil {
				return
			}
			opts = append(opts, gaussseidel.WithErrorType(et))
		}
		var M mat.Matrix = A
		w := cmd.OutOrStdout()
		verbose, _ := cmd.Flags().GetBool("verbose")
		if sparse, _ := cmd.Flags().GetBool("sparse"); sparse {
			S := utils.NewCSRFrom(A)
			if verbose {
				nr, nc := S.Dims()
				fmt.Fprintf(w, "CSR storage: %d of %d entries\n", S.NNZ(), nr*nc)
			}
			M = S
		}
		if res, err = gaussseidel.Solve(M, b, opts...); err != nil {
			return
		}
		showSteps, _ := cmd.Flags().GetBool("steps")
		ReportGaussSeidel(w, A, b, res, showSteps, verbose)
		return
	},
}

func init() {
	rootCmd.AddCommand(GSCmd)
	GSCmd.Flags().StringP("inputFile", "I", "", "YAML file describing A, B and the stopping criteria")
	GSCmd.Flags().Float64P("tol", "t", gaussseidel.DefaultTolerance, "stop when the error between successive iterates is below this")
	GSCmd.Flags().StringP("errorType", "e", "absolute", "error metric: absolute or relative")
	GSCmd.Flags().IntP("maxIter", "n", gaussseidel.DefaultMaxIterations, "maximum number of sweeps")
	GSCmd.Flags().BoolP("steps", "s", false, "print every iterate")
	GSCmd.Flags().Bool("sparse", false, "store A in compressed sparse rows before iterating")
	GSCmd.Flags().BoolP("verbose", "v", false, "print the input parameters and the iteration matrix")
	_ = viper.BindPFlag("gs.tol", GSCmd.Flags().Lookup("tol"))
	_ = viper.BindPFlag("gs.errorType", GSCmd.Flags().Lookup("errorType"))
	_ = viper.BindPFlag("gs.maxIter", GSCmd.Flags().Lookup("maxIter"))
}

func processInput(cmd *cobra.Command) (sp *InputParameters.SystemParameters, err error) {
	var (
		fileName string
		data     []byte
	)
	if fileName, err = cmd.Flags().GetString("inputFile"); err != nil {
		return
	}
	if len(fileName) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Example File:%s\n", InputParameters.ExampleFile)
		err = fmt.Errorf("must supply an input parameters file (-I, --inputFile) in YAML format")
		return
	}
	if data, err = os.ReadFile(fileName); err != nil {
		return
	}
	sp = &InputParameters.SystemParameters{}
	if err = sp.Parse(data); err != nil {
		err = fmt.Errorf("parsing %s: %w", fileName, err)
		return
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		sp.Print()
	}
	return
}

// ReportGaussSeidel prints the convergence diagnostics, optionally the trace, and the solution
func ReportGaussSeidel(w io.Writer, A utils.Matrix, b utils.Vector, res *gaussseidel.Result, showSteps, verbose bool) {
	fmt.Fprintf(w, "Diagonally dominant: %v\n", gaussseidel.IsDiagonallyDominant(A))
	if Ts, _, err := gaussseidel.IterationMatrix(A, b); err == nil {
		if verbose {
			fmt.Fprint(w, Ts.Print("Ts"))
		}
		if rho, err := gaussseidel.SpectralRadius(Ts); err == nil {
			fmt.Fprintf(w, "Spectral radius of Ts: %8.5f\n", rho)
		}
	}
	if showSteps {
		for k, step := range res.Steps {
			fmt.Fprintf(w, "%4d %v  err = %10.3e\n", k+1, formatVec(step), res.Errors[k])
		}
	}
	if res.Converged {
		fmt.Fprintf(w, "Converged in %d iterations\n", res.Iterations)
	} else {
		fmt.Fprintf(w, "Did not converge after %d iterations\n", res.Iterations)
	}
	fmt.Fprintf(w, "x = %v\n", formatVec(res.Solution.Data()))
	fmt.Fprintf(w, "max |A·x - b| = %10.3e\n", linsolve.Residual(A, res.Solution, b))
}

func formatVec(v []float64) (s string) {
	s = "["
	for i, val := range v {
		if i != 0 {
			s += " "
		}
		s += fmt.Sprintf("%12.8f", val)
	}
	return s + "]"
}
