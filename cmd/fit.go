package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/notargets/gaussfit/readfiles"
	"github.com/notargets/gaussfit/regression"
	"github.com/notargets/gaussfit/types"
)

// FitCmd represents the fit command
var FitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Fit every model family to a CSV of samples and compare R2",
	Long: `
Reads a CSV with a speed column and a distance column, and optionally a surface
condition column (dry/seco, wet/mojado). Each condition is fitted on its own,

gaussfit fit -F braking.csv -m quadratic -c 20`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var (
			fileName string
			sf       *readfiles.SampleFile
			only     []types.ModelKind
		)
		if fileName, err = cmd.Flags().GetString("samplesFile"); err != nil {
			return
		}
		if len(fileName) == 0 {
			return fmt.Errorf("must supply a samples file (-F, --samplesFile) in CSV format")
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		curveSteps, _ := cmd.Flags().GetInt("curveSteps")
		if label, _ := cmd.Flags().GetString("model"); len(label) != 0 {
			var mk types.ModelKind
			if mk, err = types.NewModelKind(label); err != nil {
				return
			}
			only = []types.ModelKind{mk}
		}
		if sf, err = readfiles.ReadSamplesFile(fileName, verbose); err != nil {
			return
		}
		w := cmd.OutOrStdout()
		if !sf.HasConditions() {
			return ReportFit(w, "all samples", sf.All, only, curveSteps)
		}
		conds := []types.Condition{types.Dry, types.Wet}
		groups := make([]types.Dataset, len(conds))
		for i, cond := range conds {
			groups[i] = sf.ByCondition[cond]
		}
		results, errs := regression.FitBatch(groups, len(groups))
		for i, cond := range conds {
			if errs[i] != nil {
				fmt.Fprintf(w, "%s: %v\n", cond, errs[i])
				continue
			}
			reportResult(w, cond.String(), results[i], only, curveSteps)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(FitCmd)
	FitCmd.Flags().StringP("samplesFile", "F", "", "CSV file with speed, distance and optional condition columns")
	FitCmd.Flags().StringP("model", "m", "", "report only this model: linear, quadratic, exponential or power")
	FitCmd.Flags().IntP("curveSteps", "c", 0, "print the fitted curve of each reported model at this many intervals")
	FitCmd.Flags().BoolP("verbose", "v", false, "print column selection and sample counts")
}

// ReportFit fits data and prints one line per model, marking the best R2
func ReportFit(w io.Writer, label string, data types.Dataset, only []types.ModelKind, curveSteps int) (err error) {
	var (
		r regression.Result
	)
	if r, err = regression.FitAllModels(data); err != nil {
		return
	}
	reportResult(w, label, r, only, curveSteps)
	return
}

func reportResult(w io.Writer, label string, r regression.Result, only []types.ModelKind, curveSteps int) {
	var (
		best *regression.ModelFit
	)
	if len(only) == 0 {
		only = types.AllModels
	}
	best, _ = r.Best()
	fmt.Fprintf(w, "[%s] %d samples\n", label, len(r.Samples))
	for _, kind := range only {
		fit, ok := r.Get(kind)
		if !ok {
			fmt.Fprintf(w, "  %-12s not applicable to this data\n", kind)
			continue
		}
		marker := " "
		if fit == best {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s\n", marker, fit)
		if curveSteps > 0 {
			curve, _ := r.Curve(kind, curveSteps)
			for _, p := range curve {
				fmt.Fprintf(w, "    %12.6f %14.6f\n", p.X, p.Y)
			}
		}
	}
}
