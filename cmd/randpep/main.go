package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/andrew-torda/randpep/pkg/config"
	"github.com/andrew-torda/randpep/pkg/randpep"
	. "github.com/andrew-torda/randpep/pkg/seq/common"
	"github.com/andrew-torda/randpep/pkg/vlog"
)

// usageError is a mistake on the command line, as opposed to a failure
// while running.
type usageError struct{ error }

// newRootCmd builds the command. v collects the settings.
func newRootCmd(v *viper.Viper) *cobra.Command {
	var cfgFile string
	cmd := &cobra.Command{
		Use:   "randpep [flags] input [output]",
		Short: "Cut random peptides out of a protein sequence database",
		Long: `Picks sequences at random from a fasta file, drops those which are
too short and cuts a peptide of random length from a random place in
each of the others.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.RangeArgs(1, 2)(cmd, args); err != nil {
				return usageError{err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			v.Set("in", args[0])
			if len(args) > 1 {
				v.Set("out", args[1])
			}
			if err := config.ReadFile(v, cfgFile); err != nil {
				return usageError{err}
			}
			cfg, err := config.New(v)
			if err != nil {
				return usageError{err}
			}
			logger := vlog.New(cmd.ErrOrStderr(), cfg.Verbosity)
			return randpep.Mymain(cfg, logger)
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error { return usageError{err} })

	f := cmd.Flags()
	f.StringVar(&cfgFile, "config", "", "settings file (default randpep.yaml)")
	f.IntP("sample-count", "n", config.DefSampleCount, "number of sequences to draw")
	f.IntP("min-seq-len", "l", config.DefMinSeqLen, "sequences must be longer than this")
	f.Int("min", config.DefMinPepLen, "shortest peptide")
	f.Int("max", config.DefMaxPepLen, "longest peptide")
	f.Int64P("seed", "r", 0, "random number seed (default from the clock)")
	f.BoolP("upper", "u", false, "convert residues to upper case")
	f.BoolP("accession", "a", false, "write accessions rather than full identifiers")
	f.Bool("dry-run", false, "do everything, but write no files")
	f.String("csv-file", "", "write peptides as csv to this file")
	f.String("comp-file", "", "write residue composition by position to this file")
	f.String("plot-file", "", "write a png histogram of peptide lengths to this file")
	f.String("summary-file", "", "write a yaml run summary to this file")
	f.String("metrics-file", "", "write prometheus metrics to this file")
	f.IntP("verbosity", "v", config.DefVerbosity, "0 errors only, 1 warnings, 2 info, 3 debug")

	v.BindPFlags(f)
	v.BindPFlag("min-pep-len", f.Lookup("min"))
	v.BindPFlag("max-pep-len", f.Lookup("max"))

	cmd.AddCommand(newRandSeqCmd(), newSeqLenCmd())
	return cmd
}

// run returns the exit code.
func run(args []string) int {
	v := viper.New()
	config.SetDefaults(v)
	cmd := newRootCmd(v)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "randpep:", err)
	var ib *randpep.InvalidBoundsError
	var oor *randpep.OutOfRangeError
	switch {
	case errors.As(err, new(usageError)):
		fmt.Fprintln(cmd.ErrOrStderr(), cmd.UsageString())
		return ExitUsageError
	case errors.As(err, &ib), errors.As(err, &oor):
		return ExitUsageError
	}
	return ExitFailure
}

func main() {
	os.Exit(run(os.Args[1:]))
}
