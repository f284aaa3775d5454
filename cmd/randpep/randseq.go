// 31 July 2020

package main

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/andrew-torda/randpep/pkg/randseq"
	. "github.com/andrew-torda/randpep/pkg/seq/common"
)

func newRandSeqCmd() *cobra.Command {
	var args randseq.RandSeqArgs
	cmd := &cobra.Command{
		Use:   "randseq [flags] output nseq",
		Short: "Write random protein sequences in fasta format",
		Args: func(cmd *cobra.Command, a []string) error {
			if err := cobra.ExactArgs(2)(cmd, a); err != nil {
				return usageError{err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, a []string) (err error) {
			nseq, err := strconv.ParseUint(a[1], 10, 32)
			if err != nil {
				return usageError{errors.Errorf("Failed converting %s to positive integer", a[1])}
			}
			args.Nseq = int(nseq)

			if IsStd(a[0]) {
				args.Wrtr = cmd.OutOrStdout()
			} else {
				ft, oerr := os.Create(a[0])
				if oerr != nil {
					return errors.Wrap(oerr, "File for output")
				}
				defer func() {
					if cerr := ft.Close(); cerr != nil && err == nil {
						err = cerr
					}
				}()
				args.Wrtr = ft
			}
			return randseq.RandSeqMain(&args)
		},
	}
	f := cmd.Flags()
	f.Int64VarP(&args.Iseed, "seed", "r", 1637, "random number seed")
	f.IntVar(&args.MinLen, "min", 150, "shortest sequence")
	f.IntVar(&args.MaxLen, "max", 400, "longest sequence")
	f.StringVarP(&args.Cmmt, "comment", "c", "", "text to add to each comment line")
	f.StringVarP(&args.Prefix, "prefix", "p", "rs", "start of each identifier")
	f.BoolVarP(&args.NoWhite, "no-white", "w", false, "do not put spaces and newlines in sequences")
	return cmd
}
