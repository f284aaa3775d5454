package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/andrew-torda/randpep/pkg/config"
	. "github.com/andrew-torda/randpep/pkg/seq/common"
	"github.com/andrew-torda/randpep/pkg/seqlen"
	"github.com/andrew-torda/randpep/pkg/vlog"
)

// newSeqLenCmd is for looking at a database before sampling from it.
func newSeqLenCmd() *cobra.Command {
	var thresh, vbsty int
	cmd := &cobra.Command{
		Use:   "seqlen [flags] input [output]",
		Short: "Write the length of each sequence as csv and count the long ones",
		Args: func(cmd *cobra.Command, a []string) error {
			if err := cobra.RangeArgs(1, 2)(cmd, a); err != nil {
				return usageError{err}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, a []string) (err error) {
			logger := vlog.New(cmd.ErrOrStderr(), vbsty)
			if len(a) < 2 {
				_, err = seqlen.Mymain(a[0], nil, thresh, logger)
				return err
			}
			w := cmd.OutOrStdout()
			if !IsStd(a[1]) {
				fp, oerr := os.Create(a[1])
				if oerr != nil {
					return errors.Wrap(oerr, "creating length file")
				}
				defer func() {
					if cerr := fp.Close(); cerr != nil && err == nil {
						err = cerr
					}
				}()
				w = fp
			}
			_, err = seqlen.Mymain(a[0], w, thresh, logger)
			return err
		},
	}
	cmd.Flags().IntVarP(&thresh, "min-seq-len", "l", config.DefMinSeqLen, "count sequences longer than this")
	cmd.Flags().IntVarP(&vbsty, "verbosity", "v", config.DefVerbosity, "0 errors only, 1 warnings, 2 info, 3 debug")
	return cmd
}
