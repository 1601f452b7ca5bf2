package seqgen

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// writeReport prints the statistics block: one percentage line per base,
// the %CG line, and the C:G to A:T ratio line
func writeReport(out io.Writer, s Stats) {
	fmt.Fprintln(out, "Sequence statistics:")
	for i := 0; i < len(bases); i++ {
		fmt.Fprintf(out, "%c: %.1f%%\n", bases[i], s.Percent[bases[i]])
	}
	fmt.Fprintf(out, "%%CG: %.1f\n", s.CGPercent)
	fmt.Fprintf(out, "C:G to A:T ratio: %.2f\n", s.ATRatio)
}

// RunStats is the entry point of the stats command.
func RunStats(cmd *cobra.Command, args []string) {
	rec, err := ReadFasta(args[0])
	if err != nil {
		stderr.Fatal(err)
	}
	writeReport(os.Stdout, Calc(rec.Seq))
}
