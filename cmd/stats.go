package cmd

import (
	"seqgen/internal/seqgen"

	"github.com/spf13/cobra"
)

// statsCmd reports the nucleotide composition of an existing FASTA file
var statsCmd = &cobra.Command{
	Use:   "stats [file.fasta]",
	Short: "Report the nucleotide composition of a FASTA file",
	Long: `Read a single-record FASTA file and print the same statistics block
that "seqgen generate" prints: per-base percentages, %CG, and the
C:G to A:T ratio. Characters outside A/C/G/T are ignored`,
	Args: cobra.ExactArgs(1),
	Run:  seqgen.RunStats,
}

func init() {
	RootCmd.AddCommand(statsCmd)
}
