package cmd

import (
	"seqgen/internal/seqgen"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a random DNA sequence and save it as a FASTA record",
	Long: `Generate a random DNA sequence of a requested length, embed a label
at a random position within it, and save the result to "<id>.fasta".

Any value not passed as a flag is collected interactively. The sequence
length is re-prompted until a positive integer is entered. The nucleotide
composition of the combined sequence (per-base percentages, %CG, and the
C:G to A:T ratio) is printed after the file is written.`,
	Run: seqgen.RunGenerate,
}

// set flags
func init() {
	RootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntP("length", "l", 0, "Length of the random sequence (prompted if omitted)")
	generateCmd.Flags().StringP("id", "i", "", "Sequence identifier, used as the output file name")
	generateCmd.Flags().StringP("desc", "d", "", "Description written to the FASTA header")
	generateCmd.Flags().StringP("label", "n", "", "Label to embed at a random position in the sequence")
	generateCmd.Flags().StringP("out", "o", ".", "Directory the FASTA file is written to")
	generateCmd.Flags().Int64P("seed", "s", 0, "Random seed, 0 means seed from the current time")
	generateCmd.Flags().IntP("line-width", "w", 0, "Wrap the sequence body at this width, 0 means a single line")

	// Bind the parameters to viper
	viper.BindPFlag("out", generateCmd.Flags().Lookup("out"))
	viper.BindPFlag("seed", generateCmd.Flags().Lookup("seed"))
	viper.BindPFlag("line-width", generateCmd.Flags().Lookup("line-width"))
}
