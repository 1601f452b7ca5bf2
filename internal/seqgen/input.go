package seqgen

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"seqgen/config"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Flags contains parsed cobra flags like "length", "id", "label" that feed the
// generate command. Unset values are collected interactively.
type Flags struct {
	// the requested sequence length, non-positive means prompt for it
	length int

	// the sequence identifier, also the output file's base name
	id string

	// free text written to the FASTA header after the identifier
	desc string

	// the label spliced into the sequence at a random position
	label string

	// whether each string flag was passed (an empty value is still a value)
	idSet, descSet, labelSet bool
}

// parseCmdFlags gathers the length, id, etc from a cobra cmd object.
// returns Flags and a Config struct for seqgen.generate.
func parseCmdFlags(cmd *cobra.Command) (*Flags, config.Config) {
	c := config.New()

	fs := &Flags{}
	fs.length, _ = cmd.Flags().GetInt("length")
	fs.id, _ = cmd.Flags().GetString("id")
	fs.desc, _ = cmd.Flags().GetString("desc")
	fs.label, _ = cmd.Flags().GetString("label")
	fs.idSet = cmd.Flags().Changed("id")
	fs.descSet = cmd.Flags().Changed("desc")
	fs.labelSet = cmd.Flags().Changed("label")

	return fs, c
}

// RunGenerate is the entry point of the generate command.
func RunGenerate(cmd *cobra.Command, args []string) {
	fs, c := parseCmdFlags(cmd)
	if err := generate(fs, c, os.Stdin, os.Stdout); err != nil {
		stderr.Fatal(err)
	}
}

// generate collects any missing inputs from in, then runs generation,
// label embedding, the file write, and the statistics report, in that order.
// A failed write is logged and the statistics are still reported
func generate(fs *Flags, c config.Config, in io.Reader, out io.Writer) error {
	r := bufio.NewReader(in)

	length := fs.length
	if length <= 0 {
		n, err := promptLength(r, out)
		if err != nil {
			return err
		}
		length = n
	}

	id, err := promptUnless(r, out, "Enter the sequence ID: ", fs.id, fs.idSet)
	if err != nil {
		return err
	}
	if strings.TrimSpace(id) == "" {
		id = "seq-" + uuid.New().String()[:8]
	}

	desc, err := promptUnless(r, out, "Provide a description of the sequence: ", fs.desc, fs.descSet)
	if err != nil {
		return err
	}

	label, err := promptUnless(r, out, "Enter the label to embed: ", fs.label, fs.labelSet)
	if err != nil {
		return err
	}

	rnd := NewRand(c.Seed)
	seq := GenerateSequence(length, rnd)
	combined, pos := InsertLabel(seq, label, rnd)
	fmt.Fprintf(out, "Debug: inserting label at position %d\n", pos)

	filename, err := WriteFasta(c.OutputDir, id, desc, combined, c.LineWidth)
	if err != nil {
		// best effort: the statistics below are still worth reporting
		stderr.Printf("failed to write %s: %v", filename, err)
	}
	fmt.Fprintf(out, "The sequence was saved to the file %s\n", filename)

	writeReport(out, Calc(combined))
	return nil
}

// promptLength keeps asking until a positive integer is entered
func promptLength(r *bufio.Reader, out io.Writer) (int, error) {
	for {
		fmt.Fprint(out, "Enter the sequence length: ")
		line, err := readLine(r)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(out, "Invalid input: please enter a valid positive integer.")
			continue
		}
		if n <= 0 {
			fmt.Fprintln(out, "Invalid input: length must be a positive integer.")
			continue
		}
		return n, nil
	}
}

// promptUnless returns the flag value when it was passed on the command
// line and prompts for one otherwise
func promptUnless(r *bufio.Reader, out io.Writer, prompt, flagVal string, set bool) (string, error) {
	if set {
		return flagVal, nil
	}
	fmt.Fprint(out, prompt)
	return readLine(r)
}

// readLine returns the next line without its line ending. A final
// unterminated line is still returned before io.EOF surfaces
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
