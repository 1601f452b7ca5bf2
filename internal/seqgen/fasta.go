package seqgen

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Record is a single FASTA record
type Record struct {
	// ID from the header line, up to the first space
	ID string

	// Desc is the rest of the header line
	Desc string

	// Seq is the record's sequence, joined across lines
	Seq string
}

// newlines is for scrubbing header fields that would break the
// one-header-line format
var newlines = strings.NewReplacer("\n", " ", "\r", " ")

// WriteFasta writes a single FASTA record to "<id>.fasta" in dir and
// returns the path of the file. Newlines in id and desc are replaced with
// spaces so they cannot split the header. A lineWidth > 0 wraps the
// sequence body at that width; 0 writes it on a single line
func WriteFasta(dir, id, desc, seq string, lineWidth int) (string, error) {
	id = newlines.Replace(id)
	desc = newlines.Replace(desc)

	var b strings.Builder
	fmt.Fprintf(&b, ">%s %s\n", id, desc)
	if lineWidth > 0 {
		for i := 0; i < len(seq); i += lineWidth {
			end := i + lineWidth
			if end > len(seq) {
				end = len(seq)
			}
			b.WriteString(seq[i:end])
			b.WriteByte('\n')
		}
	} else {
		b.WriteString(seq)
		b.WriteByte('\n')
	}

	filename := filepath.Join(dir, id+".fasta")
	if err := os.WriteFile(filename, []byte(b.String()), 0644); err != nil {
		return filename, err
	}
	return filename, nil
}

// ReadFasta reads the first record of a FASTA file. The header is split
// on the first space into ID and Desc, sequence lines are concatenated
func ReadFasta(path string) (Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return Record{}, err
	}
	defer f.Close()

	var r Record
	sawHeader := false
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, ">") {
			if sawHeader {
				break // only the first record
			}
			sawHeader = true
			header := line[1:]
			if sp := strings.Index(header, " "); sp >= 0 {
				r.ID = header[:sp]
				r.Desc = header[sp+1:]
			} else {
				r.ID = header
			}
		} else if sawHeader {
			r.Seq += line
		}
	}
	if err := scanner.Err(); err != nil {
		return Record{}, err
	}
	if !sawHeader {
		return Record{}, fmt.Errorf("no FASTA header in %s", path)
	}
	return r, nil
}
