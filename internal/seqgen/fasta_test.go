package seqgen

import (
	"os"
	"path/filepath"
	"testing"
)

func Test_WriteFasta_roundTrip(t *testing.T) {
	dir := t.TempDir()

	filename, err := WriteFasta(dir, "seq1", "test", "ACGTACGTAC", 0)
	if err != nil {
		t.Fatalf("failed to write: %v", err)
	}

	if filepath.Base(filename) != "seq1.fasta" {
		t.Errorf("file named %s, wanted seq1.fasta", filepath.Base(filename))
	}

	dat, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("failed to read back: %v", err)
	}
	if want := ">seq1 test\nACGTACGTAC\n"; string(dat) != want {
		t.Errorf("file content = %q, wanted %q", dat, want)
	}

	rec, err := ReadFasta(filename)
	if err != nil {
		t.Fatalf("failed in ReadFasta: %v", err)
	}
	if rec.ID != "seq1" || rec.Desc != "test" || rec.Seq != "ACGTACGTAC" {
		t.Errorf("round trip gave %+v", rec)
	}
}

func Test_WriteFasta_sanitizesHeader(t *testing.T) {
	dir := t.TempDir()

	filename, err := WriteFasta(dir, "seq2", "line one\nline two", "ACGT", 0)
	if err != nil {
		t.Fatalf("failed to write: %v", err)
	}

	rec, err := ReadFasta(filename)
	if err != nil {
		t.Fatalf("failed in ReadFasta: %v", err)
	}

	if rec.Desc != "line one line two" {
		t.Errorf("description = %q, newline not scrubbed", rec.Desc)
	}
	if rec.Seq != "ACGT" {
		t.Errorf("sequence = %q, header newline leaked into the body", rec.Seq)
	}
}

func Test_WriteFasta_lineWidth(t *testing.T) {
	dir := t.TempDir()

	filename, err := WriteFasta(dir, "seq3", "wrapped", "ACGTACGTAC", 4)
	if err != nil {
		t.Fatalf("failed to write: %v", err)
	}

	dat, _ := os.ReadFile(filename)
	if want := ">seq3 wrapped\nACGT\nACGT\nAC\n"; string(dat) != want {
		t.Errorf("file content = %q, wanted %q", dat, want)
	}

	rec, err := ReadFasta(filename)
	if err != nil {
		t.Fatalf("failed in ReadFasta: %v", err)
	}
	if rec.Seq != "ACGTACGTAC" {
		t.Errorf("wrapped sequence read back as %q", rec.Seq)
	}
}

func Test_ReadFasta_errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := ReadFasta(filepath.Join(dir, "missing.fasta")); err == nil {
		t.Error("expected an error for a missing file")
	}

	headerless := filepath.Join(dir, "bare.fasta")
	if err := os.WriteFile(headerless, []byte("ACGT\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFasta(headerless); err == nil {
		t.Error("expected an error for a file without a header")
	}
}

func Test_ReadFasta_firstRecordOnly(t *testing.T) {
	dir := t.TempDir()

	multi := filepath.Join(dir, "multi.fasta")
	if err := os.WriteFile(multi, []byte(">a one\nACGT\n>b two\nTTTT\n"), 0644); err != nil {
		t.Fatal(err)
	}

	rec, err := ReadFasta(multi)
	if err != nil {
		t.Fatalf("failed in ReadFasta: %v", err)
	}
	if rec.ID != "a" || rec.Seq != "ACGT" {
		t.Errorf("got %+v, wanted only the first record", rec)
	}
}
