// 17 Oct 2026

/*
Randpep makes a set of random peptides from a protein sequence database,
such as swissprot. It picks some sequences at random, throws away the ones
which are too short, and from each of the rest cuts out a piece of random
length from a random place.

The input is a fasta file, which may be gzipped. Given no input name or "-",
it reads from standard input. Given no output filename, it writes to standard
output. The output is fasta, with each peptide on one line and the identifier
of the sequence it came from.

The number of sequences asked for is drawn before the short ones are removed,
so you usually get fewer peptides than you asked for. Asking for more sequences
than there are in the file is an error.

With no random number seed, one is taken from the clock and written to the log,
so a run can always be repeated.

Usage:
	randpep [flags] input [output]
	randpep randseq [flags] output nseq

The flags are:
	-n N
		Number of sequences to draw (default 3000)
	-l N
		Sequences must be longer than this (default 200)
	--min N, --max N
		Shortest and longest peptide (default 10 and 30).
		The minimum sequence length may not be less than --max.
	-r seed
		Random number seed
	-u
		Convert residues to upper case
	-a
		Write accessions (P12345) instead of swissprot identifiers
		(sp|P12345|NAME)
	--csv-file, --comp-file, --plot-file, --summary-file, --metrics-file name
		Extra outputs. A csv table of peptides, the residue composition at
		each position, a png histogram of lengths, a yaml summary of the
		run and prometheus metrics in the node exporter text format.
	--dry-run
		Do everything, but write nothing
	-v N
		Verbosity, 0 for errors only up to 3 for debugging
	--config file
		Settings file. Otherwise randpep.yaml is looked for in the current
		directory and in ~/.config/randpep

Every setting can also come from the settings file or an environment variable
like RANDPEP_MIN_SEQ_LEN. Flags win over the environment, which wins over the
settings file.

The randseq command writes random protein sequences, which are handy for
testing.
*/
package main
