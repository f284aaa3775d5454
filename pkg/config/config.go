// Package config is for run settings that are unmarshalled
// from Viper (see: cmd/randpep). Settings come from, in order of
// precedence, command line flags, RANDPEP_* environment variables,
// a yaml settings file and the defaults here.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Defaults are the values used to make the original random peptide set
// from Swiss-Prot.
const (
	DefSampleCount = 3000
	DefMinSeqLen   = 200
	DefMinPepLen   = 10
	DefMaxPepLen   = 30
	DefVerbosity   = 2
	DefOut         = "-"
)

// EnvPrefix is put in front of environment variable names.
const EnvPrefix = "RANDPEP"

// Config is the root-level settings struct and is a mix
// of settings available in randpep.yaml and those
// available from the command line
type Config struct {
	// sequence file to read, "-" for stdin
	In string `mapstructure:"in"`
	// fasta file to write, "-" for stdout
	Out string `mapstructure:"out"`

	// number of identifiers drawn before length filtering
	SampleCount int `mapstructure:"sample-count"`
	// sequences must be longer than this
	MinSeqLen int `mapstructure:"min-seq-len"`
	MinPepLen int `mapstructure:"min-pep-len"`
	MaxPepLen int `mapstructure:"max-pep-len"`

	// random number seed. Only used if SeedSet
	Seed    int64 `mapstructure:"seed"`
	SeedSet bool  `mapstructure:"-"`

	// convert residues to upper case on reading
	Upper bool `mapstructure:"upper"`
	// shorten sp|P12345|NAME identifiers to P12345 on output
	Accession bool `mapstructure:"accession"`
	// do everything, but write no peptide file
	DryRun bool `mapstructure:"dry-run"`

	// optional extra outputs
	CSVFile     string `mapstructure:"csv-file"`
	CompFile    string `mapstructure:"comp-file"`
	PlotFile    string `mapstructure:"plot-file"`
	SummaryFile string `mapstructure:"summary-file"`
	MetricsFile string `mapstructure:"metrics-file"`

	// 0 errors only, 1 warnings, 2 info, 3 debug
	Verbosity int `mapstructure:"verbosity"`
}

// SetDefaults puts our defaults into a viper and sets up the
// environment variable mapping, so min-seq-len is RANDPEP_MIN_SEQ_LEN.
// There is deliberately no default seed.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("out", DefOut)
	v.SetDefault("sample-count", DefSampleCount)
	v.SetDefault("min-seq-len", DefMinSeqLen)
	v.SetDefault("min-pep-len", DefMinPepLen)
	v.SetDefault("max-pep-len", DefMaxPepLen)
	v.SetDefault("upper", false)
	v.SetDefault("accession", false)
	v.SetDefault("dry-run", false)
	v.SetDefault("verbosity", DefVerbosity)
	for _, k := range []string{"in", "csv-file", "comp-file", "plot-file", "summary-file", "metrics-file"} {
		v.SetDefault(k, "")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// ReadFile loads a settings file. If fname is empty we look for
// randpep.yaml in the current directory and in ~/.config/randpep and
// it is not an error if there is none.
func ReadFile(v *viper.Viper, fname string) error {
	if fname != "" {
		v.SetConfigFile(fname)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading settings file %s", fname)
		}
		return nil
	}
	v.SetConfigName("randpep")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "randpep"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "reading settings file")
	}
	return nil
}

// New returns a new Config populated by Viper settings.
func New(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, errors.Wrap(err, "unable to decode settings")
	}
	c.SeedSet = v.IsSet("seed")
	return &c, nil
}
