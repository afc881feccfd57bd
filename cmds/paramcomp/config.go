package main

import (
	"fmt"
	"os"

	"github.com/paramcomp/paramcomp/pkg/conf"
	"github.com/paramcomp/paramcomp/pkg/utils/errutil"
	"github.com/sirupsen/logrus"
)

// ExUsage is the exit code for wrong command line usage (as in sysexits.h).
const ExUsage = 64

const help = `Renders comparison tables of a parameter sweep.

Every combination of parameter values described in the sweep file is computed once,
then the results are laid out as 2-D tables with --row and --col parameters as axes.
One page is written per remaining parameter, tables comparing its values next to each other.

All flags can be provided as PARAMCOMP_<FLAG> environment variables.`

// config holds the command line configuration, exposed through struct tags.
type config struct {
	Sweep      string `help:"Path to the HCL sweep definition" type:"file"`
	Row        string `help:"Parameter labelling table rows (sweep file choice or first parameter when empty)"`
	Col        string `help:"Parameter labelling table columns (sweep file choice or second parameter when empty)"`
	Format     string `help:"Page format: rst, markdown or csv" default:"rst"`
	OutputDir  string `help:"Directory receiving one file per page" default:"."`
	Indent     int    `help:"Indentation of RST tables" default:"4"`
	Print      bool   `help:"Preview every table on standard output"`
	DumpConfig bool   `help:"Dump configuration as environment script and exit"`
}

// configure parses flags, sets log level and dumps the configuration (if requested).
func configure(cfg *config) {
	conf.SetAppName("paramcomp")
	conf.SetHelp(help)

	// Registers flags with defaults.
	errutil.Check(conf.Process(cfg))

	err := conf.ParseFlags()
	if err != nil {
		logrus.Errorf("Cannot parse flags: %q", err.Error())
		os.Exit(ExUsage)
	}
	logrus.SetLevel(conf.LogLevel())
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05.100"})

	// Reads parsed values.
	errutil.Check(conf.Process(cfg))

	if cfg.DumpConfig {
		fmt.Println(conf.DumpConfig())
		os.Exit(0)
	}

	if cfg.Sweep == "" {
		logrus.Errorf("Sweep file is required, use --sweep or PARAMCOMP_SWEEP")
		os.Exit(ExUsage)
	}
}
