package cli

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/npillmayer/rpn"
	"github.com/npillmayer/schuko/schukonf/koanfadapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// loadConfig is a callback function used by cobra's initialization mechanism.
// Unfortunately we're not allowed a return value.
func loadConfig() {
	k := koanf.New(".") // '.' is hierarchy delimiter
	// We locate rpn configuration with an application-key of 'RPN' and
	// use NestedText-format (nt) for config-files
	konf := koanfadapter.New(k, "RPN", []string{"nt"})
	konf.InitDefaults()
	if err := mergeFlags(konf); err != nil {
		tracing.Errorf(err.Error())
		rpn.Exit(1)
	}
	if err := configureTracing(konf); err != nil {
		tracing.Errorf(err.Error())
		rpn.Exit(1)
	}
	rpn.Configuration = k // push the configuration to app-global scope
}

// mergeFlags overlays command line flags over configuration file values.
// Flags not given on the command line only provide defaults.
func mergeFlags(konf *koanfadapter.KConf) error {
	flags := rootCmd.PersistentFlags()
	err := konf.Koanf().Load(posflag.Provider(flags, ".", konf.Koanf()), nil)
	if err != nil {
		return err
	}
	if logname := konf.GetString("logfile"); logname != "" && logname != "stderr" {
		if strings.Contains(logname, ":/") {
			konf.Set("tracing.destination", logname)
		} else {
			konf.Set("tracing.destination", "file://"+logname)
		}
	}
	return nil
}

func configureTracing(konf *koanfadapter.KConf) error {
	if a := konf.GetString("tracing.adapter"); a != "" && a != "go" {
		tracing.Errorf("tracing adapter type '%s' currently not supported", a)
	}
	konf.Set("tracing.adapter", "go") // use Go builtin logging facilities
	paths := locateLogFile()
	if dest := konf.GetString("tracing.destination"); dest != "" {
		if !strings.Contains(dest, ":") && paths.LogDir() != "" {
			dest = "file://" + paths.LogDir() + "/" + dest
			konf.Set("tracing.destination", dest)
		}
		tracer().Debugf("tracing destination is %q", dest)
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(konf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

func locateLogFile() AppPaths {
	paths, err := DefaultAppPaths("RPN")
	if err != nil {
		tracing.Errorf("cannot configure paths: %v", err)
	}
	return paths
}
