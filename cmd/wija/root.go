package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dd0wney/wija/pkg/config"
	"github.com/dd0wney/wija/pkg/genealogy"
	"github.com/dd0wney/wija/pkg/logging"
	"github.com/dd0wney/wija/pkg/lontara"
	"github.com/dd0wney/wija/pkg/metrics"
)

// app carries the state shared by every subcommand once the root command
// has loaded the configuration.
type app struct {
	// global flags
	configPath  string
	logLevel    string
	dumpMetrics bool

	cfg     *config.Config
	logger  logging.Logger
	metrics *metrics.Registry
	engine  *lontara.Engine
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "wija",
		Short: "Lontara transliteration and family generation tools",
		Long: `wija renders Latin names in Lontara, the Buginese-Makassarese script,
and counts generations in family trees from a root ancestor.

Configuration is read from --config, then .env, then WIJA_* variables.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !a.dumpMetrics || a.metrics == nil {
				return nil
			}
			a.metrics.UpdateSystemMetrics()
			return a.metrics.WriteText(cmd.ErrOrStderr())
		},
	}

	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&a.dumpMetrics, "metrics", false, "print Prometheus metrics to stderr after the command")

	root.AddCommand(
		newTransliterateCmd(a),
		newChartCmd(a),
		newGenerationCmd(a),
		newStatsCmd(a),
		newTUICmd(a),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	a.logger = logging.NewJSONLogger(cmd.ErrOrStderr(), logging.ParseLevel(cfg.LogLevel)).
		With(logging.Component("cli"), logging.Operation(cmd.Name()))
	a.metrics = metrics.NewRegistry()

	engine, err := lontara.NewEngine(lontara.EngineOptions{
		CacheSize: cfg.CacheSize,
		Logger:    a.logger,
		Metrics:   a.metrics,
	})
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}
	a.engine = engine

	a.logger.Debug("configuration loaded",
		logging.Path(a.configPath),
		logging.String("locale", cfg.Locale),
		logging.String("script", cfg.Script),
		logging.Int("cache_size", cfg.CacheSize),
	)
	return nil
}

// displayOptions resolves script and layout overrides against the config
func (a *app) displayOptions(script, layout string) lontara.DisplayOptions {
	return lontara.DisplayOptions{
		Mode:   lontara.ParseScriptMode(firstNonEmpty(script, a.cfg.Script)),
		Layout: lontara.ParseLayout(firstNonEmpty(layout, a.cfg.Layout)),
	}
}

func (a *app) locale(override string) (genealogy.Locale, error) {
	return genealogy.ParseLocale(firstNonEmpty(override, a.cfg.Locale))
}

// renderName shows a person's name in the configured scripts, preferring a
// hand-written Lontara spelling when the record carries one.
func (a *app) renderName(p genealogy.Person, opts lontara.DisplayOptions) string {
	name := p.DisplayName()
	opts.CustomLontara = p.LontaraName
	if opts.CustomLontara == "" && opts.Mode != lontara.ScriptLatin {
		opts.CustomLontara = a.engine.Transliterate(name).Lontara
	}
	return lontara.Render(name, opts)
}

// loadFamily reads the family named by the flag or the config
func (a *app) loadFamily(path string) (*genealogy.Family, error) {
	path = firstNonEmpty(path, a.cfg.Family)
	if path == "" {
		return nil, fmt.Errorf("no family file: pass --family or set %s", config.EnvFamily)
	}

	timer := logging.StartTimer(a.logger, "load family", logging.Path(path))
	family, err := genealogy.LoadFamily(path)
	if err != nil {
		timer.EndError(err)
		return nil, err
	}
	timer.End(logging.Count(len(family.Persons)))

	dangling := family.DanglingReferences()
	for _, id := range dangling {
		a.logger.Warn("relationship points to unknown person", logging.PersonID(id), logging.Path(path))
	}

	stats := genealogy.ComputeStats(family.Persons)
	a.metrics.UpdateFamilyMetrics(stats.Total, stats.Generations, len(dangling))
	return family, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
