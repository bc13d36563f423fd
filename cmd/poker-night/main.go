package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"poker-night/internal/config"
	"poker-night/internal/identity"
	"poker-night/internal/logging"
	"poker-night/internal/night"
)

// options are the night settings after flags have been applied on top of
// the environment.
type options struct {
	aliasesPath       string
	outputPath        string
	checkConservation bool
	showEventPoints   bool
}

func main() {
	cfg, err := config.LoadApp()
	if err != nil {
		panic(err)
	}
	if err := logging.Init(cfg.Log); err != nil {
		panic(err)
	}
	if err := newRootCmd(cfg.Night).ExecuteContext(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("poker-night failed")
	}
}

func newRootCmd(cfg config.NightConfig) *cobra.Command {
	opts := &options{
		aliasesPath:       cfg.AliasesPath,
		outputPath:        cfg.OutputPath,
		checkConservation: cfg.CheckConservation,
		showEventPoints:   cfg.ShowEventPoints,
	}
	root := &cobra.Command{
		Use:           "poker-night",
		Short:         "Rebuild profit history and play stats from poker room exports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(os.Stdout)

	pf := root.PersistentFlags()
	pf.StringVar(&opts.aliasesPath, "aliases", opts.aliasesPath, "YAML alias table (built-in table when empty)")
	pf.StringVarP(&opts.outputPath, "output", "o", opts.outputPath, "write the profit series as JSON to this file")
	pf.BoolVar(&opts.checkConservation, "check-conservation", opts.checkConservation, "warn when a session does not net to zero")
	pf.BoolVar(&opts.showEventPoints, "points", opts.showEventPoints, "mark every ledger point in the exported chart")

	root.AddCommand(newSessionCmd(opts), newAllCmd(opts, cfg.LogDir))
	return root
}

func (o *options) runner() (*night.Runner, error) {
	aliases, err := identity.LoadAliases(o.aliasesPath)
	if err != nil {
		return nil, err
	}
	norm := identity.NewNormalizer(aliases)
	log.Debug().Int("aliases", norm.Len()).Msg("alias table loaded")
	return night.NewRunner(norm, o.checkConservation, log.Logger), nil
}
