package config

import "github.com/caarlos0/env/v11"

type NightConfig struct {
	AliasesPath string `env:"POKER_ALIASES_PATH"`
	LogDir      string `env:"POKER_LOG_DIR" envDefault:"."`
	OutputPath  string `env:"POKER_OUTPUT_PATH"`

	CheckConservation bool `env:"POKER_CHECK_CONSERVATION" envDefault:"true"`
	ShowEventPoints   bool `env:"POKER_SHOW_EVENT_POINTS" envDefault:"false"`
}

func LoadNight() (NightConfig, error) {
	var cfg NightConfig
	err := env.Parse(&cfg)
	return cfg, err
}
