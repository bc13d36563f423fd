package config

type AppConfig struct {
	Night NightConfig
	Log   LogConfig
}

func LoadApp() (AppConfig, error) {
	logCfg, err := LoadLog()
	if err != nil {
		return AppConfig{}, err
	}
	nightCfg, err := LoadNight()
	if err != nil {
		return AppConfig{}, err
	}
	return AppConfig{
		Night: nightCfg,
		Log:   logCfg,
	}, nil
}
