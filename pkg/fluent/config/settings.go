package config

// Settings holds the flags that can come from outside the process, e.g. a
// config file or environment decoded by viper.
type Settings struct {
	Debugging bool `mapstructure:"debugging"`
	Logging   bool `mapstructure:"logging"`
}

// Apply copies s into cfg and returns cfg
func (s Settings) Apply(cfg *Configuration) *Configuration {
	return cfg.SetDebugging(s.Debugging).SetLogging(s.Logging)
}
