package config

// Config contains the playground configuration, read from PG_* env variables.
type Config struct {
	Greeting  string `mapstructure:"greeting"`
	Instances int
}

func (c *Config) ApplyDefault() {
	if c.Greeting == "" {
		c.Greeting = "hello"
	}
	if c.Instances == 0 {
		c.Instances = 3
	}
}
