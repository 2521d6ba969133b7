package audio

// Config controls audio output
type Config struct {
	Enabled      bool    `yaml:"enabled"`
	SampleRate   int     `yaml:"sample_rate"`
	MasterVolume float64 `yaml:"master_volume"`
	// PanDistance is the lateral listener-space distance giving a full pan
	PanDistance float64 `yaml:"pan_distance"`
}

// DefaultConfig returns the default audio configuration
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		SampleRate:   48000,
		MasterVolume: 0.5,
		PanDistance:  4096,
	}
}

// Normalize clamps the volume and restores defaults for unusable values
func (c Config) Normalize() Config {
	d := DefaultConfig()
	if c.SampleRate <= 0 {
		c.SampleRate = d.SampleRate
	}
	if c.PanDistance <= 0 {
		c.PanDistance = d.PanDistance
	}
	if c.MasterVolume < 0 {
		c.MasterVolume = 0
	}
	if c.MasterVolume > 1 {
		c.MasterVolume = 1
	}
	return c
}
