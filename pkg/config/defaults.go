package config

// ApplyDefaults fills FaultLogConfig defaults.
func (c *FaultLogConfig) ApplyDefaults() {
	if c.Dir == "" {
		c.Dir = "./logs"
	}
	if c.Filename == "" {
		c.Filename = "faults"
	}
	if c.MaxAgeDays <= 0 {
		c.MaxAgeDays = 7
	}
}

// ApplyDefaults fills AlertConfig defaults.
func (c *AlertConfig) ApplyDefaults() {
	if c.MinSeverity == "" {
		c.MinSeverity = "high"
	}
	if c.DedupWindow <= 0 {
		c.DedupWindow = 300
	}
}
