package remote

import "time"

// Config holds the settings for the remote model server.
type Config struct {
	URL        string        `env:"MODEL_URL,required"`                        // Base URL of the model server, e.g. "http://localhost:8501".
	Name       string        `env:"MODEL_NAME" envDefault:"name_generator"`    // Served model name.
	StateWidth int           `env:"MODEL_STATE_WIDTH" envDefault:"64"`         // Width of each recurrent state row.
	Timeout    time.Duration `env:"MODEL_TIMEOUT" envDefault:"10s"`            // Per-request timeout.
	Input      string        `env:"MODEL_INPUT_TENSOR" envDefault:"input_chars"`
	HiddenIn   string        `env:"MODEL_HIDDEN_IN_TENSOR" envDefault:"input_state_h"`
	CellIn     string        `env:"MODEL_CELL_IN_TENSOR" envDefault:"input_state_c"`
	Probs      string        `env:"MODEL_PROBS_TENSOR" envDefault:"probs"`
	HiddenOut  string        `env:"MODEL_HIDDEN_OUT_TENSOR" envDefault:"state_h"`
	CellOut    string        `env:"MODEL_CELL_OUT_TENSOR" envDefault:"state_c"`
}

func (c Config) withDefaults() Config {
	if c.Name == "" {
		c.Name = "name_generator"
	}
	if c.StateWidth == 0 {
		c.StateWidth = 64
	}
	if c.Timeout == 0 {
		c.Timeout = 10 * time.Second
	}
	for _, f := range []struct {
		v   *string
		def string
	}{
		{&c.Input, "input_chars"},
		{&c.HiddenIn, "input_state_h"},
		{&c.CellIn, "input_state_c"},
		{&c.Probs, "probs"},
		{&c.HiddenOut, "state_h"},
		{&c.CellOut, "state_c"},
	} {
		if *f.v == "" {
			*f.v = f.def
		}
	}
	return c
}
