// Package config loads environment variables into tagged structs.
//
// Struct fields use github.com/caarlos0/env tags:
//
//	type Config struct {
//	    Addr    string        `env:"HTTP_ADDR" envDefault:":8080"`
//	    Timeout time.Duration `env:"MODEL_TIMEOUT" envDefault:"10s"`
//	    URL     string        `env:"MODEL_URL,required"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// The first call to Load reads a .env file from the working directory if one
// exists; values already present in the environment win. Each struct type is
// parsed once and cached, so repeated Load calls for the same type are cheap
// and always return the same values. Tests that change the environment call
// ResetCache between cases. Parse skips the cache.
package config
