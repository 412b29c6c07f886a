// Package environment defines the application environment type used to pick
// runtime defaults such as log level and format.
//
//	var cfg struct {
//		Env environment.Environment `env:"APP_ENV" envDefault:"development"`
//	}
//	config.MustLoad(&cfg)
//	if cfg.Env.IsProduction() { ... }
package environment
