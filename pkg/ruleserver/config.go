package ruleserver

import "time"

type Config struct {
	Addr            string        `env:"FORMRULES_HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"FORMRULES_HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"FORMRULES_HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"FORMRULES_HTTP_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"FORMRULES_HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	MaxBody         int64         `env:"FORMRULES_MAX_BODY" envDefault:"1048576"` // MaxBody caps the size of a validate request body in bytes.
}

// NewFromConfig creates a new Server from the provided Config.
// Only non-zero values from the config are applied. MaxBody is a handler
// setting, see WithMaxBodySize.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	configOpts := make([]Option, 0, 5+len(opts))

	if cfg.Addr != "" {
		configOpts = append(configOpts, WithAddr(cfg.Addr))
	}
	if cfg.ReadTimeout > 0 {
		configOpts = append(configOpts, WithReadTimeout(cfg.ReadTimeout))
	}
	if cfg.WriteTimeout > 0 {
		configOpts = append(configOpts, WithWriteTimeout(cfg.WriteTimeout))
	}
	if cfg.IdleTimeout > 0 {
		configOpts = append(configOpts, WithIdleTimeout(cfg.IdleTimeout))
	}
	if cfg.ShutdownTimeout > 0 {
		configOpts = append(configOpts, WithShutdownTimeout(cfg.ShutdownTimeout))
	}

	return New(append(configOpts, opts...)...)
}
