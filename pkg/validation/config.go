package validation

import "time"

type Config struct {
	CacheTTL       time.Duration `env:"VALIDATION_CACHE_TTL" envDefault:"1h"`         // CacheTTL is how long validation results stay cached.
	LoopTTL        time.Duration `env:"VALIDATION_LOOP_TTL" envDefault:"60s"`         // LoopTTL is the loop counter expiry window.
	MaxAttempts    int64         `env:"VALIDATION_MAX_ATTEMPTS" envDefault:"5"`       // MaxAttempts is the concurrent attempt ceiling per (symbol, value) pair.
	StoreTimeout   time.Duration `env:"VALIDATION_STORE_TIMEOUT" envDefault:"50ms"`   // StoreTimeout bounds individual cache/loop-guard store calls.
	ResultCapacity int           `env:"VALIDATION_RESULT_CAPACITY" envDefault:"4096"` // ResultCapacity bounds the in-memory result cache when Redis is not used.
}

// Options converts the config into service options.
func (c Config) Options() []Option {
	opts := make([]Option, 0, 4)
	if c.CacheTTL > 0 {
		opts = append(opts, WithCacheTTL(c.CacheTTL))
	}
	if c.LoopTTL > 0 {
		opts = append(opts, WithLoopTTL(c.LoopTTL))
	}
	if c.MaxAttempts > 0 {
		opts = append(opts, WithMaxAttempts(c.MaxAttempts))
	}
	if c.StoreTimeout > 0 {
		opts = append(opts, WithStoreTimeout(c.StoreTimeout))
	}
	return opts
}
