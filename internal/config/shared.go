package config

import "fmt"

// --- Shared Configs ---

type TableConfig struct {
	StartBalance int64   `env:"ROULETTE_START_BALANCE" envDefault:"1000" validate:"gt=0"`
	SavingsRate  float64 `env:"ROULETTE_SAVINGS_RATE" envDefault:"0.01" validate:"gte=0,lte=1"`
	Seed         int64   `env:"ROULETTE_SEED" envDefault:"0"` // 0 seeds from the clock
}

type DatabaseConfig struct {
	Driver string `env:"DB_DRIVER" envDefault:"sqlite" validate:"oneof=sqlite postgres none"`
	DSN    string `env:"DB_DSN" envDefault:"file::memory:?cache=shared"`
}

// Enabled reports whether bet history should be recorded at all
func (c DatabaseConfig) Enabled() bool {
	return c.Driver != "none"
}

type RedisConfig struct {
	Host string `env:"REDIS_HOST" envDefault:"localhost"`
	Port string `env:"REDIS_PORT" envDefault:"6379"`
}

// Addr returns host:port
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	Format string `env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json console"`
	File   string `env:"LOG_FILE" envDefault:"logs/roulette/roulette.log" validate:"required"`
}
