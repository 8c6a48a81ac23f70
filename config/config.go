package config

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config ...
type Config struct {
	Server   ServerConfig     `mapstructure:"server"`
	Log      LogConfig        `mapstructure:"log"`
	MySQL    MySQLConfig      `mapstructure:"mysql"`
	Memcache MemcacheConfig   `mapstructure:"memcache"`
	Redis    RedisConfig      `mapstructure:"redis"`
	AMQP     AMQPConfig       `mapstructure:"amqp"`
	Jaeger   JaegerConfig     `mapstructure:"jaeger"`
	Engine   EngineConfig     `mapstructure:"engine"`
	Template []TemplateConfig `mapstructure:"templates"`
}

// TemplateConfig is one localized notification template, rendered with text/template
type TemplateConfig struct {
	CardType string `mapstructure:"card_type"`
	Language string `mapstructure:"language"`
	Title    string `mapstructure:"title"`
	Body     string `mapstructure:"body"`
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			GRPC: ServerListen{Host: "localhost", Port: 10080},
			HTTP: ServerListen{Host: "localhost", Port: 10088},
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "json",
		},
		Memcache: MemcacheConfig{
			NumConns:       1,
			TTL:            0,
			LocalCacheSize: 8 * 1024 * 1024,
		},
		Engine: DefaultEngineConfig(),
	}
}

// Load loads config.yml from the working directory, env variables override it
func Load() Config {
	return loadConfig(".", "config")
}

// LoadTestConfig ...
func LoadTestConfig(rootDir string) Config {
	return loadConfig(rootDir, "config.test")
}

func loadConfig(dir string, name string) Config {
	// .env is optional
	_ = godotenv.Load(path.Join(dir, ".env"))

	vip := viper.New()
	vip.SetConfigName(name)
	vip.SetConfigType("yml")
	vip.AddConfigPath(dir)

	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vip.AutomaticEnv()

	err := vip.ReadInConfig()
	if err != nil {
		panic(err)
	}

	conf := defaultConfig()
	err = vip.Unmarshal(&conf)
	if err != nil {
		panic(err)
	}

	if err := conf.Validate(); err != nil {
		panic(err)
	}
	return conf
}

// Validate ...
func (c Config) Validate() error {
	e := c.Engine
	if e.SweepWorkers <= 0 {
		return fmt.Errorf("engine.sweep_workers must be positive")
	}
	if e.SweepBatchSize <= 0 {
		return fmt.Errorf("engine.sweep_batch_size must be positive")
	}
	if e.MaxResends < 0 {
		return fmt.Errorf("engine.max_resends must not be negative")
	}
	if e.ResendToleranceSlots < 0 {
		return fmt.Errorf("engine.resend_tolerance_slots must not be negative")
	}
	if e.SlotSize < time.Minute || (24*60)%int(e.SlotSize.Minutes()) != 0 {
		return fmt.Errorf("engine.slot_size must divide a day")
	}
	if _, err := parseDecimal(e.DefaultFirstActionReward); err != nil {
		return fmt.Errorf("engine.default_first_action_reward: %w", err)
	}
	return nil
}
