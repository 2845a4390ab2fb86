package config

import "fmt"

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host             string `mapstructure:"host"`
	Port             int    `mapstructure:"port"`
	Username         string `mapstructure:"username"`
	Password         string `mapstructure:"password"`
	Database         string `mapstructure:"database"`
	MaxIdleConns     int    `mapstructure:"max_idle_conns"`
	MaxOpenConns     int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime  int    `mapstructure:"conn_max_lifetime"`
	OpTimeoutSeconds int    `mapstructure:"op_timeout_seconds"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// BotConfig holds the bot lifecycle constants. The defaults mirror what the
// simulation expects for a freshly bankrupted airline.
type BotConfig struct {
	StartingBalance   int64   `mapstructure:"starting_balance"`
	ServiceQuality    float64 `mapstructure:"service_quality"`
	ModelPriceCeiling int64   `mapstructure:"model_price_ceiling"`
	MaxFleetSize      int     `mapstructure:"max_fleet_size"`
	CountryMapPath    string  `mapstructure:"country_map_path"`
	TriggerDir        string  `mapstructure:"trigger_dir"`
}
