package commons

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"pizzada/internal/config"
)

// fileConfig espelha config.Config com tipos amigáveis para YAML
// (durações como string, ex.: "5m").
type fileConfig struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		User            string `yaml:"user"`
		Password        string `yaml:"password"`
		Name            string `yaml:"name"`
		MaxOpenConns    int    `yaml:"max_open_conns"`
		MaxIdleConns    int    `yaml:"max_idle_conns"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime"`
	} `yaml:"database"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Token struct {
		SymmetricKey  string `yaml:"symmetric_key"`
		ExpireMinutes int    `yaml:"expire_minutes"`
	} `yaml:"token"`
	Order struct {
		ShippingValue float64 `yaml:"shipping_value"`
	} `yaml:"order"`
}

func LoadConfig(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	connMaxLifetime := 5 * time.Minute
	if fc.Database.ConnMaxLifetime != "" {
		connMaxLifetime, err = time.ParseDuration(fc.Database.ConnMaxLifetime)
		if err != nil {
			return nil, fmt.Errorf("parsing database.conn_max_lifetime: %w", err)
		}
	}

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port: fc.Server.Port,
		},
		Database: config.DatabaseConfig{
			Host:            fc.Database.Host,
			Port:            fc.Database.Port,
			User:            fc.Database.User,
			Password:        fc.Database.Password,
			Name:            fc.Database.Name,
			MaxOpenConns:    fc.Database.MaxOpenConns,
			MaxIdleConns:    fc.Database.MaxIdleConns,
			ConnMaxLifetime: connMaxLifetime,
		},
		Log: config.LogConfig{
			Level:  fc.Log.Level,
			Format: fc.Log.Format,
		},
		Token: config.TokenConfig{
			SymmetricKey:  fc.Token.SymmetricKey,
			ExpireMinutes: fc.Token.ExpireMinutes,
		},
		Order: config.OrderConfig{
			ShippingValue: fc.Order.ShippingValue,
		},
	}

	return cfg, nil
}
