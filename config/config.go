package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Log      LogConfig      `mapstructure:"log"`
	Chain    ChainConfig    `mapstructure:"chain"`
	Session  SessionConfig  `mapstructure:"session"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string. Credentials are escaped.
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(d.SSLMode),
	}
	return u.String()
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return net.JoinHostPort(r.Host, strconv.Itoa(r.Port))
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// ChainConfig describes the single chain this instance composes transactions for.
type ChainConfig struct {
	ID             string        `mapstructure:"id"` // genesis hash
	Name           string        `mapstructure:"name"`
	AddressPrefix  uint16        `mapstructure:"address_prefix"`
	AssetSymbol    string        `mapstructure:"asset_symbol"`
	AssetPrecision int32         `mapstructure:"asset_precision"`
	SidecarURL     string        `mapstructure:"sidecar_url"`
	EncoderURL     string        `mapstructure:"encoder_url"`
	EraPeriod      uint64        `mapstructure:"era_period"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	ConstantsTTL   time.Duration `mapstructure:"constants_ttl"`
}

type SessionConfig struct {
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: TXC_.
// Nested keys use underscore: TXC_DATABASE_HOST, TXC_CHAIN_SIDECAR_URL, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "wallets")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "tx-composer")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("chain.id", "0xe143f23803ac50e8f6f8e62695d1ce9e4e1d68aa36c1cd2cfd15340213f3423e")
	v.SetDefault("chain.name", "Westend")
	v.SetDefault("chain.address_prefix", 42)
	v.SetDefault("chain.asset_symbol", "WND")
	v.SetDefault("chain.asset_precision", 12)
	v.SetDefault("chain.sidecar_url", "http://localhost:8081")
	v.SetDefault("chain.encoder_url", "http://localhost:8082")
	v.SetDefault("chain.era_period", 64)
	v.SetDefault("chain.request_timeout", "10s")
	v.SetDefault("chain.constants_ttl", "1h")
	v.SetDefault("session.ttl", "30m")
	v.SetDefault("session.cleanup_interval", "5m")

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: TXC_DATABASE_HOST -> database.host
	v.SetEnvPrefix("TXC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

const (
	minJWTSecretLen   = 32
	maxAssetPrecision = 38
	minEraPeriod      = 4
	maxEraPeriod      = 1 << 16
)

// Validate reports every problem of the loaded configuration at once.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Mode == "release" && len(c.JWT.Secret) < minJWTSecretLen {
		errs = append(errs, fmt.Errorf("jwt.secret must be at least %d bytes in release mode", minJWTSecretLen))
	}
	if !isGenesisHash(c.Chain.ID) {
		errs = append(errs, fmt.Errorf("chain.id %q is not a 0x-prefixed 32 byte hash", c.Chain.ID))
	}
	if c.Chain.AssetPrecision < 0 || c.Chain.AssetPrecision > maxAssetPrecision {
		errs = append(errs, fmt.Errorf("chain.asset_precision must be within [0, %d]", maxAssetPrecision))
	}
	for key, raw := range map[string]string{
		"chain.sidecar_url": c.Chain.SidecarURL,
		"chain.encoder_url": c.Chain.EncoderURL,
	} {
		if err := checkHTTPURL(raw); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
	}
	// Mortal eras need a power of two period.
	if p := c.Chain.EraPeriod; p < minEraPeriod || p > maxEraPeriod || p&(p-1) != 0 {
		errs = append(errs, fmt.Errorf("chain.era_period %d must be a power of two within [%d, %d]", p, minEraPeriod, maxEraPeriod))
	}
	if c.Session.TTL <= 0 {
		errs = append(errs, errors.New("session.ttl must be positive"))
	}

	return errors.Join(errs...)
}

func isGenesisHash(s string) bool {
	raw, ok := strings.CutPrefix(s, "0x")
	if !ok || len(raw) != 64 {
		return false
	}
	_, err := hex.DecodeString(raw)
	return err == nil
}

func checkHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%q is not an absolute http(s) URL", raw)
	}
	return nil
}
