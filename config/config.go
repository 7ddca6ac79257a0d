package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "STOREFRONT_CONFIG_FILE"

type catalog struct {
	SourceURL        string        `mapstructure:"source_url"`
	FetchTimeout     time.Duration `mapstructure:"fetch_timeout"`
	PlaceholderImage string        `mapstructure:"placeholder_image"`
}

type filter struct {
	MaxPrice float64 `mapstructure:"max_price"`
}

type featured struct {
	TopPerBrand int `mapstructure:"top_per_brand"`
	SlideSize   int `mapstructure:"slide_size"`
}

type topics struct {
	CartEvents string `mapstructure:"cart_events"`
}

type broker struct {
	SeedBrokers        []string `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string `mapstructure:"schema_registry_urls"`
	Topics             topics   `mapstructure:"topics"`
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	Catalog        catalog    `mapstructure:"catalog"`
	Filter         filter     `mapstructure:"filter"`
	Featured       featured   `mapstructure:"featured"`
	Broker         broker     `mapstructure:"broker"`
}

func Load() Config {
	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	cfg.normalize()

	return cfg
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c *Config) normalize() {
	if c.Catalog.FetchTimeout == 0 {
		c.Catalog.FetchTimeout = 15 * time.Second
	}
	if c.Filter.MaxPrice == 0 {
		c.Filter.MaxPrice = 200000
	}
	if c.Featured.TopPerBrand == 0 {
		c.Featured.TopPerBrand = 2
	}
	if c.Featured.SlideSize == 0 {
		c.Featured.SlideSize = 3
	}
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q

	Catalog:
	SourceURL=%q
	FetchTimeout=%q
	PlaceholderImage=%q

	Filter:
	MaxPrice=%v

	Featured:
	TopPerBrand=%d
	SlideSize=%d

	BrokerConfig:
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	Topics:
		CartEvents=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.Catalog.SourceURL,
		c.Catalog.FetchTimeout,
		c.Catalog.PlaceholderImage,
		c.Filter.MaxPrice,
		c.Featured.TopPerBrand,
		c.Featured.SlideSize,
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		c.Broker.Topics.CartEvents,
	)
}
