package config

import "time"

// Config holds application configuration.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`

	// PerDealerCap bounds the number of candidates taken from one storefront.
	PerDealerCap int `env:"PER_DEALER_CAP" envDefault:"200"`
	// GlobalCap bounds the number of candidates processed in one run, 0 disables it.
	GlobalCap int `env:"GLOBAL_CAP" envDefault:"0"`
	// CandidateWorkers is the number of concurrent candidate workers per dealer.
	CandidateWorkers int `env:"CANDIDATE_WORKERS" envDefault:"4"`
	// PaceDelay is the minimum spacing between storefront page fetches.
	PaceDelay time.Duration `env:"PACE_DELAY" envDefault:"500ms"`

	PageTimeout time.Duration `env:"PAGE_TIMEOUT" envDefault:"30s"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`

	MetricsAddr string `env:"METRICS_ADDR" envDefault:""`

	RabbitMQ RabbitMQ
	Bucket   Bucket
	Images   Images
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL      string `env:"RABBITMQ_URL"`
	Exchange string `env:"RABBITMQ_EXCHANGE" envDefault:"dealersync-ex"`
	Queue    string `env:"RABBITMQ_QUEUE" envDefault:"dealersync.commands"`
}

// Bucket holds object storage configuration.
type Bucket struct {
	Endpoint      string `env:"BUCKET_ENDPOINT"`
	AccessKey     string `env:"BUCKET_ACCESS_KEY"`
	SecretKey     string `env:"BUCKET_SECRET_KEY"`
	UseSSL        bool   `env:"BUCKET_USE_SSL" envDefault:"true"`
	Name          string `env:"BUCKET_NAME" envDefault:"listing-images"`
	PublicBaseURL string `env:"BUCKET_PUBLIC_BASE_URL"`
}

// Images holds image standardization configuration.
type Images struct {
	Width     int           `env:"IMAGE_WIDTH" envDefault:"1280"`
	Height    int           `env:"IMAGE_HEIGHT" envDefault:"960"`
	Quality   int           `env:"IMAGE_QUALITY" envDefault:"85"`
	MaxImages int           `env:"IMAGE_MAX_PER_LISTING" envDefault:"20"`
	Workers   int           `env:"IMAGE_WORKERS" envDefault:"4"`
	Timeout   time.Duration `env:"IMAGE_TIMEOUT" envDefault:"20s"`
}
