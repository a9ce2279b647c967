package config

import "github.com/caarlos0/env/v11"

// Config collects every runtime knob from the environment. Defaults are
// local-friendly: the service boots against a local DynamoDB with no setup.
//
// The two price thresholds drive the approval workflow and are injected into
// the use case constructor, never read ambiently.
type Config struct {
	Port int `env:"PORT" envDefault:"8080"`

	AWSRegion          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint   string `env:"DYNAMODB_ENDPOINT"`

	ProductsTable      string `env:"PRODUCTS_TABLE" envDefault:"products"`
	ApprovalQueueTable string `env:"APPROVAL_QUEUE_TABLE" envDefault:"approval_queue"`

	MaxAutoApprovePrice float64 `env:"MAX_AUTO_APPROVE_PRICE" envDefault:"5000"`
	MaxProductPrice     float64 `env:"MAX_PRODUCT_PRICE" envDefault:"10000"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	return env.ParseAs[Config]()
}
