package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App      AppConfig
	Remote   RemoteConfig
	Shop     ShopConfig
	Workflow WorkflowConfig
	Payments PaymentsConfig
}

// Load reads the configuration from the environment. Every field falls back to the
// bare variable name in its envconfig tag (e.g. AWS_REGION).
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Shop.HourlyRate < 0 {
		return nil, fmt.Errorf("parsing config: SHOP_HOURLY_RATE must not be negative")
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"APP_ENV" default:"dev"`
	Port         string `envconfig:"PORT" default:"8080"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat    string `envconfig:"LOG_FORMAT" default:"json"`
	LogWarnStack bool   `envconfig:"LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

// RemoteConfig holds the DynamoDB connection parameters.
//
// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
type RemoteConfig struct {
	Disabled         bool          `envconfig:"REMOTE_STORE_DISABLED" default:"false"`
	Region           string        `envconfig:"AWS_REGION"`
	Endpoint         string        `envconfig:"DYNAMODB_ENDPOINT"`
	AccessKeyID      string        `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	SecretAccessKey  string        `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	OrdersTable      string        `envconfig:"REPAIR_ORDERS_TABLE" default:"repair_orders"`
	InventoryTable   string        `envconfig:"INVENTORY_TABLE" default:"master_inventory"`
	BootstrapTimeout time.Duration `envconfig:"REMOTE_BOOTSTRAP_TIMEOUT" default:"15s"`
}

// Configured reports whether enough connection parameters are present to attempt
// connected mode.
func (r RemoteConfig) Configured() bool {
	if r.Disabled {
		return false
	}
	return strings.TrimSpace(r.Region) != "" || strings.TrimSpace(r.Endpoint) != ""
}

type ShopConfig struct {
	CompanyName  string  `envconfig:"SHOP_COMPANY_NAME" default:"Mecanica XPTO"`
	LogoURL      string  `envconfig:"SHOP_LOGO_URL"`
	PrimaryColor string  `envconfig:"SHOP_PRIMARY_COLOR" default:"#d97706"`
	HourlyRate   float64 `envconfig:"SHOP_HOURLY_RATE" default:"120"`
}

type WorkflowConfig struct {
	StrictTransitions bool `envconfig:"WORKFLOW_STRICT_TRANSITIONS" default:"false"`
	// SimulateWhenUnconfigured starts straight into simulated mode instead of
	// waiting for the operator to pick it after an uplink failure.
	SimulateWhenUnconfigured bool `envconfig:"SIMULATE_WHEN_UNCONFIGURED" default:"false"`
}

type PaymentsConfig struct {
	MercadoPagoAccessToken string `envconfig:"MERCADOPAGO_ACCESS_TOKEN"`
	GatewayMock            string `envconfig:"PAYMENT_GATEWAY_MOCK"`
	// Sandbox payer used when a request carries neither payer.id nor payer.email.
	TestPayerEmail  string `envconfig:"MERCADOPAGO_TEST_PAYER_EMAIL"`
	TestPayerUserID string `envconfig:"MERCADOPAGO_TEST_PAYER_USER_ID"`
}

// Sandbox reports whether the access token belongs to a Mercado Pago test account.
func (p PaymentsConfig) Sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(p.MercadoPagoAccessToken), "TEST-")
}

// MockEnabled accepts the same truthy spellings the payment scripts use.
func (p PaymentsConfig) MockEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(p.GatewayMock)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
