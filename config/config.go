package config

import (
	"fmt"
	"strings"

	"github.com/fadhlanhapp/sharetab-checkout/models"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix shared by every CHECKOUT_* variable
const EnvPrefix = "CHECKOUT"

type Config struct {
	App      AppConfig
	NewRelic NewRelicConfig
	Pricing  PricingConfig
}

// Load reads the configuration from the environment and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.App.Port) == "" {
		return fmt.Errorf("app port required")
	}
	if err := c.Pricing.Policy().Validate(); err != nil {
		return fmt.Errorf("pricing: %w", err)
	}
	return nil
}

type AppConfig struct {
	Port           string   `envconfig:"CHECKOUT_PORT" default:"8080"`
	GinMode        string   `envconfig:"CHECKOUT_GIN_MODE" default:"release"`
	LogLevel       string   `envconfig:"CHECKOUT_LOG_LEVEL" default:"info"`
	LogFormat      string   `envconfig:"CHECKOUT_LOG_FORMAT" default:"json"`
	AllowedOrigins []string `envconfig:"CHECKOUT_ALLOWED_ORIGINS" default:"*"`
}

type NewRelicConfig struct {
	AppName    string `envconfig:"NEW_RELIC_APP_NAME" default:"ShareTab Checkout"`
	LicenseKey string `envconfig:"NEW_RELIC_LICENSE_KEY"`
}

// Enabled reports whether an APM license key was supplied
func (n NewRelicConfig) Enabled() bool {
	return n.LicenseKey != ""
}

type PricingConfig struct {
	TaxRate             float64 `envconfig:"CHECKOUT_TAX_RATE" default:"0.08"`
	MemberDiscountRate  float64 `envconfig:"CHECKOUT_MEMBER_DISCOUNT_RATE" default:"0.05"`
	CouponDiscountRate  float64 `envconfig:"CHECKOUT_COUPON_DISCOUNT_RATE" default:"0.15"`
	BigSpenderDiscount  float64 `envconfig:"CHECKOUT_BIG_SPENDER_DISCOUNT" default:"10"`
	BigSpenderThreshold float64 `envconfig:"CHECKOUT_BIG_SPENDER_THRESHOLD" default:"100"`
	CurrencySymbol      string  `envconfig:"CHECKOUT_CURRENCY_SYMBOL" default:"$"`
	CouponAfterTax      bool    `envconfig:"CHECKOUT_COUPON_AFTER_TAX" default:"false"`
}

// Policy converts the pricing configuration into a cart policy
func (p PricingConfig) Policy() models.Policy {
	stage := models.CouponBeforeTax
	if p.CouponAfterTax {
		stage = models.CouponAfterTax
	}
	return models.Policy{
		TaxRate:                p.TaxRate,
		MemberDiscountRate:     p.MemberDiscountRate,
		CouponDiscountRate:     p.CouponDiscountRate,
		BigSpenderFlatDiscount: p.BigSpenderDiscount,
		BigSpenderThreshold:    p.BigSpenderThreshold,
		CurrencySymbol:         p.CurrencySymbol,
		CouponStage:            stage,
	}
}
