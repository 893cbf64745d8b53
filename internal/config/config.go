package config

import (
	"net/http"
	"os"
)

type Config struct {
	Printify PrintifyConfig `json:"printify"`
	Cards    CardsConfig    `json:"cards"`
}

// PrintifyConfig configures the upstream print-on-demand catalog client.
// An empty Token means the storefront runs entirely on the mock catalog.
type PrintifyConfig struct {
	Token   string `json:"token"`
	ShopID  string `json:"shop_id"`
	BaseURL string `json:"base_url"`

	// HTTPClient overrides the default client, mainly for tests.
	HTTPClient *http.Client `json:"-"`
}

type CardsConfig struct {
	FromName    string `json:"from_name"`
	FromAddress string `json:"from_address"`
	SendGridKey string `json:"sendgrid_key"`
}

func Load() (*Config, error) {
	config := &Config{
		Printify: PrintifyConfig{
			Token:   os.Getenv("PRINTIFY_API_TOKEN"),
			ShopID:  os.Getenv("PRINTIFY_SHOP_ID"),
			BaseURL: os.Getenv("PRINTIFY_BASE_URL"),
		},
		Cards: CardsConfig{
			FromName:    getEnvOrDefault("CARDS_FROM_NAME", "Soapbox"),
			FromAddress: getEnvOrDefault("CARDS_FROM_ADDRESS", "cards@soapbox.example"),
			SendGridKey: os.Getenv("SENDGRID_API_KEY"),
		},
	}

	return config, nil
}

// HasUpstream reports whether upstream catalog credentials are configured.
func (c *Config) HasUpstream() bool {
	return c.Printify.Token != "" && c.Printify.ShopID != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
