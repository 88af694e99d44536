package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
)

// Config aggregates every setting the service reads from the environment.
type Config struct {
	Server ServerConfig
	AI     AIConfig
	Verify VerifyConfig
	DaData DaDataConfig
	SMTP   SMTPConfig
	Drafts DraftsConfig
}

// Load builds the full configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	ai, err := loadAIConfig()
	if err != nil {
		return nil, err
	}

	verify, err := loadVerifyConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: server,
		AI:     ai,
		Verify: verify,
		DaData: loadDaDataConfig(),
		SMTP:   loadSMTPConfig(),
		Drafts: loadDraftsConfig(),
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" as-is.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// AIConfig holds the Ark credentials shared by every model plus the
// per-agent model names. Each agent picks its own sampling temperature.
type AIConfig struct {
	APIKey    string
	AccessKey string
	SecretKey string
	BaseURL   string
	Region    string
	MaxTokens *int

	QuizModel      string
	DocumentModel  string
	RecipientModel string
	VerifyModel    string
}

// Enabled reports whether credentials are present.
func (c AIConfig) Enabled() bool {
	return c.APIKey != "" || (c.AccessKey != "" && c.SecretKey != "")
}

// NewChatModel creates one model instance for the named agent model with the
// given temperature.
func (c AIConfig) NewChatModel(ctx context.Context, modelName string, temperature float32) (model.ChatModel, error) {
	if !c.Enabled() {
		return nil, fmt.Errorf("ark credentials missing: set ARK_API_KEY or the AK/SK pair")
	}
	if modelName == "" {
		return nil, fmt.Errorf("model name is empty")
	}

	cfg := &ark.ChatModelConfig{
		BaseURL:     c.BaseURL,
		Region:      c.Region,
		APIKey:      c.APIKey,
		AccessKey:   c.AccessKey,
		SecretKey:   c.SecretKey,
		Model:       modelName,
		MaxTokens:   c.MaxTokens,
		Temperature: &temperature,
	}

	return ark.NewChatModel(ctx, cfg)
}

func loadAIConfig() (AIConfig, error) {
	maxTokens, err := parseOptionalIntEnv("ARK_MAX_TOKENS")
	if err != nil {
		return AIConfig{}, err
	}

	defaultModel := strings.TrimSpace(os.Getenv("AI_MODEL"))

	return AIConfig{
		APIKey:         strings.TrimSpace(os.Getenv("ARK_API_KEY")),
		AccessKey:      strings.TrimSpace(os.Getenv("ARK_ACCESS_KEY")),
		SecretKey:      strings.TrimSpace(os.Getenv("ARK_SECRET_KEY")),
		BaseURL:        getEnvOrDefault("ARK_BASE_URL", "https://ark.cn-beijing.volces.com/api/v3"),
		Region:         getEnvOrDefault("ARK_REGION", "cn-beijing"),
		MaxTokens:      maxTokens,
		QuizModel:      getEnvOrDefault("AI_QUIZ_MODEL", defaultModel),
		DocumentModel:  getEnvOrDefault("AI_DOCUMENT_MODEL", defaultModel),
		RecipientModel: getEnvOrDefault("AI_RECIPIENT_MODEL", defaultModel),
		VerifyModel:    getEnvOrDefault("AI_VERIFY_MODEL", defaultModel),
	}, nil
}

// VerifyConfig gates the live contact verification pass.
type VerifyConfig struct {
	Enabled bool
}

func loadVerifyConfig() (VerifyConfig, error) {
	enabled, err := parseBoolEnv("CONTACT_VERIFY_ENABLED", true)
	if err != nil {
		return VerifyConfig{}, err
	}
	return VerifyConfig{Enabled: enabled}, nil
}

// DaDataConfig holds the suggestion API key. An empty key disables the
// suggestion endpoints.
type DaDataConfig struct {
	APIKey string
}

// Enabled reports whether suggestions can be served.
func (c DaDataConfig) Enabled() bool {
	return c.APIKey != ""
}

func loadDaDataConfig() DaDataConfig {
	return DaDataConfig{APIKey: strings.TrimSpace(os.Getenv("DADATA_API_KEY"))}
}

// SMTPConfig describes the outgoing mail relay.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// Configured reports whether direct email delivery is possible.
func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.Username != "" && c.Password != ""
}

func loadSMTPConfig() SMTPConfig {
	username := strings.TrimSpace(os.Getenv("SMTP_USERNAME"))
	return SMTPConfig{
		Host:     strings.TrimSpace(os.Getenv("SMTP_HOST")),
		Port:     getEnvOrDefault("SMTP_PORT", "587"),
		Username: username,
		Password: strings.TrimSpace(os.Getenv("SMTP_PASSWORD")),
		From:     getEnvOrDefault("SMTP_FROM", username),
	}
}

// DraftsConfig points at the on-disk draft directory.
type DraftsConfig struct {
	Dir string
}

func loadDraftsConfig() DraftsConfig {
	return DraftsConfig{Dir: getEnvOrDefault("DRAFTS_DIR", "drafts")}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
