package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultJWKSCacheTTL       = time.Hour
	defaultVerifyTimeout      = 3 * time.Second
	defaultAPITimeout         = 10 * time.Second

	// EnvProduction enables Secure cookies.
	EnvProduction = "production"
)

// envAliases maps the deployment environment variables onto config keys that
// the camelCase canonicalisation cannot reach on its own.
var envAliases = map[string]string{
	"AUTH_API_URL":             "authApi.url",
	"NEXT_PUBLIC_AUTH_API_URL": "authApi.publicUrl",
	"AUTH_ISSUER":              "authApi.issuer",
	"RESOURCE_API_URL":         "resourceApi.url",
	"DISCORD_CLIENT_ID":        "discord.clientId",
	"DISCORD_CLIENT_SECRET":    "discord.clientSecret",
	"DISCORD_REDIRECT_URI":     "discord.redirectUri",
}

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	AuthAPI AuthAPIConfig `json:"authApi" yaml:"authApi"`

	ResourceAPI ResourceAPIConfig `json:"resourceApi" yaml:"resourceApi"`

	Discord *DiscordConfig `json:"discord" yaml:"discord"`

	Consent ConsentConfig `json:"consent" yaml:"consent"`

	// PubSub configuration for audit event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// AuthAPIConfig points at the Auth API that owns sessions, consents and authorization requests.
type AuthAPIConfig struct {
	// URL is the server-side base URL used for /internal calls.
	URL string `json:"url" yaml:"url"`

	// PublicURL is the browser-facing base URL (consent form action, /consented redirect).
	PublicURL string `json:"publicUrl" yaml:"publicUrl"`

	// Issuer hosts /.well-known/jwks.json. Falls back to URL.
	Issuer string `json:"issuer" yaml:"issuer"`

	Timeout       time.Duration `json:"timeout" yaml:"timeout"`
	VerifyTimeout time.Duration `json:"verifyTimeout" yaml:"verifyTimeout"`
	JWKSCacheTTL  time.Duration `json:"jwksCacheTTL" yaml:"jwksCacheTTL"`
}

// ResourceAPIConfig points at the Resource API that owns users and applications.
type ResourceAPIConfig struct {
	URL     string        `json:"url" yaml:"url"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// DiscordConfig holds the OAuth client registered with Discord.
type DiscordConfig struct {
	ClientID     string   `json:"clientId" yaml:"clientId"`
	ClientSecret string   `json:"clientSecret" yaml:"clientSecret"`
	RedirectURI  string   `json:"redirectUri" yaml:"redirectUri"`
	Scopes       []string `json:"scopes" yaml:"scopes"`
}

// ConsentConfig tunes the consent engine.
type ConsentConfig struct {
	// RequireScopeSuperset only auto-consents when a stored consent covers every requested scope.
	RequireScopeSuperset bool `json:"requireScopeSuperset" yaml:"requireScopeSuperset"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// IsProduction reports whether cookies must carry the Secure attribute.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env.Env, EnvProduction)
}

// DiscordEnabled reports whether identity linking with Discord is configured.
func (c *Config) DiscordEnabled() bool {
	return c.Discord != nil && c.Discord.ClientID != ""
}

// JWKSURL returns the key set location of the session JWT issuer.
func (c *Config) JWKSURL() string {
	issuer := c.AuthAPI.Issuer
	if issuer == "" {
		issuer = c.AuthAPI.URL
	}

	return strings.TrimRight(issuer, "/") + "/.well-known/jwks.json"
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return envKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings every flow depends on.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.AuthAPI.URL) == "" {
		return errors.New("authApi.url is required")
	}
	if strings.TrimSpace(c.ResourceAPI.URL) == "" {
		return errors.New("resourceApi.url is required")
	}
	if c.DiscordEnabled() && (c.Discord.ClientSecret == "" || c.Discord.RedirectURI == "") {
		return errors.New("discord.clientSecret and discord.redirectUri are required when discord.clientId is set")
	}

	return nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.AuthAPI.PublicURL == "" {
		cfg.AuthAPI.PublicURL = cfg.AuthAPI.URL
	}
	if cfg.AuthAPI.Timeout <= 0 {
		cfg.AuthAPI.Timeout = defaultAPITimeout
	}
	if cfg.AuthAPI.VerifyTimeout <= 0 {
		cfg.AuthAPI.VerifyTimeout = defaultVerifyTimeout
	}
	if cfg.AuthAPI.JWKSCacheTTL <= 0 {
		cfg.AuthAPI.JWKSCacheTTL = defaultJWKSCacheTTL
	}
	if cfg.ResourceAPI.Timeout <= 0 {
		cfg.ResourceAPI.Timeout = defaultAPITimeout
	}
	if cfg.Discord != nil && len(cfg.Discord.Scopes) == 0 {
		cfg.Discord.Scopes = []string{"identify", "email"}
	}
}

func envKey(rawKey string, existing map[string]any) string {
	if alias, ok := envAliases[strings.ToUpper(rawKey)]; ok {
		return alias
	}

	return canonicalizeEnvKey(rawKey, existing)
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
