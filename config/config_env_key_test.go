package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"authApi": map[string]any{
			"verifyTimeout": "3s",
			"jwksCacheTTL":  "1h",
		},
		"consent": map[string]any{
			"requireScopeSuperset": false,
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "AUTHAPI_VERIFYTIMEOUT", want: "authApi.verifyTimeout"},
		{envKey: "AUTHAPI_JWKSCACHETTL", want: "authApi.jwksCacheTTL"},
		{envKey: "CONSENT_REQUIRESCOPESUPERSET", want: "consent.requireScopeSuperset"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := envKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("envKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestEnvKey_DeploymentAliases(t *testing.T) {
	tests := map[string]string{
		"AUTH_API_URL":             "authApi.url",
		"NEXT_PUBLIC_AUTH_API_URL": "authApi.publicUrl",
		"AUTH_ISSUER":              "authApi.issuer",
		"RESOURCE_API_URL":         "resourceApi.url",
		"DISCORD_CLIENT_ID":        "discord.clientId",
		"DISCORD_CLIENT_SECRET":    "discord.clientSecret",
		"DISCORD_REDIRECT_URI":     "discord.redirectUri",
	}

	for raw, want := range tests {
		assert.Equal(t, want, envKey(raw, nil), raw)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.AuthAPI.URL = "http://auth.internal"
	cfg.Discord = &DiscordConfig{ClientID: "id", RedirectURI: "http://localhost/cb"}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "http://auth.internal", cfg.AuthAPI.PublicURL)
	assert.Equal(t, time.Hour, cfg.AuthAPI.JWKSCacheTTL)
	assert.Equal(t, 3*time.Second, cfg.AuthAPI.VerifyTimeout)
	assert.Equal(t, []string{"identify", "email"}, cfg.Discord.Scopes)
}

func TestConfig_JWKSURL(t *testing.T) {
	cfg := &Config{}
	cfg.AuthAPI.URL = "http://auth.internal/"
	assert.Equal(t, "http://auth.internal/.well-known/jwks.json", cfg.JWKSURL())

	cfg.AuthAPI.Issuer = "https://issuer.example.com"
	assert.Equal(t, "https://issuer.example.com/.well-known/jwks.json", cfg.JWKSURL())
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{}
	require.Error(t, cfg.Validate())

	cfg.AuthAPI.URL = "http://auth.internal"
	cfg.ResourceAPI.URL = "http://resource.internal"
	require.NoError(t, cfg.Validate())

	cfg.Discord = &DiscordConfig{}
	require.NoError(t, cfg.Validate())

	cfg.Discord.ClientID = "discord-client"
	assert.Error(t, cfg.Validate())

	cfg.Discord.ClientSecret = "secret"
	cfg.Discord.RedirectURI = "http://localhost:3000/api/oauth/discord/callback"
	assert.NoError(t, cfg.Validate())
}

func TestConfig_IsProduction(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.IsProduction())

	cfg.Env.Env = "Production"
	assert.True(t, cfg.IsProduction())
}
