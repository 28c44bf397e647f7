package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	for _, k := range []string{"SERVER_PORT", "LLM_PROVIDER", "LLM_TEMPERATURE", "TENANT_SOURCE", "ASSET_SOURCE", "TENANTS_FILE", "PROMPT_TEMPLATE_PATH", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}

	assert.Equal(t, ":8080", ServerAddr())
	assert.Equal(t, "openai", LLMProvider())
	assert.InDelta(t, 0.7, LLMTemperature(), 1e-6)
	assert.Equal(t, "file", TenantSource())
	assert.Equal(t, "config/tenants.yaml", TenantsFile())
	assert.Equal(t, "file", AssetSource())
	assert.Equal(t, "prompts/prompt.txt", PromptTemplatePath())
	assert.Equal(t, []string{"*"}, CORSAllowedOrigins())
}

func TestLLMAPIKey_FollowsProvider(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")

	t.Setenv("LLM_PROVIDER", "anthropic")
	assert.Equal(t, "sk-ant", LLMAPIKey())

	t.Setenv("LLM_PROVIDER", "openai")
	assert.Equal(t, "sk-openai", LLMAPIKey())

	t.Setenv("LLM_PROVIDER", "mock")
	assert.Empty(t, LLMAPIKey())
}

func TestLLMTemperature(t *testing.T) {
	t.Setenv("LLM_TEMPERATURE", "0.2")
	assert.InDelta(t, 0.2, LLMTemperature(), 1e-6)

	t.Setenv("LLM_TEMPERATURE", "7")
	assert.InDelta(t, 0.7, LLMTemperature(), 1e-6)

	t.Setenv("LLM_TEMPERATURE", "warm")
	assert.InDelta(t, 0.7, LLMTemperature(), 1e-6)
}

func TestCORSAllowedOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, CORSAllowedOrigins())
}

func TestLoad_ReadsEnvAndSecretFiles(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("LLM_PROVIDER=gemini\n"), 0o600))
	require.NoError(t, os.WriteFile(envFile+".secret", []byte("GEMINI_API_KEY=gk-secret\n"), 0o600))

	t.Setenv("GUESTCHAT_ENV", envFile)
	// godotenv does not override variables that are already set
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("GEMINI_API_KEY", "")
	require.NoError(t, os.Unsetenv("LLM_PROVIDER"))
	require.NoError(t, os.Unsetenv("GEMINI_API_KEY"))

	require.NoError(t, Load())
	assert.Equal(t, "gemini", LLMProvider())
	assert.Equal(t, "gk-secret", LLMAPIKey())
}
