package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything the process reads from the environment.
type Config struct {
	Port string

	// NVIDIA Integrate (OpenAI-style chat completions) endpoint.
	NvidiaAPIKey  string
	NvidiaAPIBase string
	NvidiaModel   string

	// UseMockLLM forces the deterministic mock client even when a key is set.
	UseMockLLM bool
}

// Load reads all env vars and builds the config. Missing NVIDIA_API_KEY is
// not an error: the LLM client degrades to its mock fallback without one.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8000")
	v.SetDefault("NVIDIA_API_BASE", "https://integrate.api.nvidia.com/v1")
	v.SetDefault("NVIDIA_MODEL", "nvidia/nvidia-nemotron-nano-9b-v2")
	v.SetDefault("GENVIS_USE_MOCK_LLM", false)

	return &Config{
		Port: v.GetString("PORT"),

		NvidiaAPIKey:  v.GetString("NVIDIA_API_KEY"),
		NvidiaAPIBase: strings.TrimRight(v.GetString("NVIDIA_API_BASE"), "/"),
		NvidiaModel:   v.GetString("NVIDIA_MODEL"),

		UseMockLLM: v.GetBool("GENVIS_USE_MOCK_LLM"),
	}
}
