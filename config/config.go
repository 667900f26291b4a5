package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultHeadlineURL = "https://www.nextias.com/ca/current-affairs/%s"

type Config struct {
	LLMProvider     string // openai, openai-responses, anthropic, ollama
	OpenAIKey       string
	AnthropicKey    string
	LLMModel        string
	OllamaBaseURL   string
	ReasoningEffort string // responses provider only
	Verbosity       string // responses provider only

	ChatPlatform     string // telegram, discord, slack
	TelegramToken    string
	ChatID           string
	DiscordToken     string
	DiscordChannelID string
	DiscordWebhook   string
	SlackToken       string
	SlackChannelID   string

	HeadlineURL       string // must contain one %s for the DD-MM-YYYY date
	HeadlineFeedURL   string
	HeadlineMinLength int

	MarkerStore  string // file, sqlite
	MarkerPath   string
	DatabasePath string

	Timezone string
	PostCron string
}

// ConfigDir is where the installed service keeps its config.
func ConfigDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".mainsbot")
}

func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config")
}

func Load() *Config {
	// godotenv never overrides variables that are already set, so the first
	// file to define a key wins.
	_ = godotenv.Load(ConfigFile())
	_ = godotenv.Load() // ignore error if no .env
	return &Config{
		LLMProvider:     envOr("LLM_PROVIDER", "openai"),
		OpenAIKey:       os.Getenv("OPENAI_API_KEY"),
		AnthropicKey:    os.Getenv("ANTHROPIC_API_KEY"),
		LLMModel:        os.Getenv("LLM_MODEL"),
		OllamaBaseURL:   envOr("OLLAMA_BASE_URL", "http://localhost:11434/v1"),
		ReasoningEffort: os.Getenv("REASONING_EFFORT"),
		Verbosity:       os.Getenv("VERBOSITY"),

		ChatPlatform:     envOr("CHAT_PLATFORM", "telegram"),
		TelegramToken:    os.Getenv("TELEGRAM_TOKEN"),
		ChatID:           os.Getenv("CHAT_ID"),
		DiscordToken:     os.Getenv("DISCORD_BOT_TOKEN"),
		DiscordChannelID: os.Getenv("DISCORD_CHANNEL_ID"),
		DiscordWebhook:   os.Getenv("DISCORD_WEBHOOK_URL"),
		SlackToken:       os.Getenv("SLACK_BOT_TOKEN"),
		SlackChannelID:   os.Getenv("SLACK_CHANNEL_ID"),

		HeadlineURL:       envOr("HEADLINE_URL", defaultHeadlineURL),
		HeadlineFeedURL:   os.Getenv("HEADLINE_FEED_URL"),
		HeadlineMinLength: envInt("HEADLINE_MIN_LENGTH", 20),

		MarkerStore:  envOr("MARKER_STORE", "file"),
		MarkerPath:   envOr("MARKER_PATH", ".welcome_sent"),
		DatabasePath: envOr("DATABASE_PATH", "./data.db"),

		Timezone: envOr("TIMEZONE", "Asia/Kolkata"),
		PostCron: envOr("POST_CRON", "0 9 * * *"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
