// Package config assembles the process configuration from environment
// variables and an optional YAML override file, validates each section, and
// exposes the result as an immutable snapshot for the rest of the engine.
package config

// Exchange provider names recognized out of the box. The exchange map is
// keyed by provider, so new providers only need an entry in the env carrier.
const (
	ProviderBinance  = "binance"
	ProviderCoinbase = "coinbase"
)

// FirebaseConfig holds the credentials for the persistence backend.
// The engine cannot store research state without it.
type FirebaseConfig struct {
	CredentialsPath string `env:"FIREBASE_CREDENTIALS_PATH" default:"./firebase-credentials.json" validate:"file"`
	ProjectID       string `env:"FIREBASE_PROJECT_ID" validate:"required"`
}

// TelegramConfig holds the notification channel credentials. Optional: an
// unconfigured section only disables notifications.
type TelegramConfig struct {
	BotToken string `env:"TELEGRAM_BOT_TOKEN" validate:"required,ne=your_bot_token_here"`
	ChatID   string `env:"TELEGRAM_CHAT_ID" validate:"required,ne=your_chat_id_here"`
}

// ResearchConfig holds the research engine tunables. Every field carries a
// default and may be overridden per field from the `research` block of the
// override file; the yaml tags double as the override key names.
type ResearchConfig struct {
	MaxHypothesesPerCycle int     `env:"MAX_HYPOTHESES_PER_CYCLE" default:"5" yaml:"max_hypotheses_per_cycle" validate:"gt=0"`
	BacktestDays          int     `env:"BACKTEST_DAYS" default:"365" yaml:"backtest_days"`
	MinWinRate            float64 `env:"MIN_WIN_RATE" default:"0.55" yaml:"min_win_rate" validate:"gte=0,lte=1"`
	MaxDrawdown           float64 `env:"MAX_DRAWDOWN" default:"0.2" yaml:"max_drawdown" validate:"gte=0,lte=1"`
	DataCacheHours        int     `default:"1" yaml:"data_cache_hours" validate:"gte=0"`
	ConfidenceThreshold   float64 `default:"0.7" yaml:"confidence_threshold" validate:"gte=0,lte=1"`
}

// ExchangeKeys holds one provider's API credentials. Empty keys are valid and
// mean the provider is unavailable for authenticated calls.
type ExchangeKeys struct {
	APIKey    string `env:"API_KEY"`
	APISecret string `env:"API_SECRET"`
}

// Configured reports whether the provider can be used for authenticated calls.
func (k ExchangeKeys) Configured() bool {
	return k.APIKey != "" && k.APISecret != ""
}

// SectionStatus is the validation outcome for one configuration section.
// Severity is policy the consumer applies, not a property of the status.
type SectionStatus struct {
	Valid       bool
	Diagnostics []string
}

// Status groups the per-section validation outcomes.
type Status struct {
	Firebase  SectionStatus
	Telegram  SectionStatus
	Research  SectionStatus
	Exchanges SectionStatus
}

// Snapshot is the complete configuration exposed to the process. It is frozen
// once the Manager finishes building and must never be mutated; concurrent
// reads need no synchronization.
type Snapshot struct {
	Firebase  FirebaseConfig
	Telegram  TelegramConfig
	Research  ResearchConfig
	Exchanges map[string]ExchangeKeys

	Status Status

	// Diagnostics aggregates every source and validation problem found while
	// building, in build order.
	Diagnostics []string

	// Valid reflects the sections the engine cannot run without: Firebase and
	// Research. Warning-level sections (Telegram, exchange credentials) never
	// flip it.
	Valid bool
}

// Exchange returns the credentials for a provider and whether the provider is
// known at all.
func (s *Snapshot) Exchange(provider string) (ExchangeKeys, bool) {
	k, ok := s.Exchanges[provider]
	return k, ok
}
