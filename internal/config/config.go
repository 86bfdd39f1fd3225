package config

import "time"

// History store drivers.
const (
	HistoryDriverFile     = "file"
	HistoryDriverPostgres = "postgres"
	HistoryDriverSQLite   = "sqlite"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Corpus     CorpusConfig     `yaml:"corpus"`
	Lexicon    LexiconConfig    `yaml:"lexicon"`
	Grammar    GrammarConfig    `yaml:"grammar"`
	Generation GenerationConfig `yaml:"generation"`
	History    HistoryConfig    `yaml:"history"`
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// CorpusConfig points at the per-author poem collection.
type CorpusConfig struct {
	Dir string `yaml:"dir" env:"CORPUS_DIR" env-default:"collection/collection"`
}

// LexiconConfig holds the paths of the word-level resources loaded at start-up.
type LexiconConfig struct {
	EmbeddingsPath string `yaml:"embeddings_path" env:"LEXICON_EMBEDDINGS_PATH" env-default:"glove.6B.50d.txt"`
	CMUDictPath    string `yaml:"cmu_dict_path"   env:"LEXICON_CMU_DICT_PATH"   env-default:"cmudict.dict"`
	Neighbours     int    `yaml:"neighbours"      env:"LEXICON_NEIGHBOURS"      env-default:"13"`
}

// GrammarConfig holds LanguageTool client settings.
type GrammarConfig struct {
	Enabled             bool          `yaml:"enabled"               env:"GRAMMAR_ENABLED"               env-default:"true"`
	URL                 string        `yaml:"url"                   env:"GRAMMAR_URL"                   env-default:"http://localhost:8081"`
	Language            string        `yaml:"language"              env:"GRAMMAR_LANGUAGE"              env-default:"en-US"`
	Timeout             time.Duration `yaml:"timeout"               env:"GRAMMAR_TIMEOUT"               env-default:"10s"`
	BreakerMaxRequests  uint32        `yaml:"breaker_max_requests"  env:"GRAMMAR_BREAKER_MAX_REQUESTS"  env-default:"3"`
	BreakerInterval     time.Duration `yaml:"breaker_interval"      env:"GRAMMAR_BREAKER_INTERVAL"      env-default:"30s"`
	BreakerTimeout      time.Duration `yaml:"breaker_timeout"       env:"GRAMMAR_BREAKER_TIMEOUT"       env-default:"60s"`
	BreakerMinRequests  uint32        `yaml:"breaker_min_requests"  env:"GRAMMAR_BREAKER_MIN_REQUESTS"  env-default:"5"`
	BreakerFailureRatio float64       `yaml:"breaker_failure_ratio" env:"GRAMMAR_BREAKER_FAILURE_RATIO" env-default:"0.6"`
}

// GenerationConfig holds limerick generation parameters.
type GenerationConfig struct {
	Candidates    int    `yaml:"candidates"     env:"GENERATION_CANDIDATES"     env-default:"3"`
	MaxCandidates int    `yaml:"max_candidates" env:"GENERATION_MAX_CANDIDATES" env-default:"10"`
	Seed          uint64 `yaml:"seed"           env:"GENERATION_SEED"`
}

// HistoryConfig selects and configures the store for generated limericks.
type HistoryConfig struct {
	Driver      string `yaml:"driver"       env:"HISTORY_DRIVER"       env-default:"file"`
	FilePath    string `yaml:"file_path"    env:"HISTORY_FILE_PATH"    env-default:"prev_generated.json"`
	SQLitePath  string `yaml:"sqlite_path"  env:"HISTORY_SQLITE_PATH"  env-default:"inspoet.db"`
	AutoMigrate bool   `yaml:"auto_migrate" env:"HISTORY_AUTO_MIGRATE" env-default:"true"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"   env:"METRICS_ENABLED"   env-default:"true"`
	Path      string `yaml:"path"      env:"METRICS_PATH"      env-default:"/metrics"`
	Namespace string `yaml:"namespace" env:"METRICS_NAMESPACE" env-default:"inspoet"`
}

// Addr returns the listen address in host:port form.
func (c ServerConfig) Addr() string {
	return joinHostPort(c.Host, c.Port)
}
