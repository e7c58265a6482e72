package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type (
	Tasks struct {
		MatchExpiryInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
		GRPCHealthPort   string
	}

	Auth struct {
		JWTSecret string
	}

	CORS struct {
		AllowedOrigins []string
	}

	Database struct {
		Host           string
		Port           string
		User           string
		Password       string
		DBName         string
		SSLMode        string
		MaxConns       int
		MinConns       int
		MigrateOnStart bool
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	Geocoding struct {
		GoogleAPIKey string
		CacheTTL     time.Duration
	}

	Matching struct {
		MinScore   int
		MaxResults int
		MatchTTL   time.Duration
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
		InitialOffset             string // oldest | newest
	}

	KafkaHandlers struct {
		ShipmentStatusChanged ShipmentStatusChanged
	}

	ShipmentStatusChanged struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks     Tasks
		Server    HTTPServer
		Auth      Auth
		CORS      CORS
		Database  Database
		Redis     Redis
		Geocoding Geocoding
		Matching  Matching
		Kafka     Kafka
	}
)

// DefaultPostgresMaxConns is the pool size used when POSTGRES_MAX_CONNS is unset.
const DefaultPostgresMaxConns = 10

const (
	defaultGeocodeCacheTTL = 30 * 24 * time.Hour
	defaultMinScore        = 30
	defaultMaxResults      = 10
	defaultMatchTTL        = 24 * time.Hour
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	expiryInterval, err := osGetEnvDuration("BACKGROUND_MATCH_EXPIRY_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	statusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_SHIPMENT_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	migrateOnStart, err := osGetBool("POSTGRES_MIGRATE_ON_START")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxConns, err := osGetInt("POSTGRES_MAX_CONNS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	minConns, err := osGetInt("POSTGRES_MIN_CONNS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	geocodeCacheTTL, err := osGetEnvDuration("GEOCODING_CACHE_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if geocodeCacheTTL == 0 {
		geocodeCacheTTL = defaultGeocodeCacheTTL
	}

	minScore, err := osGetInt("MATCHING_MIN_SCORE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if _, ok := os.LookupEnv("MATCHING_MIN_SCORE"); !ok {
		minScore = defaultMinScore
	}

	maxResults, err := osGetInt("MATCHING_MAX_RESULTS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if maxResults == 0 {
		maxResults = defaultMaxResults
	}

	matchTTL, err := osGetEnvDuration("MATCHING_MATCH_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if matchTTL == 0 {
		matchTTL = defaultMatchTTL
	}

	return &Config{
		Tasks: Tasks{
			MatchExpiryInterval: expiryInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
			GRPCHealthPort:   os.Getenv("GRPC_HEALTH_PORT"),
		},
		Auth: Auth{
			JWTSecret: os.Getenv("AUTH_JWT_SECRET"),
		},
		CORS: CORS{
			AllowedOrigins: osGetList("CORS_ALLOWED_ORIGINS"),
		},
		Database: Database{
			Host:           os.Getenv("POSTGRES_HOST"),
			Port:           os.Getenv("POSTGRES_PORT"),
			User:           os.Getenv("POSTGRES_USER"),
			Password:       os.Getenv("POSTGRES_PASSWORD"),
			DBName:         os.Getenv("POSTGRES_DB"),
			SSLMode:        os.Getenv("POSTGRES_SSLMODE"),
			MaxConns:       maxConns,
			MinConns:       minConns,
			MigrateOnStart: migrateOnStart,
		},
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Geocoding: Geocoding{
			GoogleAPIKey: os.Getenv("GEOCODING_GOOGLE_API_KEY"),
			CacheTTL:     geocodeCacheTTL,
		},
		Matching: Matching{
			MinScore:   minScore,
			MaxResults: maxResults,
			MatchTTL:   matchTTL,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
				InitialOffset:             os.Getenv("KAFKA_SARAMA_INITIAL_OFFSET"),
			},
			Handlers: KafkaHandlers{
				ShipmentStatusChanged: ShipmentStatusChanged{
					ProcessTimeout: statusChangedTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Auth.JWTSecret == "" {
		return errors.New("AUTH_JWT_SECRET is required")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Database.MaxConns < 0 || cfg.Database.MinConns < 0 {
		return errors.New("POSTGRES_MAX_CONNS and POSTGRES_MIN_CONNS must not be negative")
	}
	maxConns := cfg.Database.MaxConns
	if maxConns == 0 {
		maxConns = DefaultPostgresMaxConns
	}
	if cfg.Database.MinConns > maxConns {
		return fmt.Errorf("POSTGRES_MIN_CONNS must not exceed POSTGRES_MAX_CONNS (%d)", maxConns)
	}

	if cfg.Redis.Addr == "" {
		return errors.New("REDIS_ADDR is required")
	}
	if cfg.Redis.DB < 0 {
		return errors.New("REDIS_DB must not be negative")
	}

	if cfg.Matching.MinScore < 0 || cfg.Matching.MinScore > 100 {
		return fmt.Errorf("MATCHING_MIN_SCORE must be within [0,100], got %d", cfg.Matching.MinScore)
	}
	if cfg.Matching.MaxResults < 0 {
		return errors.New("MATCHING_MAX_RESULTS must be positive")
	}

	if cfg.Tasks.MatchExpiryInterval == time.Duration(0) {
		return errors.New("BACKGROUND_MATCH_EXPIRY_INTERVAL is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.ShipmentStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_SHIPMENT_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

// osGetList splits a comma separated value, dropping blanks.
func osGetList(s string) []string {
	val := os.Getenv(s)
	if val == "" {
		return nil
	}

	var res []string
	for _, part := range strings.Split(val, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			res = append(res, part)
		}
	}
	return res
}
