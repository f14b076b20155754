package config

import (
	"flag"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Options struct {
	runAddr       string
	logLevel      string
	cacheTTL      time.Duration
	scoringPolicy string
	groupingMode  string
	sourceURL     string
	simulate      bool
	affiliateTag  string
	rateLimitCap  int
	rateLimitWin  time.Duration
}

func NewOptions() *Options {
	return new(Options)
}

// ParseFlags handles command line arguments and stores their values in the
// corresponding variables. Environment variables (optionally from a .env
// file) provide defaults; flags override.
func (o *Options) ParseFlags() {
	loadEnvFile()

	flag.StringVar(&o.runAddr, "a", getEnvOrDefault("RUN_ADDRESS", ":8080"), "address and port to run server")
	flag.StringVar(&o.logLevel, "l", getEnvOrDefault("LOG_LEVEL", "info"), "log level")
	flag.DurationVar(&o.cacheTTL, "ttl", getEnvDurationOrDefault("CACHE_TTL", 300*time.Second), "result cache time-to-live")
	flag.StringVar(&o.scoringPolicy, "scoring", getEnvOrDefault("SCORING_POLICY", "minmax"), "scoring policy: minmax or weighted")
	flag.StringVar(&o.groupingMode, "grouping", getEnvOrDefault("GROUPING_MODE", "identity"), "grouping mode: identity or single")
	flag.StringVar(&o.sourceURL, "source", getEnvOrDefault("SOURCE_URL", ""), "optional remote offer source base URL")
	flag.BoolVar(&o.simulate, "simulate", getEnvOrDefault("SIMULATE_SOURCES", "") != "", "add simulated marketplace collectors")
	flag.StringVar(&o.affiliateTag, "tag", getEnvOrDefault("AFFILIATE_TAG", "dealcompare19-21"), "amazon affiliate tag")
	flag.IntVar(&o.rateLimitCap, "rl-cap", getEnvIntOrDefault("RATE_LIMIT_CAP", 10), "requests allowed per IP per window")
	flag.DurationVar(&o.rateLimitWin, "rl-window", getEnvDurationOrDefault("RATE_LIMIT_WINDOW", time.Minute), "rate limit refill window")

	flag.Parse()
}

func (o *Options) RunAddr() string             { return o.runAddr }
func (o *Options) LogLevel() string            { return o.logLevel }
func (o *Options) CacheTTL() time.Duration     { return o.cacheTTL }
func (o *Options) ScoringPolicy() string       { return o.scoringPolicy }
func (o *Options) GroupingMode() string        { return o.groupingMode }
func (o *Options) SourceURL() string           { return o.sourceURL }
func (o *Options) Simulate() bool              { return o.simulate }
func (o *Options) AffiliateTag() string        { return o.affiliateTag }
func (o *Options) RateLimitCap() int           { return o.rateLimitCap }
func (o *Options) RateLimitWin() time.Duration { return o.rateLimitWin }

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// loadEnvFile loads environment variables from a .env file in the working
// directory, if one exists.
func loadEnvFile() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found, proceeding without it")
	}
}
