package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration parameters read from environment variables.
type Config struct {
	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     int    `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`

	Neo4jURI      string `envconfig:"NEO4J_URI" default:"bolt://localhost:7687"`
	Neo4jUser     string `envconfig:"NEO4J_USER" default:"neo4j"`
	Neo4jPassword string `envconfig:"NEO4J_PASSWORD" required:"true"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// Dataset shape: ORG_COUNT organizations, each with AUTHORS_PER_ORG authors,
	// each author with PAPERS_PER_AUTHOR papers.
	OrgCount        int `envconfig:"ORG_COUNT" default:"10"`
	AuthorsPerOrg   int `envconfig:"AUTHORS_PER_ORG" default:"10"`
	PapersPerAuthor int `envconfig:"PAPERS_PER_AUTHOR" default:"10"`

	// SeedCron keeps the process alive and re-runs the load on this schedule.
	// Empty means: run once and exit.
	SeedCron string `envconfig:"SEED_CRON"`
	HTTPPort string `envconfig:"HTTP_PORT" default:"4242"`
}

// DSN returns the Data Source Name for the PostgreSQL connection.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	err := envconfig.Process("", &c)
	return &c, err
}
