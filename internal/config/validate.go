package config

import (
	"fmt"
)

// Broker drivers accepted in BrokerConfig.Driver.
const (
	BrokerDriverNone  = ""
	BrokerDriverAMQP  = "amqp"
	BrokerDriverKafka = "kafka"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.RateLimit.RequestsPerMinute < 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be >= 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	if err := c.Pipeline.validate(); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	if err := c.Tasks.validate(); err != nil {
		return fmt.Errorf("tasks: %w", err)
	}

	if err := c.Broker.validate(); err != nil {
		return fmt.Errorf("broker: %w", err)
	}

	return nil
}

func (p *PipelineConfig) validate() error {
	if p.PersistTimeout <= 0 {
		return fmt.Errorf("persist_timeout must be > 0 (got %v)", p.PersistTimeout)
	}
	if p.IdleTTL < 0 {
		return fmt.Errorf("idle_ttl must be >= 0 (got %v)", p.IdleTTL)
	}

	stages := splitList(p.DefaultStagesRaw)
	if len(stages) == 0 {
		return fmt.Errorf("default_stages must name at least one stage")
	}
	seen := make(map[string]struct{}, len(stages))
	for _, s := range stages {
		if _, dup := seen[s]; dup {
			return fmt.Errorf("default_stages: duplicate stage %q", s)
		}
		seen[s] = struct{}{}
	}
	p.DefaultStages = stages

	return nil
}

func (t TasksConfig) validate() error {
	if t.CompletedLimit < 1 || t.CompletedLimit > 500 {
		return fmt.Errorf("completed_limit must be in [1, 500] (got %d)", t.CompletedLimit)
	}
	if t.CompletedRetentionDays < 1 {
		return fmt.Errorf("completed_retention_days must be >= 1 (got %d)", t.CompletedRetentionDays)
	}
	return nil
}

func (b BrokerConfig) validate() error {
	switch b.Driver {
	case BrokerDriverNone:
		return nil
	case BrokerDriverAMQP:
		if b.AMQPURL == "" {
			return fmt.Errorf("amqp_url is required for driver %q", b.Driver)
		}
		if b.Exchange == "" {
			return fmt.Errorf("exchange is required for driver %q", b.Driver)
		}
	case BrokerDriverKafka:
		if len(b.KafkaBrokers()) == 0 {
			return fmt.Errorf("kafka_brokers is required for driver %q", b.Driver)
		}
		if b.Topic == "" {
			return fmt.Errorf("topic is required for driver %q", b.Driver)
		}
	default:
		return fmt.Errorf("unknown driver %q", b.Driver)
	}
	return nil
}
