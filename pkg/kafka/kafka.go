package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const LookupTopic = "isbndb.lookups"

type Config struct {
	Addrs       []string `envconfig:"KAFKA_ADDRS"`
	LookupTopic string   `envconfig:"KAFKA_LOOKUP_TOPIC" default:"isbndb.lookups"`
}

// Enabled reports whether any broker is configured.
func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

// NewAsyncProducer returns a producer for fire-and-forget events. Delivery
// failures are reported on Errors(), which the caller must drain.
func NewAsyncProducer(cfg Config) (sarama.AsyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForLocal
	defaultCfg.Producer.Return.Successes = false
	defaultCfg.Producer.Return.Errors = true

	return sarama.NewAsyncProducer(cfg.Addrs, defaultCfg)
}

type Operation string

const (
	OperationFind   Operation = "find"
	OperationSearch Operation = "search"
	OperationBatch  Operation = "batch"
)

// LookupEvent records one resource lookup served by the adapter.
type LookupEvent struct {
	ID        string            `json:"id"`
	Operation Operation         `json:"operation"`
	Kind      string            `json:"kind"`
	Term      string            `json:"term,omitempty"`
	Args      map[string]string `json:"args,omitempty"`
	Found     int               `json:"found"`
	Error     string            `json:"error,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}
