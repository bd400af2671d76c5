package handler

import (
	"encoding/json"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrQueueFull = errors.New("event queue is full")

type Enqueuer interface {
	Enqueue(topic string, v any) error
}

// NewEnqueuer returns an Enqueuer writing to producer. A nil producer
// yields an Enqueuer that drops everything.
func NewEnqueuer(producer sarama.AsyncProducer, log *zap.Logger) Enqueuer {
	if producer == nil {
		return noopEnqueuer{}
	}
	q := &enqueuerImpl{
		producer: producer,
		log:      log,
	}
	go q.watchErrors()
	return q
}

type enqueuerImpl struct {
	producer sarama.AsyncProducer
	log      *zap.Logger
}

// Enqueue never blocks: when the producer input buffer is full the event
// is dropped and ErrQueueFull is returned.
func (q *enqueuerImpl) Enqueue(topic string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: topic, Value: sarama.ByteEncoder(data)}
	select {
	case q.producer.Input() <- msg:
		return nil
	default:
		return ErrQueueFull
	}
}

// watchErrors exits once the producer is closed.
func (q *enqueuerImpl) watchErrors() {
	for perr := range q.producer.Errors() {
		q.log.Warn("lookup event delivery failed",
			zap.String("topic", perr.Msg.Topic),
			zap.Error(perr.Err),
		)
	}
}

type noopEnqueuer struct{}

func (noopEnqueuer) Enqueue(string, any) error { return nil }
