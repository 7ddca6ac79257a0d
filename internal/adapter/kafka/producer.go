package kafka

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/slts2025/subhalaxmiteleservices/internal/core/domain"
	"github.com/slts2025/subhalaxmiteleservices/internal/core/port"
	"github.com/slts2025/subhalaxmiteleservices/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

// A producer is used for composition.
//
// Producing records to kafka broker and closing underlying [kgo.Client].
type producer struct {
	opPrefix string
	cl       ProducerClient
}

func (p producer) close() {
	const op = "close"
	log := slog.With("op", makeOp(p.opPrefix, op))
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p producer) produce(
	ctx context.Context, rs ...*kgo.Record,
) error {
	const op = "produce"
	res := p.cl.ProduceSync(ctx, rs...)
	if err := res.FirstErr(); err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

var _ port.CartEventProducer = (*CartEventsProducer)(nil)

// A CartEventsProducer emits [domain.CartEvent] records keyed by the
// product model name.
type CartEventsProducer struct {
	producer producer
	encoder  Encoder
}

func NewCartEventsProducer(
	opts ...ProducerOpt,
) (CartEventsProducer, error) {
	const op = "NewCartEventsProducer"

	if len(opts) != 2 {
		panic(fmt.Errorf("%s: %w", op, ErrTooFewOpts)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return CartEventsProducer{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	p := producer{opPrefix: "CartEventsProducer", cl: options.cl}
	return CartEventsProducer{p, options.encoder}, nil
}

func (p CartEventsProducer) Close() {
	p.producer.close()
}

func (p CartEventsProducer) ProduceCartEvent(
	ctx context.Context, ev domain.CartEvent,
) error {
	const op = "CartEventsProducer.ProduceCartEvent"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	r, err := p.createRecord(ev)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := p.producer.produce(ctx, r); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (p CartEventsProducer) createRecord(
	ev domain.CartEvent,
) (*kgo.Record, error) {
	const op = "CartEventsProducer.createRecord"

	s := p.toSchema(ev)
	v, err := p.encoder.Encode(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &kgo.Record{Key: []byte(s.Model), Value: v}, nil
}

func (p CartEventsProducer) toSchema(
	ev domain.CartEvent,
) (s schema.CartEventV1) {
	s.Model = ev.Model
	s.Brand = ev.Brand
	s.Price = ev.Price
	return s
}
