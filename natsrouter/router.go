package natsrouter

import (
	"context"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/c360/semsubject/errors"
	"github.com/c360/semsubject/metric"
	"github.com/c360/semsubject/permission"
	"github.com/c360/semsubject/subject"
	"github.com/c360/semsubject/translator"
)

// MsgIDHeader carries the deduplication id stamped on every routed
// message.
const MsgIDHeader = "Nats-Msg-Id"

// ErrDenied is returned when the permission set rejects an operation.
var ErrDenied = errors.New(errors.KindValidation, "operation denied by permission set")

// Publisher is the slice of the NATS connection the router uses.
// *nats.Conn satisfies it.
type Publisher interface {
	PublishMsg(msg *nats.Msg) error
}

// Router applies permission checks and subject translation in front
// of a NATS connection. It decides and rewrites; the connection
// delivers.
type Router struct {
	publisher  Publisher
	store      *permission.Store
	translator *translator.Translator
	metrics    *metric.Metrics
}

// Option configures a Router.
type Option func(*Router)

// WithTranslator sets the translator applied to outbound subjects.
func WithTranslator(t *translator.Translator) Option {
	return func(r *Router) {
		r.translator = t
	}
}

// WithMetrics enables decision metrics.
func WithMetrics(m *metric.Metrics) Option {
	return func(r *Router) {
		r.metrics = m
	}
}

// New creates a router over a publisher and a permission store.
func New(publisher Publisher, store *permission.Store, opts ...Option) (*Router, error) {
	if publisher == nil {
		return nil, errors.Validationf("publisher is required")
	}
	if store == nil {
		return nil, errors.Validationf("permission store is required")
	}

	r := &Router{publisher: publisher, store: store}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Publish routes a payload to a subject: the permission set gates the
// publish, the translator rewrites the subject, and the message is
// stamped with a Nats-Msg-Id header before handing off to the
// publisher.
func (r *Router) Publish(ctx context.Context, s subject.Subject, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	allowed := r.store.Allowed(s, permission.Publish)
	if r.metrics != nil {
		r.metrics.RecordPermissionDecision(permission.Publish.String(), allowed)
	}
	if !allowed {
		return errors.Wrap(ErrDenied, errors.KindValidation, "publish "+s.String())
	}

	target, err := r.route(s)
	if err != nil {
		return err
	}

	msg := &nats.Msg{
		Subject: target.String(),
		Data:    payload,
		Header:  nats.Header{MsgIDHeader: []string{uuid.New().String()}},
	}
	return r.publisher.PublishMsg(msg)
}

// Request gates a request-reply subject the same way Publish gates a
// publish, returning the translated subject to call.
func (r *Router) Request(ctx context.Context, s subject.Subject) (subject.Subject, error) {
	if err := ctx.Err(); err != nil {
		return subject.Subject{}, err
	}

	allowed := r.store.Allowed(s, permission.Request)
	if r.metrics != nil {
		r.metrics.RecordPermissionDecision(permission.Request.String(), allowed)
	}
	if !allowed {
		return subject.Subject{}, errors.Wrap(ErrDenied, errors.KindValidation, "request "+s.String())
	}

	return r.route(s)
}

func (r *Router) route(s subject.Subject) (subject.Subject, error) {
	if r.translator == nil {
		return s, nil
	}

	target, err := r.translator.Translate(s)
	if r.metrics != nil {
		switch {
		case err != nil:
			r.metrics.RecordTranslation("forward", "error")
		case target.Equal(s):
			r.metrics.RecordTranslation("forward", "pass_through")
		default:
			r.metrics.RecordTranslation("forward", "translated")
		}
	}
	if err != nil {
		return subject.Subject{}, err
	}
	return target, nil
}
