package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"techflow-web-backend/internal/domain"
	"techflow-web-backend/internal/metrics"
	"techflow-web-backend/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrMissingRequiredFields means the lead lacks fields every sink needs.
	ErrMissingRequiredFields = errors.New("missing required fields")
	// ErrInternalProcessing means a payload could not be built; nothing was sent.
	ErrInternalProcessing = errors.New("internal processing error")
)

const DefaultTimeout = 10 * time.Second

var tracer = otel.Tracer("techflow.internal.dispatcher")

// SendFunc performs the outbound call for one prepared payload.
type SendFunc func(ctx context.Context) error

// Sink is one lead destination. Prepare builds the payload without I/O so that
// encoding and rendering failures surface before anything is sent.
type Sink interface {
	Name() string
	Prepare(lead *domain.Lead) (SendFunc, error)
}

// Result is the settled outcome of one sink delivery.
type Result struct {
	Sink     string
	Err      error
	Duration time.Duration
}

func (r Result) OK() bool { return r.Err == nil }

// Report lists every sink outcome for a dispatched lead.
type Report struct {
	LeadID  string
	Results []Result
}

func (r *Report) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.OK() {
			n++
		}
	}
	return n
}

func (r *Report) Failed() int {
	return len(r.Results) - r.Succeeded()
}

// Dispatcher fans a lead out to every configured sink and waits for all of them.
type Dispatcher struct {
	sinks   []Sink
	timeout time.Duration
	log     *slog.Logger
	metrics *metrics.LeadMetrics
}

type Option func(*Dispatcher)

func WithTimeout(d time.Duration) Option {
	return func(ds *Dispatcher) {
		if d > 0 {
			ds.timeout = d
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(ds *Dispatcher) {
		if l != nil {
			ds.log = l
		}
	}
}

func WithMetrics(m *metrics.LeadMetrics) Option {
	return func(ds *Dispatcher) { ds.metrics = m }
}

func New(sinks []Sink, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		sinks:   sinks,
		timeout: DefaultTimeout,
		log:     logger.Log,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SinkNames lists the enabled sinks in dispatch order.
func (d *Dispatcher) SinkNames() []string {
	names := make([]string, len(d.sinks))
	for i, s := range d.sinks {
		names[i] = s.Name()
	}
	return names
}

// Dispatch delivers the lead to all sinks concurrently. Individual sink
// failures are recorded in the report, never returned. Sends are detached
// from ctx cancellation so a dropped client connection does not abort them;
// each send is bounded by the dispatcher timeout instead.
func (d *Dispatcher) Dispatch(ctx context.Context, lead *domain.Lead) (*Report, error) {
	if missing := lead.MissingFields(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequiredFields, strings.Join(missing, ", "))
	}

	sends := make([]SendFunc, len(d.sinks))
	for i, s := range d.sinks {
		send, err := s.Prepare(lead)
		if err != nil {
			return nil, fmt.Errorf("%w: prepare %s: %w", ErrInternalProcessing, s.Name(), err)
		}
		sends[i] = send
	}

	base := context.WithoutCancel(ctx)
	results := make([]Result, len(d.sinks))

	var g errgroup.Group
	for i, s := range d.sinks {
		g.Go(func() error {
			results[i] = d.deliver(base, lead, s.Name(), sends[i])
			return nil
		})
	}
	_ = g.Wait()

	report := &Report{LeadID: lead.ID.String(), Results: results}
	d.logReport(lead, report)
	return report, nil
}

func (d *Dispatcher) deliver(ctx context.Context, lead *domain.Lead, name string, send SendFunc) (res Result) {
	ctx, span := tracer.Start(ctx, "leads.sink."+name, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("techflow.lead_id", lead.ID.String()),
		attribute.String("techflow.lead_source", string(lead.Source)),
		attribute.String("techflow.sink", name),
	)

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			res.Err = fmt.Errorf("sink %s panicked: %v", name, p)
		}
		res.Sink = name
		res.Duration = time.Since(start)
		if res.Err != nil {
			span.RecordError(res.Err)
			span.SetStatus(codes.Error, res.Err.Error())
		}
		d.metrics.ObserveDelivery(name, res.Err == nil, res.Duration.Seconds())
	}()

	res.Err = send(ctx)
	return res
}

func (d *Dispatcher) logReport(lead *domain.Lead, report *Report) {
	for _, res := range report.Results {
		if res.OK() {
			d.log.Info("lead delivered",
				"lead_id", report.LeadID, "source", lead.Source, "sink", res.Sink,
				"duration_ms", res.Duration.Milliseconds())
			continue
		}
		d.log.Error("lead delivery failed",
			"lead_id", report.LeadID, "source", lead.Source, "sink", res.Sink,
			"duration_ms", res.Duration.Milliseconds(), "error", res.Err)
	}
	d.log.Info("lead dispatch settled",
		"lead_id", report.LeadID, "source", lead.Source,
		"sinks", len(report.Results), "succeeded", report.Succeeded(), "failed", report.Failed())
}
