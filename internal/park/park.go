package park

import (
	"context"
	"fmt"
	"themepark/pkg/domain"
	"themepark/pkg/logger"
	"themepark/pkg/metrics"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

const tracerName = "themepark/internal/park"

// Options wire the Operator's collaborators.
type Options struct {
	// Announcer receives every line the park prints.
	Announcer domain.Announcer
	// Metrics counts rides, status changes and hires.
	Metrics *metrics.Recorder
	// TracerProvider defaults to a no-op provider.
	TracerProvider trace.TracerProvider
}

type operator struct {
	out     domain.Announcer
	metrics *metrics.Recorder
	tracer  trace.Tracer
}

// New returns an Operator announcing through opts.Announcer.
func New(opts Options) Operator {
	tp := opts.TracerProvider
	if tp == nil {
		tp = noop.NewTracerProvider()
	}

	return &operator{
		out:     opts.Announcer,
		metrics: opts.Metrics,
		tracer:  tp.Tracer(tracerName),
	}
}

func attractionAttrs(a *domain.Attraction) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("attraction.id", a.ID().String()),
		attribute.String("attraction.name", a.Name()),
		attribute.String("attraction.kind", string(a.Kind())),
	}
}

func attractionFields(a *domain.Attraction) []zap.Field {
	return []zap.Field{
		zap.Stringer("attraction_id", a.ID()),
		zap.String("attraction", a.Name()),
		zap.String("kind", string(a.Kind())),
	}
}

func (o *operator) Describe(ctx context.Context, a *domain.Attraction) {
	_, span := o.tracer.Start(ctx, "park.Describe", trace.WithAttributes(attractionAttrs(a)...))
	defer span.End()

	a.Describe(o.out)
}

func (o *operator) Open(ctx context.Context, a *domain.Attraction) {
	o.setStatus(ctx, "park.Open", a, a.Open)
}

func (o *operator) Close(ctx context.Context, a *domain.Attraction) {
	o.setStatus(ctx, "park.Close", a, a.Close)
}

func (o *operator) setStatus(ctx context.Context, op string, a *domain.Attraction, apply func()) {
	ctx, span := o.tracer.Start(ctx, op, trace.WithAttributes(attractionAttrs(a)...))
	defer span.End()

	from := a.Status()
	apply()
	span.SetAttributes(attribute.String("attraction.status", string(a.Status())))

	o.metrics.StatusChanged(ctx, a.Name(), string(a.Status()))
	if logger.IsDebug(ctx) {
		logger.Debug(ctx, "attraction status set", append(attractionFields(a),
			zap.String("from", string(from)),
			zap.String("to", string(a.Status())),
		)...)
	}
}

func (o *operator) Start(ctx context.Context, a *domain.Attraction) {
	ctx, span := o.tracer.Start(ctx, "park.Start", trace.WithAttributes(attractionAttrs(a)...))
	defer span.End()

	a.Start(o.out)
	if logger.IsDebug(ctx) {
		logger.Debug(ctx, "attraction started", append(attractionFields(a), zap.Bool("open", a.IsOpen()))...)
	}
}

func (o *operator) Ride(ctx context.Context, v *domain.Visitor, a *domain.Attraction) (bool, error) {
	ctx, span := o.tracer.Start(ctx, "park.Ride", trace.WithAttributes(append(attractionAttrs(a),
		attribute.String("visitor.id", v.ID().String()),
		attribute.String("visitor.name", v.Name()),
	)...))
	defer span.End()

	ctx = logger.WithFields(ctx, append(attractionFields(a),
		zap.Stringer("visitor_id", v.ID()),
		zap.String("visitor", v.Name()),
	)...)

	rode, err := v.Ride(a, o.out)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "ride rejected")
		o.metrics.RideAttempted(ctx, a.Name(), string(a.Kind()), metrics.OutcomeRejected)
		logger.Error(ctx, "ride rejected", zap.Error(err))

		return false, fmt.Errorf("could not ride %s: %w", a.Name(), err)
	}

	outcome := metrics.OutcomeRefused
	if rode {
		outcome = metrics.OutcomeRode
	}
	span.SetAttributes(attribute.String("ride.outcome", outcome))
	o.metrics.RideAttempted(ctx, a.Name(), string(a.Kind()), outcome)
	if logger.IsDebug(ctx) {
		logger.Debug(ctx, "ride attempted", zap.String("outcome", outcome), zap.Bool("open", a.IsOpen()))
	}

	return rode, nil
}

func (o *operator) Work(ctx context.Context, s domain.Staff) {
	_, span := o.tracer.Start(ctx, "park.Work", trace.WithAttributes(
		attribute.String("staff.id", s.ID().String()),
		attribute.String("staff.role", s.Role()),
	))
	defer span.End()

	s.Work(o.out)
}

func (o *operator) Hire(ctx context.Context, m *domain.Manager, s domain.Staff) {
	ctx, span := o.tracer.Start(ctx, "park.Hire", trace.WithAttributes(
		attribute.String("manager.id", m.ID().String()),
		attribute.String("staff.id", s.ID().String()),
	))
	defer span.End()

	m.AddStaff(s)
	o.metrics.StaffHired(ctx, m.Name(), s.Role())
	if logger.IsDebug(ctx) {
		logger.Debug(ctx, "staff hired",
			zap.String("manager", m.Name()),
			zap.String("staff", s.Name()),
			zap.String("role", s.Role()),
			zap.Int("team_size", len(m.Team())),
		)
	}
}

func (o *operator) TeamSummary(ctx context.Context, m *domain.Manager) {
	_, span := o.tracer.Start(ctx, "park.TeamSummary", trace.WithAttributes(
		attribute.String("manager.id", m.ID().String()),
	))
	defer span.End()

	m.TeamSummary(o.out)
}

func (o *operator) History(ctx context.Context, v *domain.Visitor) []string {
	_, span := o.tracer.Start(ctx, "park.History", trace.WithAttributes(
		attribute.String("visitor.id", v.ID().String()),
	))
	defer span.End()

	h := v.History()
	span.SetAttributes(attribute.Int("history.length", len(h)))

	return h
}
