// Package metrics records park activity with OpenTelemetry instruments
// exported into a Prometheus registry, and can print the registry in the
// Prometheus text format.
package metrics

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

const (
	meterName = "themepark"
	// Prefix is shared by every family the Recorder exports.
	Prefix = "park_"
)

// Ride outcomes.
const (
	OutcomeRode     = "rode"
	OutcomeRefused  = "refused"
	OutcomeRejected = "rejected"
)

// Recorder owns the park instruments. Build one with New; a nil Recorder
// records nothing.
type Recorder struct {
	provider *sdkmetric.MeterProvider
	gatherer prometheus.Gatherer

	rides         metric.Int64Counter
	statusChanges metric.Int64Counter
	hires         metric.Int64Counter
}

// New registers an exporter on reg and creates the park instruments.
func New(reg *prometheus.Registry) (*Recorder, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	meter := provider.Meter(meterName)

	r := &Recorder{provider: provider, gatherer: reg}

	if r.rides, err = meter.Int64Counter("park.rides",
		metric.WithDescription("Ride attempts by attraction and outcome")); err != nil {
		return nil, fmt.Errorf("could not create rides counter: %w", err)
	}
	if r.statusChanges, err = meter.Int64Counter("park.status.changes",
		metric.WithDescription("Open and close calls by attraction")); err != nil {
		return nil, fmt.Errorf("could not create status counter: %w", err)
	}
	if r.hires, err = meter.Int64Counter("park.hires",
		metric.WithDescription("Staff added to a manager's team")); err != nil {
		return nil, fmt.Errorf("could not create hires counter: %w", err)
	}

	return r, nil
}

// RideAttempted counts one ride attempt on attraction with the given outcome.
func (r *Recorder) RideAttempted(ctx context.Context, attraction, kind, outcome string) {
	if r == nil {
		return
	}

	r.rides.Add(ctx, 1, metric.WithAttributes(
		attribute.String("attraction", attraction),
		attribute.String("kind", kind),
		attribute.String("outcome", outcome),
	))
}

// StatusChanged counts an open or close call.
func (r *Recorder) StatusChanged(ctx context.Context, attraction, status string) {
	if r == nil {
		return
	}

	r.statusChanges.Add(ctx, 1, metric.WithAttributes(
		attribute.String("attraction", attraction),
		attribute.String("status", status),
	))
}

// StaffHired counts a member added to manager's team.
func (r *Recorder) StaffHired(ctx context.Context, manager, role string) {
	if r == nil {
		return
	}

	r.hires.Add(ctx, 1, metric.WithAttributes(
		attribute.String("manager", manager),
		attribute.String("role", role),
	))
}

// WriteText writes the park families in the Prometheus text format. A nil
// Recorder writes nothing.
func (r *Recorder) WriteText(w io.Writer) error {
	if r == nil {
		return nil
	}

	families, err := r.gatherer.Gather()
	if err != nil {
		return fmt.Errorf("could not gather metrics: %w", err)
	}

	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), Prefix) {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("could not write metric family %s: %w", mf.GetName(), err)
		}
	}

	return nil
}

// Shutdown stops the meter provider.
func (r *Recorder) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}

	if err := r.provider.Shutdown(ctx); err != nil {
		return fmt.Errorf("could not shutdown meter provider: %w", err)
	}

	return nil
}
