package park_test

import (
	"context"
	"strings"
	"testing"
	"themepark/internal/park"
	"themepark/pkg/domain"
	"themepark/pkg/logger"
	"themepark/pkg/metrics"
	"themepark/pkg/serrors"

	mockdomain "themepark/pkg/domain/mock"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fixture struct {
	op    park.Operator
	out   *mockdomain.MockAnnouncer
	spans *tracetest.SpanRecorder
	reg   *prometheus.Registry
	logs  *observer.ObservedLogs
	ctx   context.Context
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	out := mockdomain.NewMockAnnouncer(ctrl)

	spans := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))

	reg := prometheus.NewRegistry()
	rec, err := metrics.New(reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rec.Shutdown(context.Background()) })

	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	return fixture{
		op:    park.New(park.Options{Announcer: out, Metrics: rec, TracerProvider: tp}),
		out:   out,
		spans: spans,
		reg:   reg,
		logs:  logs,
		ctx:   ctx,
	}
}

func (f fixture) spanNames() []string {
	ended := f.spans.Ended()
	names := make([]string, 0, len(ended))
	for _, s := range ended {
		names = append(names, s.Name())
	}

	return names
}

func (f fixture) rideCount(t *testing.T, outcome string) float64 {
	t.Helper()

	families, err := f.reg.Gather()
	require.NoError(t, err)

	var total float64
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "park_rides") {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "outcome" && lp.GetValue() == outcome {
					total += m.GetCounter().GetValue()
				}
			}
		}
	}

	return total
}

func TestOperator_OpenCloseDescribe(t *testing.T) {
	f := newFixture(t)
	a := domain.NewThrillRide("Daniel Coaster", 30, 150)

	gomock.InOrder(
		f.out.EXPECT().Announce("Attraction: Daniel Coaster, Capacity: 30, Status: Open"),
		f.out.EXPECT().Announce("Attraction: Daniel Coaster, Capacity: 30, Status: Closed"),
	)

	f.op.Open(f.ctx, a)
	f.op.Open(f.ctx, a)
	require.True(t, a.IsOpen())
	f.op.Describe(f.ctx, a)

	f.op.Close(f.ctx, a)
	require.False(t, a.IsOpen())
	f.op.Describe(f.ctx, a)

	require.Equal(t, []string{"park.Open", "park.Open", "park.Describe", "park.Close", "park.Describe"}, f.spanNames())
	require.Equal(t, 3, f.logs.FilterMessage("attraction status set").Len())
}

func TestOperator_RideScenario(t *testing.T) {
	f := newFixture(t)
	coaster := domain.NewThrillRide("Daniel Coaster", 30, 150)
	family := domain.NewFamilyRide("Mahdi Ride", 10, 10)
	vahid := domain.NewVisitor("Vahid", 180, 16)

	gomock.InOrder(
		f.out.EXPECT().Announce("The Visitor Vahid is now riding on Daniel Coaster"),
		f.out.EXPECT().Announce("Thrill Ride Daniel Coaster is now starting. Hold on Tight!"),
		f.out.EXPECT().Announce("The Visitor Vahid is now riding on Mahdi Ride"),
		f.out.EXPECT().Announce("Family Ride Mahdi Ride is closed."),
	)

	f.op.Open(f.ctx, coaster)

	rode, err := f.op.Ride(f.ctx, vahid, coaster)
	require.NoError(t, err)
	require.True(t, rode)

	rode, err = f.op.Ride(f.ctx, vahid, family)
	require.NoError(t, err)
	require.True(t, rode)

	require.Equal(t, []string{"Daniel Coaster", "Mahdi Ride"}, f.op.History(f.ctx, vahid))
	require.InDelta(t, 2, f.rideCount(t, metrics.OutcomeRode), 0)

	rides := f.logs.FilterMessage("ride attempted").All()
	require.Len(t, rides, 2)
	require.Equal(t, "Vahid", rides[0].ContextMap()["visitor"])
	require.Equal(t, "Mahdi Ride", rides[1].ContextMap()["attraction"])
}

func TestOperator_RideRefused(t *testing.T) {
	f := newFixture(t)
	coaster := domain.NewThrillRide("Daniel Coaster", 30, 150)
	kid := domain.NewVisitor("Sara", 120, 7)

	f.out.EXPECT().Announce("The Visitor Sara cannot ride on Daniel Coaster")

	rode, err := f.op.Ride(f.ctx, kid, coaster)
	require.NoError(t, err)
	require.False(t, rode)
	require.Empty(t, f.op.History(f.ctx, kid))
	require.InDelta(t, 1, f.rideCount(t, metrics.OutcomeRefused), 0)
}

func TestOperator_RideWithoutRule(t *testing.T) {
	f := newFixture(t)
	carousel := domain.NewAttraction("Carousel", 20)
	v := domain.NewVisitor("Vahid", 180, 16)

	f.out.EXPECT().Announce(gomock.Any()).Times(0)

	rode, err := f.op.Ride(f.ctx, v, carousel)
	require.False(t, rode)
	require.ErrorIs(t, err, serrors.ErrFailedPrecondition)
	require.ErrorContains(t, err, "could not ride Carousel")
	require.Empty(t, v.History())
	require.InDelta(t, 1, f.rideCount(t, metrics.OutcomeRejected), 0)

	ended := f.spans.Ended()
	require.Len(t, ended, 1)
	require.Equal(t, codes.Error, ended[0].Status().Code)
	require.Equal(t, 1, f.logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestOperator_StaffAndTeam(t *testing.T) {
	f := newFixture(t)
	katie := domain.NewManager("Katie")
	alim := domain.NewStaff("Alim", "Operator")

	gomock.InOrder(
		f.out.EXPECT().Announce("Staff Alim is performing their role: Operator"),
		f.out.EXPECT().Announce("Name: Alim, Role: Operator"),
	)

	f.op.Work(f.ctx, alim)
	f.op.Hire(f.ctx, katie, alim)
	f.op.TeamSummary(f.ctx, katie)

	require.Len(t, katie.Team(), 1)
	require.Equal(t, []string{"park.Work", "park.Hire", "park.TeamSummary"}, f.spanNames())
}

func TestOperator_StartWithoutMetricsOrTracer(t *testing.T) {
	ctrl := gomock.NewController(t)
	out := mockdomain.NewMockAnnouncer(ctrl)
	op := park.New(park.Options{Announcer: out})

	a := domain.NewAttraction("Carousel", 20)
	gomock.InOrder(
		out.EXPECT().Announce("The attraction is closed and cannot start."),
		out.EXPECT().Announce("The attraction is Starting"),
	)

	op.Start(context.Background(), a)
	op.Open(context.Background(), a)
	op.Start(context.Background(), a)
}

func TestOperator_DebugEntriesSkippedAboveDebugLevel(t *testing.T) {
	f := newFixture(t)
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	coaster := domain.NewThrillRide("Daniel Coaster", 30, 150)
	katie := domain.NewManager("Katie")
	vahid := domain.NewVisitor("Vahid", 180, 16)

	f.out.EXPECT().Announce(gomock.Any()).AnyTimes()

	f.op.Open(ctx, coaster)
	f.op.Start(ctx, coaster)
	_, err := f.op.Ride(ctx, vahid, coaster)
	require.NoError(t, err)
	f.op.Hire(ctx, katie, domain.NewStaff("Alim", "Operator"))

	require.Zero(t, logs.Len())

	_, err = f.op.Ride(ctx, vahid, domain.NewAttraction("Carousel", 20))
	require.Error(t, err)
	require.Equal(t, 1, logs.FilterMessage("ride rejected").Len())
	require.InDelta(t, 1, f.rideCount(t, metrics.OutcomeRejected), 0)
}
