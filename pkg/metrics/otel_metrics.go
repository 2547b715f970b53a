package metrics

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// OTelMetrics 考勤相关指标集合
type OTelMetrics struct {
	CheckInTotal        metric.Int64Counter
	CheckOutTotal       metric.Int64Counter
	ToggleRejectedTotal metric.Int64Counter
	ReportQueryTotal    metric.Int64Counter
	ReportDuration      metric.Float64Histogram
	OpenIntervals       metric.Int64UpDownCounter
}

var (
	metrics *OTelMetrics
	meter   = otel.Meter("onshift")
)

// InitMetrics 初始化考勤指标
func InitMetrics() error {
	var err error

	metrics = &OTelMetrics{}

	metrics.CheckInTotal, err = meter.Int64Counter(
		"attendance_check_in_total",
		metric.WithDescription("Total number of successful check-ins"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return err
	}

	metrics.CheckOutTotal, err = meter.Int64Counter(
		"attendance_check_out_total",
		metric.WithDescription("Total number of successful check-outs"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return err
	}

	metrics.ToggleRejectedTotal, err = meter.Int64Counter(
		"attendance_toggle_rejected_total",
		metric.WithDescription("Total number of rejected toggle attempts (wrong state or role)"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return err
	}

	metrics.ReportQueryTotal, err = meter.Int64Counter(
		"attendance_report_query_total",
		metric.WithDescription("Total number of report queries"),
		metric.WithUnit("{query}"),
	)
	if err != nil {
		return err
	}

	metrics.ReportDuration, err = meter.Float64Histogram(
		"attendance_report_duration_seconds",
		metric.WithDescription("Time spent building attendance reports"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return err
	}

	metrics.OpenIntervals, err = meter.Int64UpDownCounter(
		"attendance_open_intervals",
		metric.WithDescription("Number of currently open attendance intervals"),
		metric.WithUnit("{interval}"),
	)
	if err != nil {
		return err
	}

	return nil
}

// 指标未初始化时直接忽略，不能影响业务

func RecordCheckIn(ctx context.Context) {
	if metrics == nil {
		return
	}
	metrics.CheckInTotal.Add(ctx, 1)
	metrics.OpenIntervals.Add(ctx, 1)
}

func RecordCheckOut(ctx context.Context) {
	if metrics == nil {
		return
	}
	metrics.CheckOutTotal.Add(ctx, 1)
	metrics.OpenIntervals.Add(ctx, -1)
}

func RecordToggleRejected(ctx context.Context, code string) {
	if metrics == nil {
		return
	}
	metrics.ToggleRejectedTotal.Add(ctx, 1,
		metric.WithAttributes(attribute.String("reason", code)))
}

func RecordReportQuery(ctx context.Context, seconds float64) {
	if metrics == nil {
		return
	}
	metrics.ReportQueryTotal.Add(ctx, 1)
	metrics.ReportDuration.Record(ctx, seconds)
}
