package diagnostics

import (
	"context"
	"time"

	commonpb "go.opentelemetry.io/proto/otlp/common/v1"
	metricpb "go.opentelemetry.io/proto/otlp/metrics/v1"
	resourcepb "go.opentelemetry.io/proto/otlp/resource/v1"

	collectormetricspb "go.opentelemetry.io/proto/otlp/collector/metrics/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// TelemetryExporter ships frame-render metrics to an OTLP collector
// over gRPC, independent of the SQLite-backed Recorder: the recorder
// is for local "what happened in this session" replay, the exporter is
// for feeding a fleet-wide dashboard.
type TelemetryExporter struct {
	conn       *grpc.ClientConn
	client     collectormetricspb.MetricsServiceClient
	serviceName string
}

// DialTelemetryExporter connects to an OTLP/gRPC collector at target
// (e.g. "otel-collector:4317") over a plaintext connection, the
// typical setup for a collector running as an in-cluster sidecar.
func DialTelemetryExporter(target, serviceName string) (*TelemetryExporter, error) {
	conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &TelemetryExporter{
		conn:        conn,
		client:      collectormetricspb.NewMetricsServiceClient(conn),
		serviceName: serviceName,
	}, nil
}

// ExportFrameDuration reports one frame's render duration as a gauge
// data point, tagged with the update count that produced it.
func (e *TelemetryExporter) ExportFrameDuration(ctx context.Context, duration time.Duration, updates int) error {
	req := &collectormetricspb.ExportMetricsServiceRequest{
		ResourceMetrics: []*metricpb.ResourceMetrics{
			{
				Resource: &resourcepb.Resource{
					Attributes: []*commonpb.KeyValue{
						{Key: "service.name", Value: stringValue(e.serviceName)},
					},
				},
				ScopeMetrics: []*metricpb.ScopeMetrics{
					{
						Metrics: []*metricpb.Metric{
							{
								Name: "tui_frame_render_duration_ms",
								Unit: "ms",
								Data: &metricpb.Metric_Gauge{
									Gauge: &metricpb.Gauge{
										DataPoints: []*metricpb.NumberDataPoint{
											{
												TimeUnixNano: uint64(time.Now().UnixNano()),
												Value:        &metricpb.NumberDataPoint_AsDouble{AsDouble: float64(duration.Microseconds()) / 1000},
												Attributes: []*commonpb.KeyValue{
													{Key: "updates", Value: intValue(int64(updates))},
												},
											},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}
	_, err := e.client.Export(ctx, req)
	return err
}

func stringValue(s string) *commonpb.AnyValue {
	return &commonpb.AnyValue{Value: &commonpb.AnyValue_StringValue{StringValue: s}}
}

func intValue(n int64) *commonpb.AnyValue {
	return &commonpb.AnyValue{Value: &commonpb.AnyValue_IntValue{IntValue: n}}
}

// Close releases the underlying gRPC connection.
func (e *TelemetryExporter) Close() error { return e.conn.Close() }
