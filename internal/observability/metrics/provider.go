package metrics

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.38.0"
)

type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
}

type Provider struct {
	mp *sdkmetric.MeterProvider
}

// NewProvider builds a meter provider without a reader; instruments are
// recorded in-process and nothing is exported until a reader is attached.
func NewProvider(_ context.Context, cfg Config, opts ...sdkmetric.Option) *Provider {
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(cfg.ServiceVersion),
		semconv.DeploymentEnvironmentName(cfg.Environment),
	)

	opts = append([]sdkmetric.Option{sdkmetric.WithResource(res)}, opts...)

	mp := sdkmetric.NewMeterProvider(opts...)
	otel.SetMeterProvider(mp)

	return &Provider{mp: mp}
}

func (p *Provider) Meter(name string) metric.Meter {
	return p.mp.Meter(name)
}

func (p *Provider) Shutdown(ctx context.Context) error {
	return p.mp.Shutdown(ctx)
}
