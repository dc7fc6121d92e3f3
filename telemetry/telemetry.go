//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package telemetry provides tracing and metrics for evaluation runs.
// It integrates with OpenTelemetry: until Start succeeds, the global
// Tracer and Meter are no-ops, so instrumented code needs no guards.
package telemetry

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	noopm "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	noopt "go.opentelemetry.io/otel/trace/noop"
)

// telemetry service constants.
const (
	ServiceName      = "trpc-eval"
	ServiceVersion   = "v0.1.0"
	ServiceNamespace = "trpc-go-eval"
	InstrumentName   = "trpc.eval.go"

	SpanNameRun             = "evaluation_run"
	SpanNamePrefixScoreCase = "score_case"
)

const (
	// ProtocolGRPC uses gRPC protocol for OTLP exporter.
	ProtocolGRPC string = "grpc"
	// ProtocolHTTP uses HTTP protocol for OTLP exporter.
	ProtocolHTTP string = "http"
)

// telemetry attribute constants.
const (
	KeyRunID      = "trpc.go.eval.run_id"
	KeyCaseID     = "trpc.go.eval.case_id"
	KeyCaseCount  = "trpc.go.eval.case_count"
	KeyCategory   = "trpc.go.eval.category"
	KeyScorerName = "trpc.go.eval.scorer_name"
	KeyScore      = "trpc.go.eval.score"
	KeyPassed     = "trpc.go.eval.passed"
)

var (
	// Tracer is the global OpenTelemetry tracer for trpc-eval-go.
	Tracer trace.Tracer = noopt.Tracer{}
	// Meter is the global OpenTelemetry meter for trpc-eval-go.
	Meter metric.Meter = noopm.Meter{}
)

// NewScoreCaseSpanName returns the span name for scoring a single case.
func NewScoreCaseSpanName(caseID string) string {
	if caseID == "" {
		return SpanNamePrefixScoreCase
	}
	return fmt.Sprintf("%s %s", SpanNamePrefixScoreCase, caseID)
}

// Start collects telemetry with optional configuration. It installs
// OTLP trace and metric providers and swaps the package globals from
// their no-op defaults. The returned clean function flushes and shuts
// both providers down.
func Start(ctx context.Context, opts ...Option) (clean func() error, err error) {
	// Set default options
	o := &options{protocol: ProtocolGRPC}
	for _, opt := range opts {
		opt(o)
	}
	if o.tracesEndpoint == "" {
		o.tracesEndpoint = tracesEndpoint(o.protocol)
	}
	if o.metricsEndpoint == "" {
		o.metricsEndpoint = metricsEndpoint(o.protocol)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNamespace(ServiceNamespace),
			semconv.ServiceName(ServiceName),
			semconv.ServiceVersion(ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	var shutdownTracerProvider, shutdownMeterProvider func(context.Context) error
	switch o.protocol {
	case ProtocolHTTP:
		shutdownTracerProvider, err = initHTTPTracerProvider(ctx, res, o)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize tracer provider: %w", err)
		}
		shutdownMeterProvider, err = initHTTPMeterProvider(ctx, res, o)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize meter provider: %w", err)
		}
	default:
		tracesConn, connErr := newGRPCConn(o.tracesEndpoint)
		if connErr != nil {
			return nil, fmt.Errorf("failed to initialize traces connection: %w", connErr)
		}
		shutdownTracerProvider, err = initGRPCTracerProvider(ctx, res, tracesConn, o)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize tracer provider: %w", err)
		}

		metricsConn := tracesConn
		if o.metricsEndpoint != o.tracesEndpoint {
			metricsConn, connErr = newGRPCConn(o.metricsEndpoint)
			if connErr != nil {
				return nil, fmt.Errorf("failed to initialize metrics connection: %w", connErr)
			}
		}
		shutdownMeterProvider, err = initGRPCMeterProvider(ctx, res, metricsConn, o)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize meter provider: %w", err)
		}
	}

	clean = func() error {
		var err error
		if tracerErr := shutdownTracerProvider(ctx); tracerErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to shutdown TracerProvider: %w", tracerErr))
		}
		if meterErr := shutdownMeterProvider(ctx); meterErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to shutdown MeterProvider: %w", meterErr))
		}
		return err
	}

	// Update global tracer and meter
	Tracer = otel.Tracer(InstrumentName)
	Meter = otel.Meter(InstrumentName)
	return clean, nil
}

// Option is a function that configures telemetry options.
type Option func(*options)

// options holds the configuration options for telemetry.
type options struct {
	tracesEndpoint  string
	metricsEndpoint string
	protocol        string
	headers         map[string]string
}

// WithTracesEndpoint sets the traces endpoint(host and port) the Exporter will connect to.
// The provided endpoint should resemble "example.com:4317" (no scheme or path).
// If the OTEL_EXPORTER_OTLP_ENDPOINT or OTEL_EXPORTER_OTLP_TRACES_ENDPOINT environment variable is set,
// and this option is not passed, that variable value will be used.
// If both environment variables are set, OTEL_EXPORTER_OTLP_TRACES_ENDPOINT will take precedence.
// If an environment variable is set, and this option is passed, this option will take precedence.
func WithTracesEndpoint(endpoint string) Option {
	return func(opts *options) {
		opts.tracesEndpoint = endpoint
	}
}

// WithMetricsEndpoint sets the metrics endpoint(host and port) the Exporter will connect to.
// The provided endpoint should resemble "example.com:4317" (no scheme or path).
// If the OTEL_EXPORTER_OTLP_ENDPOINT or OTEL_EXPORTER_OTLP_METRICS_ENDPOINT environment variable is set,
// and this option is not passed, that variable value will be used.
// If both environment variables are set, OTEL_EXPORTER_OTLP_METRICS_ENDPOINT will take precedence.
// If an environment variable is set, and this option is passed, this option will take precedence.
func WithMetricsEndpoint(endpoint string) Option {
	return func(opts *options) {
		opts.metricsEndpoint = endpoint
	}
}

// WithProtocol sets the protocol to use for telemetry export.
// Supported protocols are "grpc" (default) and "http".
func WithProtocol(protocol string) Option {
	return func(opts *options) {
		opts.protocol = protocol
	}
}

// WithHeaders sets the headers to include in export requests.
func WithHeaders(headers map[string]string) Option {
	return func(opts *options) {
		opts.headers = headers
	}
}
