//
// Tencent is pleased to support the open source community by making trpc-eval-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-eval-go is licensed under the Apache License Version 2.0.
//
//

// Package runner executes evaluation suites. It fans cases out to a
// worker pool, applies every configured scorer to each case and
// collects the per-case results in input order, ready for aggregation.
package runner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"trpc.group/trpc-go/trpc-eval-go/aggregate"
	"trpc.group/trpc-go/trpc-eval-go/log"
	"trpc.group/trpc-go/trpc-eval-go/scorer"
	"trpc.group/trpc-go/trpc-eval-go/telemetry"
)

// defaultParallelism limits how many cases are scored in parallel.
const defaultParallelism = 4

// Case is a single evaluation case: the system output to judge, the
// value it is judged against and optional routing fields.
type Case struct {
	ID       string
	Category string
	Input    any
	Output   any
	Expected any
	Metadata map[string]any
}

// PassPolicy decides the case-level verdict from the case's scorer runs.
type PassPolicy func(runs []aggregate.ScorerRun) bool

// AllPassed is the default pass policy: every scorer run must pass.
// A run with a nil result counts as failed.
func AllPassed(runs []aggregate.ScorerRun) bool {
	for _, run := range runs {
		if run.Result == nil || !run.Result.Passed {
			return false
		}
	}
	return true
}

// RunResult is the outcome of one evaluation run.
type RunResult struct {
	// RunID uniquely identifies the run.
	RunID string
	// Results holds one entry per selected case, in input order.
	Results []aggregate.TestCaseResult
	// Cases is the number of cases scored.
	Cases int
	// Skipped is the number of cases excluded by the case filter.
	Skipped int
	// Duration is the wall time of the run.
	Duration time.Duration
}

// Metrics aggregates the run's results.
func (r *RunResult) Metrics(opts ...aggregate.Option) *aggregate.AggregatedMetrics {
	return aggregate.Calculate(r.Results, opts...)
}

// Option is a function that configures a Runner.
type Option func(*options)

// options holds the configuration options for a Runner.
type options struct {
	scorers     []scorer.Scorer
	parallelism int
	filters     []string
	passPolicy  PassPolicy
}

// WithScorers appends scorers to apply to every case. Scorer results
// keep this order in each case's result.
func WithScorers(scorers ...scorer.Scorer) Option {
	return func(o *options) {
		o.scorers = append(o.scorers, scorers...)
	}
}

// WithParallelism sets the worker pool size. Values below 1 keep the
// default of 4.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.parallelism = n
		}
	}
}

// WithCaseFilter restricts the run to cases whose ID matches at least
// one of the glob patterns, e.g. "smoke/*" or "regression/**".
func WithCaseFilter(patterns ...string) Option {
	return func(o *options) {
		o.filters = append(o.filters, patterns...)
	}
}

// WithPassPolicy replaces the case-level verdict policy. A nil policy
// keeps the default.
func WithPassPolicy(policy PassPolicy) Option {
	return func(o *options) {
		if policy != nil {
			o.passPolicy = policy
		}
	}
}

// Runner applies a fixed set of scorers to evaluation cases.
type Runner struct {
	scorers     []scorer.Scorer
	parallelism int
	filters     []string
	passPolicy  PassPolicy

	caseCounter metric.Int64Counter
	runDuration metric.Float64Histogram
}

// New builds a Runner. It requires at least one scorer and validates
// filter patterns up front. Instruments bind to the meter visible at
// construction time, so build the runner after telemetry.Start when
// exported metrics are wanted.
func New(opts ...Option) (*Runner, error) {
	o := &options{
		parallelism: defaultParallelism,
		passPolicy:  AllPassed,
	}
	for _, opt := range opts {
		opt(o)
	}
	if len(o.scorers) == 0 {
		return nil, errors.New("runner requires at least one scorer")
	}
	for _, pattern := range o.filters {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid case filter pattern %q", pattern)
		}
	}

	r := &Runner{
		scorers:     o.scorers,
		parallelism: o.parallelism,
		filters:     o.filters,
		passPolicy:  o.passPolicy,
	}
	if err := r.initMetrics(); err != nil {
		return nil, err
	}
	return r, nil
}

// initMetrics initializes OpenTelemetry instruments.
func (r *Runner) initMetrics() error {
	var err error
	r.caseCounter, err = telemetry.Meter.Int64Counter(
		"eval_cases_total",
		metric.WithDescription("Total number of evaluation cases scored"),
	)
	if err != nil {
		return fmt.Errorf("failed to create case counter: %w", err)
	}

	r.runDuration, err = telemetry.Meter.Float64Histogram(
		"eval_run_duration_seconds",
		metric.WithDescription("Duration of evaluation runs in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return fmt.Errorf("failed to create run duration histogram: %w", err)
	}
	return nil
}

// Run scores every selected case and returns the results in input
// order. Scoring itself never fails the run: scorer panics and bad
// inputs surface as zero-score results on the affected case. The
// returned error covers infrastructure only, such as worker pool
// creation or task submission.
func (r *Runner) Run(ctx context.Context, cases []Case) (*RunResult, error) {
	start := time.Now()
	runID := uuid.NewString()

	selected, skipped := r.filterCases(cases)
	for i := range selected {
		if selected[i].ID == "" {
			selected[i].ID = uuid.NewString()
		}
	}

	ctx, span := telemetry.Tracer.Start(ctx, telemetry.SpanNameRun,
		trace.WithAttributes(
			attribute.String(telemetry.KeyRunID, runID),
			attribute.Int(telemetry.KeyCaseCount, len(selected)),
		))
	defer span.End()

	log.Infof("Starting evaluation run %s: %d case(s), %d skipped, parallelism %d",
		runID, len(selected), skipped, r.parallelism)

	pool, err := ants.NewPool(r.parallelism)
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer pool.Release()

	results := make([]aggregate.TestCaseResult, len(selected))
	var wg sync.WaitGroup
	var submitErr error
	for i := range selected {
		wg.Add(1)
		// Capture loop variables for the closure.
		idx := i
		evalCase := selected[i]
		if err := pool.Submit(func() {
			defer wg.Done()
			results[idx] = r.scoreCase(ctx, idx, len(selected), evalCase)
		}); err != nil {
			wg.Done()
			submitErr = fmt.Errorf("failed to submit case %q: %w", evalCase.ID, err)
			break
		}
	}
	wg.Wait()
	if submitErr != nil {
		return nil, submitErr
	}

	duration := time.Since(start)
	runAttrs := metric.WithAttributes(attribute.String(telemetry.KeyRunID, runID))
	r.caseCounter.Add(ctx, int64(len(selected)), runAttrs)
	r.runDuration.Record(ctx, duration.Seconds(), runAttrs)
	log.Infof("Finished evaluation run %s in %s", runID, duration)

	return &RunResult{
		RunID:    runID,
		Results:  results,
		Cases:    len(selected),
		Skipped:  skipped,
		Duration: duration,
	}, nil
}

// filterCases selects the cases whose ID matches a configured pattern.
// With no patterns configured every case is selected. The returned
// slice is a copy, so ID normalization never mutates the caller's
// cases.
func (r *Runner) filterCases(cases []Case) (selected []Case, skipped int) {
	if len(r.filters) == 0 {
		selected = make([]Case, len(cases))
		copy(selected, cases)
		return selected, 0
	}
	for _, c := range cases {
		if r.matchesFilter(c.ID) {
			selected = append(selected, c)
		} else {
			skipped++
		}
	}
	return selected, skipped
}

func (r *Runner) matchesFilter(id string) bool {
	for _, pattern := range r.filters {
		// Patterns are validated in New; Match cannot fail here.
		if ok, _ := doublestar.Match(pattern, id); ok {
			return true
		}
	}
	return false
}

// scoreCase applies every scorer to one case and assembles the
// case-level result.
func (r *Runner) scoreCase(ctx context.Context, idx, total int, c Case) aggregate.TestCaseResult {
	ctx, span := telemetry.Tracer.Start(ctx, telemetry.NewScoreCaseSpanName(c.ID),
		trace.WithAttributes(
			attribute.String(telemetry.KeyCaseID, c.ID),
			attribute.String(telemetry.KeyCategory, c.Category),
		))
	defer span.End()

	log.Debugf("Scoring case %d/%d: %s", idx+1, total, c.ID)

	sc := &scorer.Context{Input: c.Input, Category: c.Category, Metadata: c.Metadata}
	runs := make([]aggregate.ScorerRun, 0, len(r.scorers))
	for _, s := range r.scorers {
		result := r.safeScore(ctx, s, c, sc)
		log.Debugf("Case %s scorer %s: score=%.4f passed=%v", c.ID, s.Name(), result.Score, result.Passed)
		runs = append(runs, aggregate.ScorerRun{ScorerName: s.Name(), Result: result})
	}

	passed := r.passPolicy(runs)
	span.SetAttributes(attribute.Bool(telemetry.KeyPassed, passed))
	return aggregate.TestCaseResult{
		ID:            c.ID,
		Category:      c.Category,
		Passed:        passed,
		ScorerResults: runs,
		Metadata:      c.Metadata,
	}
}

// safeScore shields the run from misbehaving scorers: a canceled
// context or a scorer panic becomes a zero-score failure result.
func (r *Runner) safeScore(ctx context.Context, s scorer.Scorer, c Case, sc *scorer.Context) (result *scorer.Result) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Errorf("Scorer %s panicked on case %s: %v", s.Name(), c.ID, rec)
			result = scorer.FailResult("scorer panic", fmt.Errorf("%v", rec))
		}
	}()
	if err := ctx.Err(); err != nil {
		return scorer.FailResult("evaluation canceled", err)
	}
	result = s.Score(ctx, c.Output, c.Expected, sc)
	if result == nil {
		result = scorer.FailResult("scorer returned no result", nil)
	}
	return result
}
