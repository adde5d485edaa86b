// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package audit

import (
	"context"
	"runtime/trace"
	"strconv"
	"time"

	servertiming "github.com/mitchellh/go-server-timing"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Span represents an HTTP request in flight.
type Span struct {
	// only these fields are set automatically
	task     *trace.Task
	start    time.Time
	duration time.Duration
	metric   *servertiming.Metric

	RequestID  string
	Method     string
	URL        string
	StatusCode int
	Error      error

	// API is the content API the request resolved to ("cda" or "cpa").
	API string
}

// ServerTimingName is the metric name used in the Server-Timing header.
func (span *Span) ServerTimingName() string {
	return "app"
}

// Begin starts timing the span. If ctx carries a server timing header, a
// metric is added to it.
func (span *Span) Begin(ctx context.Context) context.Context {
	span.start = time.Now()

	ctx, span.task = trace.NewTask(ctx, "http.user")
	if servertimingContext := servertiming.FromContext(ctx); servertimingContext != nil {
		span.metric = servertimingContext.NewMetric(span.ServerTimingName())
		span.metric.Desc = span.Method + " " + span.URL
		span.metric.Extra = map[string]string{
			"start": strconv.FormatFloat(float64(span.start.UnixNano())/float64(time.Millisecond), 'f', -1, 64),
		}
	}

	return ctx
}

// End stops timing. Calling it more than once has no effect.
func (span *Span) End() {
	if span.task == nil {
		return
	}

	span.duration = time.Since(span.start)
	span.task.End()

	if span.metric != nil {
		span.metric.Duration = span.duration
	}

	span.task = nil
}

// Duration returns the time between Begin and End.
func (span *Span) Duration() time.Duration {
	return span.duration
}

// Log writes the span as a request log line.
func (span *Span) Log() {
	var event *zerolog.Event

	switch {
	case span.StatusCode >= 500:
		event = log.Error()
	case span.StatusCode >= 400:
		event = log.Warn()
	default:
		event = log.Info()
	}

	event.Str("sys", "http")
	event.Str("method", span.Method)
	event.Str("url", span.URL)
	event.Int("status_code", span.StatusCode)
	event.Dur("dur", span.duration)
	event.Str("request_id", span.RequestID)

	if span.API != "" {
		event.Str("api", span.API)
	}

	if span.Error != nil {
		event.Err(span.Error)
	}

	event.Send()
}
