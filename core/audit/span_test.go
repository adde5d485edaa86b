// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package audit

import (
	"context"
	"testing"

	servertiming "github.com/mitchellh/go-server-timing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpan_ServerTimingMetric(t *testing.T) {
	t.Parallel()

	var header servertiming.Header

	ctx := servertiming.NewContext(context.Background(), &header)

	span := Span{Method: "GET", URL: "/"}
	_ = span.Begin(ctx)
	span.End()

	require.Len(t, header.Metrics, 1)
	assert.Equal(t, "app", header.Metrics[0].Name)
	assert.Equal(t, "GET /", header.Metrics[0].Desc)
	assert.Equal(t, span.Duration(), header.Metrics[0].Duration)
}

func TestSpan_EndTwice(t *testing.T) {
	t.Parallel()

	span := Span{}
	_ = span.Begin(context.Background())
	span.End()

	first := span.Duration()
	span.End()

	assert.Equal(t, first, span.Duration())
}
