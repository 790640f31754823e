// ABOUTME: Media backend availability probe
// ABOUTME: Calls GET /stream/test through the overlay client's probe helper

package stream

import (
	"context"

	"github.com/mauromedda/overlaycast/pkg/overlay/client"
)

const testPath = "/stream/test"

// Probe reports whether the media backend at mediaBase serves streams.
func Probe(ctx context.Context, mediaBase string, opts ...client.Option) (client.HealthStatus, error) {
	return client.New(mediaBase, opts...).Probe(ctx, testPath)
}
