//go:build !darwin && !windows

package autostart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/bootwatch/bootwatch/internal/backend"
)

func TestDefaultReaders_UnsupportedPlatformIsEmpty(t *testing.T) {
	readers := DefaultReaders(backend.NewExecRunner(0, zap.NewNop()), zap.NewNop())
	assert.Empty(t, readers)

	items := NewAggregator(zap.NewNop(), readers...).All(context.Background())
	assert.Empty(t, items)
}
