package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetDebug(t *testing.T) {
	t.Cleanup(func() { SetDebug(false) })

	assert.False(t, debugMode)
	assert.NotPanics(t, func() { DebugLog("hidden %d", 1) })

	SetDebug(true)
	assert.True(t, debugMode)
	assert.NotPanics(t, func() { DebugLog("shown %s", "x") })

	SetDebug(false)
	assert.False(t, debugMode)
}

func TestDebugLogOnlyWhenEnabled(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	t.Cleanup(func() { SetDebug(false) })

	debugMode = false
	logger = zap.New(core).Sugar()
	DebugLog("hidden %d", 1)
	assert.Equal(t, 0, logs.Len())

	debugMode = true
	DebugLog("shown %s", "x")
	if assert.Equal(t, 1, logs.Len()) {
		assert.Equal(t, "shown x", logs.All()[0].Message)
	}
}
