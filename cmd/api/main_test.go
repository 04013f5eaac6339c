package main

import (
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureLogger(t *testing.T) {
	before, err := os.Getwd()
	require.NoError(t, err)

	previous := logrus.StandardLogger().Formatter
	t.Cleanup(func() { logrus.SetFormatter(previous) })

	configureLogger()

	after, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, before, after)

	formatter, ok := logrus.StandardLogger().Formatter.(*logrus.TextFormatter)
	require.True(t, ok)
	assert.True(t, formatter.FullTimestamp)
	assert.Equal(t, time.RFC3339, formatter.TimestampFormat)
}
