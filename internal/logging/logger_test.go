package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewWithOutput_Level(t *testing.T) {
	log := NewWithOutput(&bytes.Buffer{}, "debug")
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log = NewWithOutput(&bytes.Buffer{}, "not-a-level")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput(&buf, "info")

	Component(log, "runner").Info("hello")

	assert.Contains(t, buf.String(), "component=runner")
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "logger_test.go")
}
