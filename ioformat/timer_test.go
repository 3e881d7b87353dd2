package ioformat

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimerElapsedIsNonNegativeAndGrows(t *testing.T) {
	timer := NewTimer()
	time.Sleep(time.Millisecond)
	first := timer.Elapsed()
	time.Sleep(time.Millisecond)
	second := timer.Elapsed()

	assert.GreaterOrEqual(t, first, time.Duration(0))
	assert.Greater(t, second, first)
}

func TestTimerStartResetsClock(t *testing.T) {
	timer := NewTimer()
	time.Sleep(time.Millisecond)
	timer.Start()
	assert.Less(t, timer.Elapsed(), time.Millisecond)
}

func TestPrintElapsedIncludesCaption(t *testing.T) {
	timer := NewTimer()
	var buf bytes.Buffer
	timer.PrintElapsed(&buf, "box query: ")
	assert.True(t, strings.HasPrefix(buf.String(), "[TIME] box query: "))
}
