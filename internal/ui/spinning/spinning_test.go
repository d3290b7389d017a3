package spinning

import (
	"bytes"
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpinning(t *testing.T) {
	var out bytes.Buffer
	var count atomic.Int32
	s := NewWithWriter(context.Background(), &out, func() string {
		return fmt.Sprintf("%d runs", count.Add(1))
	})
	s.Done()
	s.Done() // Calling Done twice is fine.

	got := out.String()
	assert.Contains(t, got, "1 runs")
	assert.Contains(t, got, fmt.Sprintf("%d runs", count.Load()), "last progress message is printed")
	assert.Contains(t, got, "\033[?25h", "cursor restored")
}
