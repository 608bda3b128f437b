package lazyvec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	t.Run("records directly", func(t *testing.T) {
		m := &BasicMetricsCollector{}

		m.RecordGrow(128, 5*time.Microsecond)
		m.RecordReinit(64, 3*time.Microsecond)
		m.RecordPush()
		m.RecordPush()
		m.RecordPop()

		assert.Equal(t, int64(1), m.GrowCount.Load())
		assert.Equal(t, int64(5000), m.GrowTotalNanos.Load())
		assert.Equal(t, int64(1), m.ReinitCount.Load())
		assert.Equal(t, int64(3000), m.ReinitTotalNanos.Load())
		assert.Equal(t, int64(2), m.PushCount.Load())
		assert.Equal(t, int64(1), m.PopCount.Load())
	})

	t.Run("wired through operations", func(t *testing.T) {
		m := &BasicMetricsCollector{}
		v := WithLen[string, Offset]("metered", 2, testDefault(),
			WithMetricsCollector[string](m))

		v.Push("a")
		v.Push("b")
		assert.Equal(t, "b", v.Pop())
		v.GrowTo(16)
		v.GrowTo(8) // no-op, not recorded
		v.Reinit(16)

		assert.Equal(t, int64(2), m.PushCount.Load())
		assert.Equal(t, int64(1), m.PopCount.Load())
		assert.Equal(t, int64(1), m.GrowCount.Load())
		assert.Equal(t, int64(1), m.ReinitCount.Load())
	})

	t.Run("nil collector option falls back to noop", func(t *testing.T) {
		v := WithLen[string, Offset]("metered", 2, testDefault(),
			WithMetricsCollector[string](nil))

		v.Push("a") // must not panic
		assert.Equal(t, 1, v.Len())
	})
}
