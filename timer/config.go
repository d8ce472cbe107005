package timer

import (
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

const meterName = "github.com/on-the-ground/underbar_go/timer"

type Config struct {
	BufferSize int          // initial capacity of the pending queue; default: 16
	Logger     *zap.Logger  // default: no-op
	Meter      metric.Meter // default: no-op
}

func NewConfig(bufferSize int, logger *zap.Logger, meter metric.Meter) Config {
	return Config{
		BufferSize: bufferSize,
		Logger:     logger,
		Meter:      meter,
	}.normalized()
}

func (c Config) normalized() Config {
	if c.BufferSize <= 0 {
		c.BufferSize = 16
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	if c.Meter == nil {
		c.Meter = noop.NewMeterProvider().Meter(meterName)
	}
	return c
}

type loopMetrics struct {
	scheduled metric.Int64Counter
	fired     metric.Int64Counter
	panics    metric.Int64Counter
}

func newLoopMetrics(meter metric.Meter, logger *zap.Logger) loopMetrics {
	counter := func(name, desc string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(desc))
		if err != nil {
			logger.Warn("failed to create counter", zap.String("name", name), zap.Error(err))
			return noop.Int64Counter{}
		}
		return c
	}
	return loopMetrics{
		scheduled: counter("underbar.timer.scheduled", "count of tasks accepted by the loop"),
		fired:     counter("underbar.timer.fired", "count of tasks run by the loop"),
		panics:    counter("underbar.timer.panics", "count of tasks that panicked"),
	}
}
