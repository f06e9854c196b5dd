package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewScheduler_ValidNames(t *testing.T) {
	cfg := testConfig(5, 2).SchedulerConfig()
	tests := []struct {
		name string
		want Scheduler
	}{
		{"", &DirectionalSweep{}},
		{StrategySweep, &DirectionalSweep{}},
		{StrategyShuttle, &Shuttle{}},
	}
	for _, tt := range tests {
		sched := NewScheduler(tt.name, cfg)
		assert.IsType(t, tt.want, sched, "NewScheduler(%q)", tt.name)
	}
}

func TestNewScheduler_UnknownName_Panics(t *testing.T) {
	assert.Panics(t, func() { NewScheduler("round-robin", SchedulerConfig{FloorCount: 3}) })
}

func TestValidStrategyNames_SortedWithoutEmpty(t *testing.T) {
	assert.Equal(t, []string{StrategyShuttle, StrategySweep}, ValidStrategyNames())
	assert.True(t, IsValidStrategy(""))
	assert.False(t, IsValidStrategy("random"))
}
