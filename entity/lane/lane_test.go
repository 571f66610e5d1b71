package lane

import (
	"testing"

	"github.com/F1-Guy/intersection-simulator/clock"
	"github.com/F1-Guy/intersection-simulator/entity"
	"github.com/F1-Guy/intersection-simulator/utils/config"
	"github.com/F1-Guy/intersection-simulator/utils/randengine"
	"github.com/stretchr/testify/assert"
)

// fixedEngine 固定到达数的randengine替身
type fixedEngine struct {
	arrivals int
}

func (e fixedEngine) Poisson(lambda float64) int {
	return e.arrivals
}

// testContext 只提供随机数引擎的ITaskContext替身
type testContext struct {
	engine entity.IEngine
}

func (c testContext) Clock() *clock.Clock                  { return nil }
func (c testContext) Engine() entity.IEngine               { return c.engine }
func (c testContext) LaneManager() entity.ILaneManager     { return nil }
func (c testContext) RuntimeConfig() *config.RuntimeConfig { return nil }

func TestCarQueueDrain(t *testing.T) {
	// queue=5, green, no arrivals: expect 4, 3, 2, 1, 0
	l := newLane(testContext{fixedEngine{0}}, entity.LaneClassCar, 0)
	l.queueLength = 5
	l.SetSignal(true)

	for _, want := range []int{4, 3, 2, 1, 0} {
		l.Update()
		assert.Equal(t, want, l.QueueLength())
	}

	// empty queue stays empty on green
	l.Update()
	assert.Equal(t, 0, l.QueueLength())
}

func TestBikeFloorRule(t *testing.T) {
	// queue=1, green, no arrivals: one bike departs, not two
	l := newLane(testContext{fixedEngine{0}}, entity.LaneClassBike, 0)
	l.queueLength = 1
	l.SetSignal(true)

	l.Update()
	assert.Equal(t, 0, l.QueueLength())
}

func TestBikeDischargesInPairs(t *testing.T) {
	l := newLane(testContext{fixedEngine{0}}, entity.LaneClassBike, 0)
	l.queueLength = 6
	l.SetSignal(true)

	for _, want := range []int{4, 2, 0} {
		l.Update()
		assert.Equal(t, want, l.QueueLength())
	}
}

func TestNoDepartureOnRed(t *testing.T) {
	// arrivals accumulate regardless of signal state
	l := newLane(testContext{fixedEngine{2}}, entity.LaneClassCar, 0.5)
	l.SetSignal(false)

	for i := 1; i <= 5; i++ {
		l.Update()
		assert.Equal(t, 2*i, l.QueueLength())
	}
}

func TestArrivalsOffsetDepartures(t *testing.T) {
	// one arrival and one departure per tick on a green car lane
	l := newLane(testContext{fixedEngine{1}}, entity.LaneClassCar, 0.5)
	l.queueLength = 3
	l.SetSignal(true)

	l.Update()
	assert.Equal(t, 3, l.QueueLength())
}

func TestQueueNeverNegative(t *testing.T) {
	// random arrivals with alternating signal over many ticks
	ctx := testContext{randengine.New(42)}
	lanes := []*Lane{
		newLane(ctx, entity.LaneClassCar, 0.3),
		newLane(ctx, entity.LaneClassBike, 0.1),
	}
	for tick := 0; tick < 10000; tick++ {
		for _, l := range lanes {
			l.SetSignal(tick%7 < 3)
			l.Update()
			assert.GreaterOrEqual(t, l.QueueLength(), 0)
		}
	}
}
