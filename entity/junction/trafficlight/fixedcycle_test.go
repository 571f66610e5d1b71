package trafficlight_test

import (
	"testing"

	"github.com/F1-Guy/intersection-simulator/entity"
	"github.com/F1-Guy/intersection-simulator/entity/junction/trafficlight"
	"github.com/F1-Guy/intersection-simulator/utils/config"
	"github.com/stretchr/testify/assert"
)

// stubLane 仅记录信号灯状态的ILane替身
type stubLane struct {
	class entity.LaneClass
	green bool
}

func (l *stubLane) Class() entity.LaneClass { return l.class }
func (l *stubLane) Business() float64       { return 0 }
func (l *stubLane) SignalGreen() bool       { return l.green }
func (l *stubLane) SetSignal(green bool)    { l.green = green }
func (l *stubLane) QueueLength() int        { return 0 }
func (l *stubLane) Update()                 {}

// 默认周期参数：自行车绿灯10，全红10，机动车绿灯30，周期60
func defaultTiming() *config.RuntimeConfig {
	return &config.RuntimeConfig{
		GreenCars:   30,
		GreenBikes:  10,
		RedTimeAll:  10,
		CycleLength: 60,
	}
}

func newLightWithLanes() (*trafficlight.FixedCycle, *stubLane, *stubLane) {
	car := &stubLane{class: entity.LaneClassCar}
	bike := &stubLane{class: entity.LaneClassBike}
	light := trafficlight.NewFixedCycle(defaultTiming(), []entity.ILane{car, bike})
	return light, car, bike
}

func TestPhaseBoundaries(t *testing.T) {
	light, car, bike := newLightWithLanes()

	// tick 0: bike green, car red
	light.Apply(0)
	assert.True(t, bike.green)
	assert.False(t, car.green)

	// ticks 1..9: held
	for tick := int32(1); tick < 10; tick++ {
		light.Apply(tick)
		assert.True(t, bike.green)
		assert.False(t, car.green)
	}

	// tick 10: all red
	light.Apply(10)
	assert.False(t, bike.green)
	assert.False(t, car.green)

	// tick 20: car green
	light.Apply(20)
	assert.False(t, bike.green)
	assert.True(t, car.green)

	// tick 50: all red again
	light.Apply(50)
	assert.False(t, bike.green)
	assert.False(t, car.green)

	// tick 60 == tick 0
	light.Apply(60)
	assert.True(t, bike.green)
	assert.False(t, car.green)
}

func TestSignalExclusivity(t *testing.T) {
	light, car, bike := newLightWithLanes()

	// never both green across several full cycles
	for tick := int32(0); tick < 10*60; tick++ {
		light.Apply(tick)
		assert.False(t, car.green && bike.green, "both green at tick %d", tick)
	}
}

func TestCyclePeriodicity(t *testing.T) {
	a, carA, bikeA := newLightWithLanes()
	b, carB, bikeB := newLightWithLanes()

	for tick := int32(0); tick < 60; tick++ {
		a.Apply(tick)
		b.Apply(tick + a.CycleLength())
		assert.Equal(t, carA.green, carB.green, "car state differs at tick %d", tick)
		assert.Equal(t, bikeA.green, bikeB.green, "bike state differs at tick %d", tick)
	}
}

func TestNonBoundaryTicksAreNoOps(t *testing.T) {
	light, car, bike := newLightWithLanes()

	light.Apply(20)
	assert.True(t, car.green)

	// forcing a state and re-applying a non-boundary tick must not touch it
	car.green = false
	bike.green = true
	light.Apply(21)
	assert.False(t, car.green)
	assert.True(t, bike.green)
}

func TestOnlyMatchingClassAffected(t *testing.T) {
	light, car, bike := newLightWithLanes()

	// tick 10 is a bike boundary: car state must be untouched
	car.green = true
	light.Apply(10)
	assert.False(t, bike.green)
	assert.True(t, car.green)
}
