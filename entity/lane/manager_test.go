package lane

import (
	"testing"

	"github.com/F1-Guy/intersection-simulator/entity"
	"github.com/F1-Guy/intersection-simulator/utils/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerInit(t *testing.T) {
	m := NewManager(testContext{fixedEngine{0}})
	err := m.Init([]config.LaneDescriptor{
		{Type: "car", Business: 0.4},
		{Type: "bike", Business: 0.2},
		{Type: "car", Business: 0.3},
	})
	require.NoError(t, err)
	require.Len(t, m.Lanes(), 3)

	// per-class views keep configuration order
	cars := m.ByClass(entity.LaneClassCar)
	require.Len(t, cars, 2)
	assert.Equal(t, 0.4, cars[0].Business())
	assert.Equal(t, 0.3, cars[1].Business())
	assert.Len(t, m.ByClass(entity.LaneClassBike), 1)
}

func TestManagerInitBadType(t *testing.T) {
	m := NewManager(testContext{fixedEngine{0}})
	err := m.Init([]config.LaneDescriptor{{Type: "tram", Business: 0.4}})
	assert.Error(t, err)
}

func TestManagerSnapshot(t *testing.T) {
	m := NewManager(testContext{fixedEngine{1}})
	require.NoError(t, m.Init([]config.LaneDescriptor{
		{Type: "bike", Business: 0.2},
		{Type: "car", Business: 0.4},
	}))
	m.Update()
	snap := m.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, entity.LaneClassBike, snap[0].Class)
	assert.Equal(t, 1, snap[0].QueueLength)
	assert.False(t, snap[0].SignalGreen)
	assert.Equal(t, entity.LaneClassCar, snap[1].Class)
	assert.Equal(t, 1, snap[1].QueueLength)
}
