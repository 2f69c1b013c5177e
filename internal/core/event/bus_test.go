package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventsArriveNextTick(t *testing.T) {
	b := NewBus()
	var got []int
	Subscribe(b, func(e LoreChanged) { got = append(got, e.RaceID) })

	Emit(b, LoreChanged{RaceID: 3})
	Emit(b, LoreChanged{RaceID: 4})
	assert.Equal(t, 2, b.Pending())
	b.DispatchAll()
	assert.Empty(t, got, "nothing in front before the swap")

	b.SwapBuffers()
	assert.Zero(t, b.Pending())
	b.DispatchAll()
	assert.Equal(t, []int{3, 4}, got)

	b.SwapBuffers()
	b.DispatchAll()
	assert.Equal(t, []int{3, 4}, got, "events are delivered once")
}

func TestHandlersFilterByType(t *testing.T) {
	b := NewBus()
	kills, deaths := 0, 0
	Subscribe(b, func(MonsterSlain) { kills++ })
	Subscribe(b, func(PlayerKilled) { deaths++ })

	Emit(b, MonsterSlain{RaceID: 1})
	Emit(b, MonsterSlain{RaceID: 2})
	Emit(b, PlayerKilled{RaceID: 2})
	b.SwapBuffers()
	b.DispatchAll()
	assert.Equal(t, 2, kills)
	assert.Equal(t, 1, deaths)
}
