package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchDeliversInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	first := &orderListener{name: "first", out: &order}
	second := &orderListener{name: "second", out: &order}
	d.Subscribe(WaveEnded, first)
	d.Subscribe(WaveEnded, second)

	d.Dispatch(Event{Type: WaveEnded})
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r, EnemyKilled, EnemyEscaped)

	d.Dispatch(Event{Type: EnemyKilled, Data: EnemyKilledData{ID: 3, Reward: 15}})
	d.Unsubscribe(EnemyKilled, r)
	d.Dispatch(Event{Type: EnemyKilled})
	d.Dispatch(Event{Type: EnemyEscaped})
	d.Dispatch(Event{Type: GameOver})

	assert.Len(t, r.got, 2)
	assert.Equal(t, EnemyKilledData{ID: 3, Reward: 15}, r.got[0].Data)
	assert.Equal(t, EnemyEscaped, r.got[1].Type)
}

type orderListener struct {
	name string
	out  *[]string
}

func (l *orderListener) OnEvent(Event) { *l.out = append(*l.out, l.name) }
