package tgrouter

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"lavkabot/pkg/tgrouter/interfaces"
)

type ctxState struct {
	stateName *string
	data      map[string]string
}

type Ctx struct {
	update   *tgbotapi.Update
	bot      *tgbotapi.BotAPI
	handlers Handler
	index    int8
	state    *ctxState
	stateDB  interfaces.State
	Context  context.Context
}

func (c *Ctx) reset() {
	c.handlers = nil
	c.index = -1
	c.state = nil
	c.Context = context.Background()
}

func (c *Ctx) Bot() *tgbotapi.BotAPI {
	return c.bot
}

func (c *Ctx) Update() *tgbotapi.Update {
	return c.update
}

func (c *Ctx) SetState(state string, data map[string]string) {
	c.state = &ctxState{
		stateName: &state,
		data:      data,
	}
}

// StateName returns the hydrated conversation state, "" when idle.
func (c *Ctx) StateName() string {
	if c.state == nil || c.state.stateName == nil {
		return ""
	}
	return *c.state.stateName
}

// StateValue returns a value from the hydrated state data map.
func (c *Ctx) StateValue(key string) string {
	if c.state == nil {
		return ""
	}
	return c.state.data[key]
}

// StateData returns a copy of the hydrated state data map, never nil.
func (c *Ctx) StateData() map[string]string {
	out := make(map[string]string)
	if c.state != nil {
		for k, v := range c.state.data {
			out[k] = v
		}
	}
	return out
}

func (c *Ctx) UpdateState(state string, data map[string]string) error {
	c.SetState(state, data)
	return c.stateDB.Set(c.Context, int(c.update.SentFrom().ID), int(c.update.FromChat().ID), state, data)
}

func (c *Ctx) GetState() (string, map[string]string, error) {
	return c.stateDB.Get(c.Context, int(c.update.SentFrom().ID), int(c.update.FromChat().ID))
}

func (c *Ctx) ClearState() error {
	c.SetState("", nil)
	return c.stateDB.Delete(c.Context, int(c.update.SentFrom().ID), int(c.update.FromChat().ID))
}

func (c *Ctx) UpdateStateData(m map[string]string) error {
	if c.state != nil {
		if c.state.data == nil {
			c.state.data = map[string]string{}
		}
		for k, v := range m {
			c.state.data[k] = v
		}
	}
	return c.stateDB.UpdateData(c.Context, int(c.update.SentFrom().ID), int(c.update.FromChat().ID), m)
}

// next executes the pending handlers in the chain.
func (c *Ctx) next() {
	c.index++
	c.handlers(c)
}
