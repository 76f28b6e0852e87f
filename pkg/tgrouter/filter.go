package tgrouter

import (
	"strings"

	"lavkabot/pkg/tgrouter/callback"
)

type FilterType interface {
	MessageFilter | CommandFilter | StateFilter | CallbackFilter | any
}

type (
	MessageFilter  struct{}
	CommandFilter  struct{}
	StateFilter    struct{}
	CallbackFilter struct{}
)

type Filter[F FilterType] func(*Ctx) bool

func Message() Filter[MessageFilter] {
	return func(c *Ctx) bool {
		return c.update.Message != nil
	}
}

func Cmd(cmd string) Filter[CommandFilter] {
	return func(c *Ctx) bool {
		return c.update.Message != nil && c.update.Message.IsCommand() && c.update.Message.Command() == cmd
	}
}

// Text matches an exact reply-keyboard button press outside of any state.
func Text(text string) Filter[MessageFilter] {
	return func(c *Ctx) bool {
		return c.update.Message != nil && !c.update.Message.IsCommand() &&
			strings.TrimSpace(c.update.Message.Text) == text && c.stateIdle()
	}
}

// MenuCallback matches navigation tokens produced by the callback package.
func MenuCallback() Filter[CallbackFilter] {
	return func(c *Ctx) bool {
		return c.update.CallbackQuery != nil && callback.IsMenu(c.update.CallbackQuery.Data)
	}
}

// CallbackPrefix matches plain prefixed callbacks (admin buttons).
func CallbackPrefix(prefix string) Filter[CallbackFilter] {
	return func(c *Ctx) bool {
		return c.update.CallbackQuery != nil && strings.HasPrefix(c.update.CallbackQuery.Data, prefix)
	}
}

// State matches any update (message or callback) while the conversation
// is at the named step.
func State(name string) Filter[StateFilter] {
	return func(c *Ctx) bool {
		if c.update.Message == nil && c.update.CallbackQuery == nil {
			return false
		}
		c.hydrateState()
		return c.state != nil && c.state.stateName != nil && *c.state.stateName == name
	}
}

// StatePrefix matches every step of a flow whose states share a prefix.
func StatePrefix(prefix string) Filter[StateFilter] {
	return func(c *Ctx) bool {
		if c.update.Message == nil && c.update.CallbackQuery == nil {
			return false
		}
		c.hydrateState()
		return c.state != nil && c.state.stateName != nil && strings.HasPrefix(*c.state.stateName, prefix)
	}
}

func Any() Filter[any] {
	return func(c *Ctx) bool {
		return true
	}
}

func (c *Ctx) hydrateState() {
	if c.state != nil {
		return
	}
	s, data, err := c.GetState()
	if err == nil {
		c.SetState(s, data)
	}
}

func (c *Ctx) stateIdle() bool {
	c.hydrateState()
	return c.state == nil || c.state.stateName == nil || *c.state.stateName == ""
}
