package admin

import (
	"strings"
	"testing"

	"lavkabot/internal/texts"
)

func TestBackWordNeverFallsThroughToTheStep(t *testing.T) {
	// The first product step and the single step flows have nothing to
	// rewind to. The reply must still consume the word, otherwise the
	// broadcast step would mail it out as the message text.
	for _, state := range []string{StateName, StateBannerImage, StateBroadcastText} {
		reply, prev := backReply(state)
		if prev != "" {
			t.Errorf("backReply(%q) rewinds to %q, want no rewind", state, prev)
		}
		if reply != texts.NoStepBack {
			t.Errorf("backReply(%q) = %q, want %q", state, reply, texts.NoStepBack)
		}
	}
}

func TestBackWordRewindsProductSteps(t *testing.T) {
	cases := []struct {
		state string
		prev  string
	}{
		{StateDescription, StateName},
		{StateCategory, StateDescription},
		{StatePrice, StateCategory},
		{StateImage, StatePrice},
	}
	for _, tc := range cases {
		reply, prev := backReply(tc.state)
		if prev != tc.prev {
			t.Errorf("backReply(%q) rewinds to %q, want %q", tc.state, prev, tc.prev)
		}
		if !strings.HasPrefix(reply, texts.BackToStep) {
			t.Errorf("backReply(%q) = %q, want a reprompt", tc.state, reply)
		}
	}
}
