package broadcast

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"lavkabot/internal/structs"
	"lavkabot/pkg/logger"
)

type fakeChatRepo struct {
	refs    []structs.ChatReference
	listErr error
}

func (f *fakeChatRepo) Save(_ context.Context, chatID int64) error {
	f.refs = append(f.refs, structs.ChatReference{ChatID: chatID})
	return nil
}

func (f *fakeChatRepo) List(_ context.Context) ([]structs.ChatReference, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.refs, nil
}

type fakeSender struct {
	failFor map[int64]bool
	sentTo  []int64
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	msg, ok := c.(tgbotapi.MessageConfig)
	if !ok {
		return tgbotapi.Message{}, errors.New("unexpected chattable")
	}
	if f.failFor[msg.ChatID] {
		return tgbotapi.Message{}, errors.New("forbidden: bot was blocked by the user")
	}
	f.sentTo = append(f.sentTo, msg.ChatID)
	return tgbotapi.Message{}, nil
}

func TestSendAllCountsDeliveries(t *testing.T) {
	repo := &fakeChatRepo{refs: []structs.ChatReference{
		{ChatID: 1}, {ChatID: 2}, {ChatID: 3},
	}}
	svc := &service{chatRepo: repo, logger: logger.NewNop()}
	sender := &fakeSender{failFor: map[int64]bool{2: true}}

	sent, failed, err := svc.SendAll(context.Background(), sender, "hello")
	if err != nil {
		t.Fatalf("SendAll returned error: %v", err)
	}
	if sent != 2 || failed != 1 {
		t.Fatalf("expected sent=2 failed=1, got sent=%d failed=%d", sent, failed)
	}
	if len(sender.sentTo) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(sender.sentTo))
	}
}

func TestSendAllAudienceFetchError(t *testing.T) {
	boom := errors.New("connection refused")
	svc := &service{chatRepo: &fakeChatRepo{listErr: boom}, logger: logger.NewNop()}
	sender := &fakeSender{}

	sent, failed, err := svc.SendAll(context.Background(), sender, "hello")
	if !errors.Is(err, boom) {
		t.Fatalf("SendAll err = %v, want the repo error", err)
	}
	if sent != 0 || failed != 0 || len(sender.sentTo) != 0 {
		t.Fatalf("expected no deliveries, got sent=%d failed=%d attempts=%d", sent, failed, len(sender.sentTo))
	}
}

func TestSendAllEmptyAudience(t *testing.T) {
	svc := &service{chatRepo: &fakeChatRepo{}, logger: logger.NewNop()}
	sender := &fakeSender{}

	sent, failed, err := svc.SendAll(context.Background(), sender, "hello")
	if err != nil {
		t.Fatalf("SendAll returned error: %v", err)
	}
	if sent != 0 || failed != 0 {
		t.Fatalf("expected zero counts, got sent=%d failed=%d", sent, failed)
	}
}
