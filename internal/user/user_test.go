package user

import (
	"context"
	"testing"

	"lavkabot/internal/structs"
	"lavkabot/pkg/logger"
)

func TestValidatePhone(t *testing.T) {
	svc := &service{logger: logger.NewNop()}

	valid := []string{"+79005553535", "+70000000000"}
	for _, phone := range valid {
		if err := svc.ValidatePhone(phone); err != nil {
			t.Errorf("expected %q to be accepted, got %v", phone, err)
		}
	}

	invalid := []string{
		"79005553535",    // missing plus
		"+7900555353",    // too short
		"+790055535350",  // too long
		"+89005553535",   // wrong country code
		"+7900555353a",   // letter
		"",
	}
	for _, phone := range invalid {
		if err := svc.ValidatePhone(phone); err == nil {
			t.Errorf("expected %q to be rejected", phone)
		}
	}
}

type fakeUserRepo struct {
	users map[int64]*structs.User
}

func (f *fakeUserRepo) GetByUserID(_ context.Context, userID int64) (structs.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return structs.User{}, structs.ErrNotFound
	}
	return *u, nil
}

func (f *fakeUserRepo) Create(_ context.Context, req structs.UpsertUser) error {
	if _, ok := f.users[req.UserID]; ok {
		return structs.ErrUniqueViolation
	}
	f.users[req.UserID] = &structs.User{
		UserID:    req.UserID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}
	return nil
}

func (f *fakeUserRepo) SetPhone(_ context.Context, userID int64, phone string) error {
	u, ok := f.users[userID]
	if !ok {
		return structs.ErrNotFound
	}
	u.Phone = phone
	return nil
}

type fakeChatRepo struct {
	chats map[int64]bool
}

func (f *fakeChatRepo) Save(_ context.Context, chatID int64) error {
	f.chats[chatID] = true
	return nil
}

func (f *fakeChatRepo) List(_ context.Context) ([]structs.ChatReference, error) {
	var out []structs.ChatReference
	for id := range f.chats {
		out = append(out, structs.ChatReference{ChatID: id})
	}
	return out, nil
}

func TestSaveChatRecordsRecipient(t *testing.T) {
	chats := &fakeChatRepo{chats: make(map[int64]bool)}
	svc := &service{chatRepo: chats, logger: logger.NewNop()}

	if err := svc.SaveChat(context.Background(), 555); err != nil {
		t.Fatalf("SaveChat returned error: %v", err)
	}
	if !chats.chats[555] {
		t.Fatalf("expected chat 555 to be saved")
	}
}

func TestEnsureIgnoresDuplicates(t *testing.T) {
	repo := &fakeUserRepo{users: make(map[int64]*structs.User)}
	svc := &service{userRepo: repo, logger: logger.NewNop()}
	ctx := context.Background()

	req := structs.UpsertUser{UserID: 42, FirstName: "Ann"}
	if err := svc.Ensure(ctx, req); err != nil {
		t.Fatalf("Ensure returned error: %v", err)
	}
	if err := svc.Ensure(ctx, req); err != nil {
		t.Fatalf("duplicate Ensure returned error: %v", err)
	}
}

func TestRegisterUpdatesPhoneForExistingUser(t *testing.T) {
	repo := &fakeUserRepo{users: make(map[int64]*structs.User)}
	svc := &service{userRepo: repo, logger: logger.NewNop()}
	ctx := context.Background()

	if err := svc.Ensure(ctx, structs.UpsertUser{UserID: 42}); err != nil {
		t.Fatalf("Ensure returned error: %v", err)
	}
	if err := svc.Register(ctx, structs.UpsertUser{UserID: 42, Phone: "+79005553535"}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if got := repo.users[42].Phone; got != "+79005553535" {
		t.Fatalf("expected phone to be stored, got %q", got)
	}
}
