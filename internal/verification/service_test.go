package verification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wedmarket/wedding-vendor-backend/internal/user"
)

const testUserID = "11111111-1111-1111-1111-111111111111"

type memoryStore struct {
	codes map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{codes: make(map[string]string)}
}

func (m *memoryStore) Put(_ context.Context, userID, channel, code string, _ time.Duration) error {
	m.codes[channel+":"+userID] = code
	return nil
}

func (m *memoryStore) Get(_ context.Context, userID, channel string) (string, error) {
	return m.codes[channel+":"+userID], nil
}

func (m *memoryStore) Delete(_ context.Context, userID, channel string) error {
	delete(m.codes, channel+":"+userID)
	return nil
}

type fakeUserService struct {
	user.Service
	verified map[string]string // userID -> channel
}

func (f *fakeUserService) GetByID(_ context.Context, id string) (*user.User, error) {
	if id != testUserID {
		return nil, user.ErrNotFound
	}
	return &user.User{ID: testUserID}, nil
}

func (f *fakeUserService) MarkVerified(_ context.Context, id, channel string) error {
	if f.verified == nil {
		f.verified = make(map[string]string)
	}
	f.verified[id] = channel
	return nil
}

type captureSender struct {
	lastCode string
}

func (c *captureSender) Send(_ context.Context, _, _, code string) error {
	c.lastCode = code
	return nil
}

func TestIssueAndCheck(t *testing.T) {
	store := newMemoryStore()
	users := &fakeUserService{}
	sender := &captureSender{}
	svc := NewService(store, users, sender, time.Minute)

	require.NoError(t, svc.Issue(context.Background(), testUserID, ChannelEmail))
	require.Len(t, sender.lastCode, 6)

	require.NoError(t, svc.Check(context.Background(), testUserID, ChannelEmail, sender.lastCode))
	assert.Equal(t, ChannelEmail, users.verified[testUserID])

	// The code is consumed: replaying it fails.
	err := svc.Check(context.Background(), testUserID, ChannelEmail, sender.lastCode)
	assert.ErrorIs(t, err, ErrCodeMismatch)
}

func TestCheckWrongCode(t *testing.T) {
	store := newMemoryStore()
	users := &fakeUserService{}
	sender := &captureSender{}
	svc := NewService(store, users, sender, time.Minute)

	require.NoError(t, svc.Issue(context.Background(), testUserID, ChannelSMS))

	err := svc.Check(context.Background(), testUserID, ChannelSMS, "000000")
	if sender.lastCode == "000000" {
		t.Skip("generated code collided with the guess")
	}
	assert.ErrorIs(t, err, ErrCodeMismatch)
	assert.Empty(t, users.verified)
}

func TestCheckWithoutIssue(t *testing.T) {
	svc := NewService(newMemoryStore(), &fakeUserService{}, &captureSender{}, time.Minute)

	err := svc.Check(context.Background(), testUserID, ChannelEmail, "123456")
	assert.ErrorIs(t, err, ErrCodeMismatch)
}

func TestIssueValidation(t *testing.T) {
	svc := NewService(newMemoryStore(), &fakeUserService{}, &captureSender{}, time.Minute)

	assert.ErrorIs(t, svc.Issue(context.Background(), testUserID, "carrier-pigeon"), ErrInvalidChannel)
	assert.ErrorIs(t, svc.Issue(context.Background(), "unknown-user", ChannelEmail), user.ErrNotFound)
	assert.ErrorIs(t, svc.Check(context.Background(), testUserID, "carrier-pigeon", "123456"), ErrInvalidChannel)
}

func TestReissueReplacesCode(t *testing.T) {
	store := newMemoryStore()
	users := &fakeUserService{}
	sender := &captureSender{}
	svc := NewService(store, users, sender, time.Minute)

	require.NoError(t, svc.Issue(context.Background(), testUserID, ChannelEmail))
	first := sender.lastCode
	require.NoError(t, svc.Issue(context.Background(), testUserID, ChannelEmail))
	second := sender.lastCode

	if first == second {
		t.Skip("consecutive codes collided")
	}

	assert.ErrorIs(t, svc.Check(context.Background(), testUserID, ChannelEmail, first), ErrCodeMismatch)
	require.NoError(t, svc.Check(context.Background(), testUserID, ChannelEmail, second))
}
