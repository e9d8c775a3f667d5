package telegram

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denisAlshanov/rustyreel/internal/services/dearrow"
	"github.com/denisAlshanov/rustyreel/internal/services/wisdom"
	"github.com/denisAlshanov/rustyreel/internal/services/youtube"
)

type fakeSender struct {
	mu   sync.Mutex
	sent []tgbotapi.MessageConfig
	err  error
}

func (s *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		s.sent = append(s.sent, msg)
	}
	return tgbotapi.Message{}, s.err
}

func (s *fakeSender) last(t *testing.T) tgbotapi.MessageConfig {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()

	require.NotEmpty(t, s.sent, "expected a reply")
	return s.sent[len(s.sent)-1]
}

// fakeBranding parses with the real parser and answers from canned data.
type fakeBranding struct {
	res     *dearrow.BrandingResponse
	err     error
	lookups []string
}

func (f *fakeBranding) Lookup(ctx context.Context, raw string) (youtube.VideoID, *dearrow.BrandingResponse, error) {
	f.lookups = append(f.lookups, raw)

	id, err := youtube.ParseVideoID(raw)
	if err != nil {
		return "", nil, err
	}
	res, err := f.GetBranding(ctx, id)
	return id, res, err
}

func (f *fakeBranding) GetBranding(ctx context.Context, id youtube.VideoID) (*dearrow.BrandingResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.res, nil
}

func commandUpdate(userID int64, text string) tgbotapi.Update {
	command := strings.SplitN(text, " ", 2)[0]
	return tgbotapi.Update{
		UpdateID: 1,
		Message: &tgbotapi.Message{
			MessageID: 42,
			From:      &tgbotapi.User{ID: userID, UserName: "traveler"},
			Chat:      &tgbotapi.Chat{ID: 1000 + userID},
			Text:      text,
			Entities: []tgbotapi.MessageEntity{
				{Type: "bot_command", Offset: 0, Length: len(command)},
			},
		},
	}
}

func newTestDispatcher(branding dearrow.BrandingClient, cooldown time.Duration) (*Dispatcher, *fakeSender) {
	sender := &fakeSender{}
	d := NewDispatcher(sender, branding, wisdom.NewDispenserFromText("The moon does not hurry."), NewCooldown(cooldown))
	return d, sender
}

func TestHandleUpdateIgnoresNonCommands(t *testing.T) {
	d, sender := newTestDispatcher(&fakeBranding{}, 0)

	d.HandleUpdate(context.Background(), tgbotapi.Update{})
	d.HandleUpdate(context.Background(), tgbotapi.Update{Message: &tgbotapi.Message{
		Text: "hello there",
		Chat: &tgbotapi.Chat{ID: 1},
	}})

	assert.Empty(t, sender.sent)
}

func TestHandleUpdateHelp(t *testing.T) {
	for _, text := range []string{"/start", "/help"} {
		t.Run(text, func(t *testing.T) {
			d, sender := newTestDispatcher(&fakeBranding{}, 0)
			d.HandleUpdate(context.Background(), commandUpdate(7, text))

			reply := sender.last(t)
			assert.Equal(t, helpText, reply.Text)
			assert.Equal(t, int64(1007), reply.ChatID)
			assert.Equal(t, 42, reply.ReplyToMessageID)
		})
	}
}

func TestHandleUpdateUnknownCommand(t *testing.T) {
	d, sender := newTestDispatcher(&fakeBranding{}, 0)
	d.HandleUpdate(context.Background(), commandUpdate(7, "/dance"))

	assert.True(t, strings.HasPrefix(sender.last(t).Text, "Unknown command /dance"))
}

func TestHandleUpdateWisdomCooldown(t *testing.T) {
	d, sender := newTestDispatcher(&fakeBranding{}, time.Hour)

	d.HandleUpdate(context.Background(), commandUpdate(7, "/wisdom"))
	assert.Equal(t, "The moon does not hurry.", sender.last(t).Text)

	d.HandleUpdate(context.Background(), commandUpdate(7, "/wisdom"))
	assert.Contains(t, sender.last(t).Text, "The fox is still meditating")

	d.HandleUpdate(context.Background(), commandUpdate(8, "/wisdom"))
	assert.Equal(t, "The moon does not hurry.", sender.last(t).Text)
}

func TestHandleUpdateBrandingUsage(t *testing.T) {
	branding := &fakeBranding{}
	d, sender := newTestDispatcher(branding, 0)

	d.HandleUpdate(context.Background(), commandUpdate(7, "/branding"))

	assert.Equal(t, brandingUsage, sender.last(t).Text)
	assert.Empty(t, branding.lookups)
}

func TestHandleUpdateBrandingInvalidInput(t *testing.T) {
	d, sender := newTestDispatcher(&fakeBranding{}, 0)

	d.HandleUpdate(context.Background(), commandUpdate(7, "/branding not a url"))

	assert.Equal(t, "Error: `not a url` is not a valid youtube url or video ID", sender.last(t).Text)
}

func TestHandleUpdateBrandingTransportError(t *testing.T) {
	branding := &fakeBranding{err: &dearrow.TransportError{Err: errors.New("connection refused")}}
	d, sender := newTestDispatcher(branding, 0)

	d.HandleUpdate(context.Background(), commandUpdate(7, "/branding 7sAxhu04SlM"))

	assert.Equal(t, lookupFailedText, sender.last(t).Text)
}

func TestHandleUpdateBrandingSuccess(t *testing.T) {
	branding := &fakeBranding{res: &dearrow.BrandingResponse{
		Titles: []dearrow.TitleRecord{{Title: "A Better Title", Votes: 5, Locked: true}},
	}}
	d, sender := newTestDispatcher(branding, 0)

	d.HandleUpdate(context.Background(), commandUpdate(7, "/branding   https://www.youtube.com/watch?v=oBnCgu7bdQk&t=10s  "))

	require.Equal(t, []string{"https://www.youtube.com/watch?v=oBnCgu7bdQk&t=10s"}, branding.lookups)

	reply := sender.last(t)
	assert.Contains(t, reply.Text, "DeArrow branding for oBnCgu7bdQk")
	assert.Contains(t, reply.Text, "1. A Better Title (5 votes, locked)")
	assert.True(t, reply.DisableWebPagePreview)
}

func TestHandleUpdateSendFailureIsLogged(t *testing.T) {
	d, sender := newTestDispatcher(&fakeBranding{}, 0)
	sender.err = errors.New("forbidden: bot was blocked by the user")

	assert.NotPanics(t, func() {
		d.HandleUpdate(context.Background(), commandUpdate(7, "/help"))
	})
}

func TestHandleUpdateAddressedCommands(t *testing.T) {
	testCases := []struct {
		name    string
		text    string
		replies bool
	}{
		{"bare command", "/help", true},
		{"addressed to us", "/help@fox_bot", true},
		{"addressed to us any case", "/help@Fox_Bot", true},
		{"addressed to another bot", "/help@other_bot", false},
		{"wisdom for another bot", "/wisdom@SomeOtherBot", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, sender := newTestDispatcher(&fakeBranding{}, 0)
			d.SetUsername("fox_bot")

			d.HandleUpdate(context.Background(), commandUpdate(7, tc.text))

			if tc.replies {
				assert.Len(t, sender.sent, 1)
			} else {
				assert.Empty(t, sender.sent)
			}
		})
	}
}

func TestHandleUpdateAddressedCommandWithoutUsername(t *testing.T) {
	d, sender := newTestDispatcher(&fakeBranding{}, 0)

	d.HandleUpdate(context.Background(), commandUpdate(7, "/wisdom@fox_bot"))

	assert.Empty(t, sender.sent)
}

func TestHandleUpdateAddressedBrandingKeepsArguments(t *testing.T) {
	branding := &fakeBranding{res: &dearrow.BrandingResponse{}}
	d, sender := newTestDispatcher(branding, 0)
	d.SetUsername("fox_bot")

	d.HandleUpdate(context.Background(), commandUpdate(7, "/branding@fox_bot 7sAxhu04SlM"))

	assert.Equal(t, []string{"7sAxhu04SlM"}, branding.lookups)
	assert.Contains(t, sender.last(t).Text, "DeArrow branding for 7sAxhu04SlM")
}
