package telegram

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/denisAlshanov/rustyreel/internal/config"
	"github.com/denisAlshanov/rustyreel/internal/utils"
)

// Bot long-polls the Telegram Bot API and hands command updates to a
// Dispatcher.
type Bot struct {
	api        *tgbotapi.BotAPI
	cfg        *config.TelegramConfig
	dispatcher *Dispatcher
	stopOnce   sync.Once
}

// NewBot authenticates with token and builds a Dispatcher on top of it.
func NewBot(cfg *config.TelegramConfig, deps DispatcherDeps) (*Bot, error) {
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("bot token is required")
	}

	endpoint := cfg.APIEndpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}

	// getUpdates holds the connection open for up to PollTimeout.
	httpClient := &http.Client{Timeout: cfg.PollTimeout + cfg.RequestTimeout}

	api, err := tgbotapi.NewBotAPIWithClient(cfg.BotToken, endpoint, httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	api.Debug = cfg.Debug

	dispatcher := NewDispatcher(api, deps.Branding, deps.Wisdom, deps.Cooldown)
	dispatcher.SetUsername(api.Self.UserName)

	return &Bot{
		api:        api,
		cfg:        cfg,
		dispatcher: dispatcher,
	}, nil
}

// Connect verifies the token and registers the command menu.
func (b *Bot) Connect(ctx context.Context) error {
	me, err := withContext(ctx, b.api.GetMe)
	if err != nil {
		return fmt.Errorf("failed to connect to Telegram Bot API: %w", err)
	}

	_, err = withContext(ctx, func() (*tgbotapi.APIResponse, error) {
		return b.api.Request(tgbotapi.NewSetMyCommands(Commands...))
	})
	if err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	utils.LogInfo(ctx, "Connected to Telegram", utils.Fields{
		"bot":      me.UserName,
		"commands": len(Commands),
	})
	return nil
}

// Run polls for updates until ctx is cancelled. Each update is handled in its
// own goroutine; Run waits for in-flight handlers before returning.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = int(b.cfg.PollTimeout.Seconds())

	updates := b.api.GetUpdatesChan(u)

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			b.stop()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}

			updateCtx := utils.WithCorrelationID(ctx, utils.GenerateCorrelationID())
			wg.Add(1)
			go func() {
				defer wg.Done()
				b.dispatcher.HandleUpdate(updateCtx, update)
			}()
		}
	}
}

// Ping checks that the Bot API is reachable with the configured token.
// It returns when ctx is done even if the call is still in flight.
func (b *Bot) Ping(ctx context.Context) error {
	_, err := withContext(ctx, b.api.GetMe)
	return err
}

func (b *Bot) Close() error {
	b.stop()
	return nil
}

// stop closes the update channel; the library panics on a second call.
func (b *Bot) stop() {
	b.stopOnce.Do(b.api.StopReceivingUpdates)
}

// withContext runs a Bot API call, which takes no context of its own, and
// stops waiting for it once ctx is done. The call itself is bounded by the
// HTTP client timeout.
func withContext[T any](ctx context.Context, call func() (T, error)) (T, error) {
	type result struct {
		value T
		err   error
	}

	done := make(chan result, 1)
	go func() {
		value, err := call()
		done <- result{value: value, err: err}
	}()

	select {
	case r := <-done:
		return r.value, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
