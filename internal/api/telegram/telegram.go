package telegram

import (
	"context"
	"fmt"

	"github.com/VladPetriv/currency_names/internal/service"
	"github.com/fasthttp/router"
	"github.com/mymmrac/telego"
	"github.com/mymmrac/telego/telegoutil"
	"github.com/valyala/fasthttp"
)

const (
	updatesTypeWebhook = "webhook"
	updatesTypePolling = "polling"

	webhookPath = "/bot"
)

type telegramMessenger struct {
	api         *telego.Bot
	updatesType string
	srvAddr     string
}

var _ service.Messenger = (*telegramMessenger)(nil)

// Options represents options that required for creating new instance of telegram API.
type Options struct {
	// Token represents telegram bot token.
	Token string
	// UpdatesType represents a way we'll receive updates from Telegram. (webhook | polling)
	UpdatesType string

	// ServerAddress represents an address on which we'll start a server. (Required for webhook updates type)
	ServerAddress string
	// WebhookURL represents an url to which telegram will send updates. (Required for webhook updates type)
	WebhookURL string
}

// New creates a new instance of telegram API.
func New(opts Options) (*telegramMessenger, error) {
	if opts.UpdatesType != updatesTypeWebhook && opts.UpdatesType != updatesTypePolling {
		return nil, fmt.Errorf("unknown updates type: %s", opts.UpdatesType)
	}

	bot, err := telego.NewBot(opts.Token, telego.WithDefaultLogger(false, true))
	if err != nil {
		return nil, fmt.Errorf("init bot instance: %w", err)
	}

	if opts.UpdatesType == updatesTypeWebhook {
		err := bot.SetWebhook(&telego.SetWebhookParams{
			URL: opts.WebhookURL + webhookPath,
		})
		if err != nil {
			return nil, fmt.Errorf("set webhook url: %w", err)
		}
	}

	return &telegramMessenger{
		api:         bot,
		updatesType: opts.UpdatesType,
		srvAddr:     opts.ServerAddress,
	}, nil
}

func (t *telegramMessenger) ReadUpdates(ctx context.Context, result chan service.Message, errors chan error) {
	var (
		updates <-chan telego.Update
		err     error
	)

	switch t.updatesType {
	case updatesTypeWebhook:
		updates, err = t.api.UpdatesViaWebhook(webhookPath,
			telego.WithWebhookServer(telego.FastHTTPWebhookServer{
				Logger: t.api.Logger(),
				Server: &fasthttp.Server{},
				Router: router.New(),
			}),
		)
		if err != nil {
			sendError(ctx, errors, fmt.Errorf("register webhook telegram updates receiver: %w", err))

			return
		}

		go func() {
			err := t.api.StartWebhook(t.srvAddr)
			if err != nil {
				sendError(ctx, errors, fmt.Errorf("start webhook: %w", err))
			}
		}()
	case updatesTypePolling:
		updates, err = t.api.UpdatesViaLongPolling(nil)
		if err != nil {
			sendError(ctx, errors, fmt.Errorf("register long polling telegram updates receiver: %w", err))

			return
		}
	}

	forwardUpdates(ctx, updates, result)
}

// forwardUpdates passes text messages to result until updates is closed or ctx is done.
func forwardUpdates(ctx context.Context, updates <-chan telego.Update, result chan service.Message) {
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}

			// Only text messages are answered, other update kinds are skipped.
			if update.Message == nil || update.Message.Text == "" {
				continue
			}

			select {
			case result <- &TelegramUpdate{update: update}:
			case <-ctx.Done():
				return
			}
		}
	}
}

func sendError(ctx context.Context, errors chan error, err error) {
	select {
	case errors <- err:
	case <-ctx.Done():
	}
}

// TelegramUpdate wraps a telego update to satisfy service.Message.
type TelegramUpdate struct {
	update telego.Update
}

// NewUpdate wraps the telego update.
func NewUpdate(update telego.Update) *TelegramUpdate {
	return &TelegramUpdate{update: update}
}

func (t *TelegramUpdate) GetChatID() int {
	if t.update.Message == nil {
		return 0
	}

	return int(t.update.Message.Chat.ID)
}

func (t *TelegramUpdate) GetText() string {
	if t.update.Message == nil {
		return ""
	}

	return t.update.Message.Text
}

func (t *TelegramUpdate) GetSenderName() string {
	if t.update.Message == nil || t.update.Message.From == nil {
		return ""
	}

	return t.update.Message.From.FirstName
}

func (t *telegramMessenger) Close() error {
	switch t.updatesType {
	case updatesTypeWebhook:
		return t.api.StopWebhook()
	default:
		t.api.StopLongPolling()
		return nil
	}
}

func (t *telegramMessenger) SendMessage(chatID int, text string) error {
	message := telegoutil.Message(telegoutil.ID(int64(chatID)), text)

	_, err := t.api.SendMessage(message)
	if err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}

	return nil
}
