package service

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/VladPetriv/currency_names/internal/models"
	"github.com/VladPetriv/currency_names/pkg/errs"
	"github.com/VladPetriv/currency_names/pkg/logger"
	"github.com/VladPetriv/currency_names/pkg/worker"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type eventService struct {
	logger          *logger.Logger
	apis            APIs
	currencyService CurrencyService
	workersCount    int
}

var _ EventService = (*eventService)(nil)

// EventOptions represents an input options for creating new instance of event service.
type EventOptions struct {
	Logger          *logger.Logger
	APIs            APIs
	CurrencyService CurrencyService
	WorkersCount    int
}

// NewEvent returns new instance of event service.
func NewEvent(opts *EventOptions) *eventService {
	return &eventService{
		logger:          opts.Logger,
		apis:            opts.APIs,
		currencyService: opts.CurrencyService,
		workersCount:    opts.WorkersCount,
	}
}

func (e *eventService) Listen(ctx context.Context) {
	logger := e.logger.With().Str("name", "eventService.Listen").Logger()

	updatesCH := make(chan Message)
	errorsCH := make(chan error)

	go e.apis.Messenger.ReadUpdates(ctx, updatesCH, errorsCH)

	pool := worker.NewPool(e.logger, e.workersCount, e.handleMessage)
	pool.Start(ctx)
	defer pool.Stop()

	logger.Info().Int("workersCount", e.workersCount).Msg("listening for updates")
	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("stopped listening for updates")
			return
		case msg := <-updatesCH:
			pool.AddJob(ctx, uuid.NewString(), msg)
		case err := <-errorsCH:
			logger.Error().Err(err).Msg("read updates")
		}
	}
}

func (e *eventService) handleMessage(ctx context.Context, id string, msg Message) (err error) {
	logger := e.logger.With().Str("name", "eventService.handleMessage").Str("jobID", id).Logger()

	defer func() {
		if r := recover(); r != nil {
			logger.Error().
				Any("panic", r).
				Str("stack", string(debug.Stack())).
				Msg("recovered from panic while processing bot update")

			err = fmt.Errorf("panic while processing bot update: %v", r)
		}
	}()

	logger.Debug().
		Int("chatID", msg.GetChatID()).
		Str("text", msg.GetText()).
		Str("sender", msg.GetSenderName()).
		Msg("got message")

	err = e.ReactOnMessage(ctx, msg)
	if err != nil {
		logger.Error().Err(err).Msg("react on message")

		sendErr := e.apis.Messenger.SendMessage(msg.GetChatID(), "Something went wrong!\nPlease try again later!")
		if sendErr != nil {
			logger.Error().Err(sendErr).Msg("send error message")
		}

		return err
	}

	return nil
}

// ReactOnMessage determines the event from the message text and replies to the sender.
func (e *eventService) ReactOnMessage(ctx context.Context, msg Message) error {
	logger := e.logger.With().Str("name", "eventService.ReactOnMessage").Logger()

	event, argument := getEventFromText(msg.GetText())
	logger.Debug().Any("event", event).Str("argument", argument).Msg("got event from message")

	var reply string
	switch event {
	case models.StartEvent:
		reply = fmt.Sprintf("Hello, %s!\n\n%s", msg.GetSenderName(), usageMessage)
	case models.HelpEvent:
		reply = usageMessage
	case models.ListCurrenciesEvent:
		reply = e.listCurrenciesReply(ctx)
	case models.GetCurrencyEvent:
		var err error
		reply, err = e.getCurrencyReply(ctx, argument)
		if err != nil {
			logger.Error().Err(err).Msg("get currency reply")
			return fmt.Errorf("get currency reply: %w", err)
		}
	default:
		reply = "Didn't understand you!\nCould you please check available commands with " + models.BotHelpCommand
	}

	err := e.apis.Messenger.SendMessage(msg.GetChatID(), reply)
	if err != nil {
		logger.Error().Err(err).Msg("send message")
		return fmt.Errorf("send message: %w", err)
	}

	logger.Info().Any("event", event).Msg("reacted on message")
	return nil
}

var usageMessage = strings.Join([]string{
	"Available commands:",
	models.BotListCurrenciesCommand + " - list all known currencies",
	models.BotGetCurrencyCommand + " <code> - get the name of a currency, e.g. " + models.BotGetCurrencyCommand + " USD",
	models.BotHelpCommand + " - show this message",
}, "\n")

func (e *eventService) listCurrenciesReply(ctx context.Context) string {
	currencies := e.currencyService.ListCurrencies(ctx)

	lines := make([]string, 0, len(currencies)+1)
	lines = append(lines, "Known currencies:")
	for _, c := range currencies {
		lines = append(lines, c.GetName())
	}

	return strings.Join(lines, "\n")
}

func (e *eventService) getCurrencyReply(ctx context.Context, argument string) (string, error) {
	if argument == "" {
		return fmt.Sprintf("Please provide a currency code, e.g. %s USD", models.BotGetCurrencyCommand), nil
	}

	// Chat input is typed by people, so the code is upper-cased before the case-sensitive lookup.
	code := cases.Upper(language.Und).String(argument)

	c, err := e.currencyService.GetCurrency(ctx, code)
	if err != nil {
		if errs.IsExpected(err) {
			return fmt.Sprintf("Currency %s not found!\nUse %s to see known currencies.", code, models.BotListCurrenciesCommand), nil
		}

		return "", fmt.Errorf("get currency: %w", err)
	}

	return c.GetName(), nil
}

// getEventFromText splits the message text into a command and its argument.
// Bot mentions like /currency@SomeBot are stripped from the command.
func getEventFromText(text string) (models.Event, string) {
	command, argument, _ := strings.Cut(strings.TrimSpace(text), " ")
	command, _, _ = strings.Cut(command, "@")

	event, ok := models.CommandToEvent[command]
	if !ok {
		return models.UnknownEvent, ""
	}

	return event, strings.TrimSpace(argument)
}
