package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/VladPetriv/currency_names/internal/models"
	"github.com/VladPetriv/currency_names/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testMessage struct {
	chatID int
	text   string
	sender string
}

func (m testMessage) GetChatID() int        { return m.chatID }
func (m testMessage) GetText() string       { return m.text }
func (m testMessage) GetSenderName() string { return m.sender }

type sentMessage struct {
	chatID int
	text   string
}

type testMessenger struct {
	mu      sync.Mutex
	sent    []sentMessage
	sendErr error

	updates  []Message
	sentCH   chan sentMessage
	readDone chan struct{}
}

func (m *testMessenger) ReadUpdates(ctx context.Context, result chan Message, _ chan error) {
	if m.readDone != nil {
		defer close(m.readDone)
	}

	for _, update := range m.updates {
		select {
		case result <- update:
		case <-ctx.Done():
			return
		}
	}
}

func (m *testMessenger) SendMessage(chatID int, text string) error {
	if m.sendErr != nil {
		return m.sendErr
	}

	m.mu.Lock()
	m.sent = append(m.sent, sentMessage{chatID: chatID, text: text})
	m.mu.Unlock()

	if m.sentCH != nil {
		m.sentCH <- sentMessage{chatID: chatID, text: text}
	}

	return nil
}

func (m *testMessenger) Close() error { return nil }

func newTestEventService(messenger Messenger) *eventService {
	return newTestEventServiceWithCurrency(messenger, NewCurrency(logger.Nop()))
}

func newTestEventServiceWithCurrency(messenger Messenger, currencyService CurrencyService) *eventService {
	return NewEvent(&EventOptions{
		Logger:          logger.Nop(),
		APIs:            APIs{Messenger: messenger},
		CurrencyService: currencyService,
		WorkersCount:    2,
	})
}

type panickingCurrencyService struct {
	CurrencyService
}

func (panickingCurrencyService) GetCurrency(context.Context, string) (*models.Currency, error) {
	panic("currency table is broken")
}

type failingCurrencyService struct {
	CurrencyService
}

func (failingCurrencyService) GetCurrency(context.Context, string) (*models.Currency, error) {
	return nil, errors.New("unexpected failure")
}

func Test_getEventFromText(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc             string
		text             string
		expectedEvent    models.Event
		expectedArgument string
	}{
		{
			desc:          "start command",
			text:          "/start",
			expectedEvent: models.StartEvent,
		},
		{
			desc:          "list command with bot mention",
			text:          "/currencies@CurrencyNamesBot",
			expectedEvent: models.ListCurrenciesEvent,
		},
		{
			desc:             "get currency command with argument",
			text:             "/currency  usd ",
			expectedEvent:    models.GetCurrencyEvent,
			expectedArgument: "usd",
		},
		{
			desc:          "get currency command without argument",
			text:          "/currency",
			expectedEvent: models.GetCurrencyEvent,
		},
		{
			desc:          "unknown command",
			text:          "/convert USD EUR",
			expectedEvent: models.UnknownEvent,
		},
		{
			desc:          "plain text",
			text:          "hello there",
			expectedEvent: models.UnknownEvent,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			event, argument := getEventFromText(tc.text)
			assert.Equal(t, tc.expectedEvent, event)
			assert.Equal(t, tc.expectedArgument, argument)
		})
	}
}

func TestEvent_ReactOnMessage(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc     string
		text     string
		expected string
	}{
		{
			desc:     "start greets the sender",
			text:     "/start",
			expected: "Hello, John!\n\n" + usageMessage,
		},
		{
			desc:     "help shows usage",
			text:     "/help",
			expected: usageMessage,
		},
		{
			desc:     "known currency",
			text:     "/currency USD",
			expected: "US Dollar (USD)",
		},
		{
			desc:     "lower case code typed in chat",
			text:     "/currency chf",
			expected: "Swiss Franc (CHF)",
		},
		{
			desc:     "unknown currency",
			text:     "/currency xyz",
			expected: "Currency XYZ not found!\nUse /currencies to see known currencies.",
		},
		{
			desc:     "missing code",
			text:     "/currency",
			expected: "Please provide a currency code, e.g. /currency USD",
		},
		{
			desc:     "unknown text",
			text:     "what is the rate?",
			expected: "Didn't understand you!\nCould you please check available commands with /help",
		},
		{
			desc: "list currencies",
			text: "/currencies",
			expected: "Known currencies:\n" +
				"Australian Dollar (AUD)\n" +
				"British Pound Sterling (GBP)\n" +
				"Canadian Dollar (CAD)\n" +
				"Chinese Yuan (CNY)\n" +
				"Euro (EUR)\n" +
				"Indonesian Rupiah (IDR)\n" +
				"Japanese Yen (JPY)\n" +
				"Swiss Franc (CHF)\n" +
				"US Dollar (USD)",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			messenger := &testMessenger{}
			eventService := newTestEventService(messenger)

			err := eventService.ReactOnMessage(context.Background(), testMessage{chatID: 42, text: tc.text, sender: "John"})
			require.NoError(t, err)

			require.Len(t, messenger.sent, 1)
			assert.Equal(t, 42, messenger.sent[0].chatID)
			assert.Equal(t, tc.expected, messenger.sent[0].text)
		})
	}
}

func TestEvent_ReactOnMessage_SendFailed(t *testing.T) {
	t.Parallel()

	messenger := &testMessenger{sendErr: errors.New("network is down")}
	eventService := newTestEventService(messenger)

	err := eventService.ReactOnMessage(context.Background(), testMessage{chatID: 1, text: "/help"})
	assert.ErrorContains(t, err, "send message: network is down")
}

func TestEvent_Listen(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	messenger := &testMessenger{
		updates: []Message{
			testMessage{chatID: 1, text: "/currency EUR"},
			testMessage{chatID: 2, text: "/currency IDR"},
		},
		sentCH: make(chan sentMessage, 2),
	}
	eventService := newTestEventService(messenger)

	done := make(chan struct{})
	go func() {
		eventService.Listen(ctx)
		close(done)
	}()

	replies := make(map[int]string)
	for range 2 {
		select {
		case msg := <-messenger.sentCH:
			replies[msg.chatID] = msg.text
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for replies")
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("listen didn't stop after context cancellation")
	}

	assert.Equal(t, map[int]string{1: "Euro (EUR)", 2: "Indonesian Rupiah (IDR)"}, replies)
}

func TestEvent_handleMessage(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc            string
		currencyService CurrencyService
		text            string
		expectedError   string
		expectedReply   string
	}{
		{
			desc:            "positive: reply sent",
			currencyService: NewCurrency(logger.Nop()),
			text:            "/currency AUD",
			expectedReply:   "Australian Dollar (AUD)",
		},
		{
			desc:            "negative: panic in currency service is recovered",
			currencyService: panickingCurrencyService{},
			text:            "/currency AUD",
			expectedError:   "panic while processing bot update: currency table is broken",
		},
		{
			desc:            "negative: unexpected currency service error",
			currencyService: failingCurrencyService{},
			text:            "/currency AUD",
			expectedError:   "get currency reply: get currency: unexpected failure",
			expectedReply:   "Something went wrong!\nPlease try again later!",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			messenger := &testMessenger{}
			eventService := newTestEventServiceWithCurrency(messenger, tc.currencyService)

			var err error
			assert.NotPanics(t, func() {
				err = eventService.handleMessage(context.Background(), "job-1", testMessage{chatID: 9, text: tc.text})
			})

			if tc.expectedError != "" {
				assert.EqualError(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
			}

			if tc.expectedReply == "" {
				assert.Empty(t, messenger.sent)
				return
			}

			require.Len(t, messenger.sent, 1)
			assert.Equal(t, sentMessage{chatID: 9, text: tc.expectedReply}, messenger.sent[0])
		})
	}
}

func TestEvent_Listen_StopsReader(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	messenger := &testMessenger{
		updates: []Message{
			testMessage{chatID: 1, text: "/currency EUR"},
			testMessage{chatID: 2, text: "/currency IDR"},
			testMessage{chatID: 3, text: "/currency JPY"},
		},
		readDone: make(chan struct{}),
	}
	eventService := newTestEventService(messenger)

	eventService.Listen(ctx)

	select {
	case <-messenger.readDone:
	case <-time.After(5 * time.Second):
		t.Fatal("update reader kept running after listen stopped")
	}
}
