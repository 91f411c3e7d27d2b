package service

import "context"

// APIs contains all external APIs used by services.
type APIs struct {
	Messenger Messenger
}

// Messenger handles messaging operations between the application and messaging platform.
type Messenger interface {
	// ReadUpdates retrieves new incoming updates/messages from the messaging platform.
	// It returns once ctx is done, pending updates are dropped.
	ReadUpdates(ctx context.Context, result chan Message, errors chan error)
	// SendMessage sends a text message to the specified chat.
	SendMessage(chatID int, text string) error

	// Close closes the underlying connection to the messaging platform.
	Close() error
}

// Message represents a message that was received from the messaging platform.
type Message interface {
	// GetChatID returns the ID of the chat the message was sent to.
	GetChatID() int
	// GetText returns the text content of the message.
	GetText() string
	// GetSenderName returns the name of the user who sent the message.
	GetSenderName() string
}
