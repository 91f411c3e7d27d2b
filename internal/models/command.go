package models

// Commands that we can receive from bot.
const (
	// BotStartCommand represents the command to start the bot
	BotStartCommand string = "/start"
	// BotHelpCommand represents the command to show the usage help
	BotHelpCommand string = "/help"
	// BotListCurrenciesCommand represents the command to list all known currencies
	BotListCurrenciesCommand string = "/currencies"
	// BotGetCurrencyCommand represents the command to get the name of a currency by its code
	BotGetCurrencyCommand string = "/currency"
)

// Event represents a bot event which is determined by the received command.
type Event string

const (
	// StartEvent is produced by the start command.
	StartEvent Event = "start"
	// HelpEvent is produced by the help command.
	HelpEvent Event = "help"
	// ListCurrenciesEvent is produced by the list currencies command.
	ListCurrenciesEvent Event = "list_currencies"
	// GetCurrencyEvent is produced by the get currency command.
	GetCurrencyEvent Event = "get_currency"
	// UnknownEvent is produced by any unsupported text.
	UnknownEvent Event = "unknown"
)

// CommandToEvent maps bot commands to the events they produce.
var CommandToEvent = map[string]Event{
	BotStartCommand:          StartEvent,
	BotHelpCommand:           HelpEvent,
	BotListCurrenciesCommand: ListCurrenciesEvent,
	BotGetCurrencyCommand:    GetCurrencyEvent,
}
