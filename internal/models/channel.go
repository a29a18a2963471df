// Package models holds the declarative navigation-tree types that a
// deployment builds once at boot: NavigationMenu, FormFlow, ListInput and
// ConditionalFlow. The tree is immutable and read-only once constructed,
// shared across every turn.
package models

// Channel tags the transport a turn arrived on. It affects only response
// framing (engine.Controller strips the "CON "/"END " prefix for chat
// channels), never tree-walking or form semantics.
type Channel string

const (
	ChannelUSSD     Channel = "USSD"
	ChannelWhatsApp Channel = "WHATSAPP"
	ChannelTelegram Channel = "TELEGRAM"
)

// Turn is the immutable input to one evaluation of the engine.
type Turn struct {
	MSISDN     string
	SessionID  string
	USSDString string
	Channel    Channel
}

// DefaultBackSymbol and DefaultHomeSymbol are the navigation tokens used
// when a deployment does not override them in config.
const (
	DefaultBackSymbol = "0"
	DefaultHomeSymbol = "00"
)
