package types

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// snowflakePattern matches Discord snowflake identifiers. Discord encodes
// them as decimal strings on the wire, up to 20 digits.
var snowflakePattern = regexp.MustCompile(`^[0-9]{1,20}$`)

func validateSnowflake(kind, v string) error {
	if v == "" {
		return goerr.New(kind + " ID cannot be empty")
	}
	if !snowflakePattern.MatchString(v) {
		return goerr.New(kind+" ID must be a decimal snowflake", goerr.V("id", v))
	}
	return nil
}

// GuildID represents a Discord guild (server) identifier
type GuildID string

// Validate checks if the GuildID is a valid snowflake
func (x GuildID) Validate() error { return validateSnowflake("guild", string(x)) }

// String returns the string representation of GuildID
func (x GuildID) String() string { return string(x) }

// ChannelID represents a Discord channel identifier
type ChannelID string

// Validate checks if the ChannelID is a valid snowflake
func (x ChannelID) Validate() error { return validateSnowflake("channel", string(x)) }

// String returns the string representation of ChannelID
func (x ChannelID) String() string { return string(x) }

// Mention returns the channel mention markup understood by Discord clients
func (x ChannelID) Mention() string { return "<#" + string(x) + ">" }

// MessageID represents a Discord message identifier
type MessageID string

// Validate checks if the MessageID is a valid snowflake
func (x MessageID) Validate() error { return validateSnowflake("message", string(x)) }

// String returns the string representation of MessageID
func (x MessageID) String() string { return string(x) }

// EmojiID represents a custom Discord emoji identifier
type EmojiID string

// Validate checks if the EmojiID is a valid snowflake
func (x EmojiID) Validate() error { return validateSnowflake("emoji", string(x)) }

// String returns the string representation of EmojiID
func (x EmojiID) String() string { return string(x) }

// RoleID represents a Discord role identifier
type RoleID string

// Validate checks if the RoleID is a valid snowflake
func (x RoleID) Validate() error { return validateSnowflake("role", string(x)) }

// String returns the string representation of RoleID
func (x RoleID) String() string { return string(x) }

// UserID represents a Discord user identifier
type UserID string

// Validate checks if the UserID is a valid snowflake
func (x UserID) Validate() error { return validateSnowflake("user", string(x)) }

// String returns the string representation of UserID
func (x UserID) String() string { return string(x) }
