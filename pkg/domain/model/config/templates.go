package config

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

// Templates controls the wording of the messages the bot posts. Every field
// is a fmt pattern; the argument order is fixed and documented per field.
type Templates struct {
	// TeamLabel names the secondary team inserted into academy announcements
	TeamLabel string `toml:"team_label"`

	// ReactMessage args: event name, emoji markup, role name
	ReactMessage string `toml:"react_message"`

	// Announcement args: event name, time info, emoji markup, channel mention
	Announcement string `toml:"announcement"`

	// LabeledAnnouncement args: event name, team label, time info, emoji
	// markup, channel mention
	LabeledAnnouncement string `toml:"labeled_announcement"`

	// AcademyAnnouncement args: event name, time info, emoji markup
	AcademyAnnouncement string `toml:"academy_announcement"`
}

// DefaultTemplates returns the built-in wording
func DefaultTemplates() *Templates {
	return &Templates{
		TeamLabel:           "Academy",
		ReactMessage:        "React to give yourself a role for %s!\n\n%s: `%s`",
		Announcement:        "@everyone We'll be playing %s (%s)! hit the %s in #%s to play!",
		LabeledAnnouncement: "@everyone We'll be playing %s as %s (%s)! hit the %s in #%s to play!",
		AcademyAnnouncement: "@everyone We'll be playing %s (%s)! hit the %s to play!",
	}
}

// Validate rejects empty patterns; a missing TOML key falls back to the
// default wording before validation runs.
func (x *Templates) Validate() error {
	if x.TeamLabel == "" {
		return goerr.New("team_label is required")
	}
	if x.ReactMessage == "" || x.Announcement == "" || x.LabeledAnnouncement == "" || x.AcademyAnnouncement == "" {
		return goerr.New("all message templates are required")
	}
	return nil
}

// RenderReactMessage builds the reaction-role message body
func (x *Templates) RenderReactMessage(eventName, emoji, roleName string) string {
	return fmt.Sprintf(x.ReactMessage, eventName, emoji, roleName)
}

// RenderAnnouncement builds the broadcast for the main announcement channel.
// Academy mode inserts the team label into the wording.
func (x *Templates) RenderAnnouncement(eventName, timeInfo, emoji, channelMention string, academy bool) string {
	if academy {
		return fmt.Sprintf(x.LabeledAnnouncement, eventName, x.TeamLabel, timeInfo, emoji, channelMention)
	}
	return fmt.Sprintf(x.Announcement, eventName, timeInfo, emoji, channelMention)
}

// RenderAcademyAnnouncement builds the broadcast for the academy channel,
// which has no channel mention because the reaction message sits in the same
// channel.
func (x *Templates) RenderAcademyAnnouncement(eventName, timeInfo, emoji string) string {
	return fmt.Sprintf(x.AcademyAnnouncement, eventName, timeInfo, emoji)
}
