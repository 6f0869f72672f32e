package config

import domainConfig "github.com/Cl4sm/discord-ctftime-bot/pkg/domain/model/config"

// DefaultAnnouncement exposes the built-in announcement wording for tests
func DefaultAnnouncement() string {
	return domainConfig.DefaultTemplates().Announcement
}
