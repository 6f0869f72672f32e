package usecase

import (
	"math/rand/v2"

	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/interfaces"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/model/config"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/service/ctftime"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/service/discord"
)

// UseCases wires the CTF workspace operations together
type UseCases struct {
	repo      interfaces.BindingRepository
	discord   discord.Service
	schedule  ctftime.Service
	cfg       *config.Discord
	templates *config.Templates
	pickIndex func(n int) int
}

// Option is a functional option for UseCases configuration
type Option func(*UseCases)

// WithTemplates overrides the default message wording
func WithTemplates(t *config.Templates) Option {
	return func(uc *UseCases) {
		uc.templates = t
	}
}

// WithEmojiPicker replaces the uniform-random emoji selection, used by tests
// to make the choice deterministic
func WithEmojiPicker(pick func(n int) int) Option {
	return func(uc *UseCases) {
		uc.pickIndex = pick
	}
}

// New creates the use case layer
func New(repo interfaces.BindingRepository, discordSvc discord.Service, schedule ctftime.Service, cfg *config.Discord, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:      repo,
		discord:   discordSvc,
		schedule:  schedule,
		cfg:       cfg,
		templates: config.DefaultTemplates(),
		pickIndex: rand.IntN,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}
