package discord_test

import (
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/gt"

	discordctrl "github.com/Cl4sm/discord-ctftime-bot/pkg/controller/discord"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/model"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/types"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/service/discord"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/usecase"
)

func TestNormalizeAcademy(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"True", true},
		{"false", false},
		{"", false},
		{"yes", false},
		{"1", false},
		{" true ", false},
	}

	for _, tt := range tests {
		t.Run("input="+tt.input, func(t *testing.T) {
			if got := discordctrl.NormalizeAcademy(tt.input); got != tt.want {
				t.Errorf("normalizeAcademy(%q) = %t, want %t", tt.input, got, tt.want)
			}
		})
	}
}

func strOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

func TestParseCreateCTFOptions(t *testing.T) {
	opts := []*discordgo.ApplicationCommandInteractionDataOption{
		strOption("ctftime_url", "https://ctftime.org/event/9999/"),
		strOption("category_name", "PicoCTF"),
		strOption("role_name", "pico"),
		strOption("academy", "TRUE"),
	}

	input := discordctrl.ParseCreateCTFOptions(opts)
	gt.Value(t, input.CTFTimeURL).Equal("https://ctftime.org/event/9999/")
	gt.Value(t, input.CategoryName).Equal("PicoCTF")
	gt.Value(t, input.RoleName).Equal("pico")
	gt.Value(t, input.Username).Equal("")
	gt.Value(t, input.Password).Equal("")
	gt.True(t, input.Academy)
}

func TestBuildSummary(t *testing.T) {
	input := &model.CreateCTFInput{
		CategoryName: "PicoCTF",
		RoleName:     "pico",
		Username:     "team",
		Password:     "hunter2",
	}
	result := &usecase.CreateCTFResult{
		Event: &model.Event{Title: "PicoCTF 2024", URL: "https://play.picoctf.org/"},
		Role:  &discord.Role{ID: types.RoleID("777"), Name: "pico"},
	}

	summary := discordctrl.BuildSummary(input, result)

	for _, line := range []string{
		"Created CTF Successfully!",
		"Category: PicoCTF",
		"Role: pico",
		"URL: https://play.picoctf.org/",
		"Username: team",
		"Password: hunter2",
		"Academy: false",
	} {
		if !strings.Contains(summary, line) {
			t.Errorf("summary is missing %q:\n%s", line, summary)
		}
	}
}

func TestCreateCTFCommandDefinition(t *testing.T) {
	cmd := discordctrl.CreateCTFCommand
	gt.Value(t, cmd.Name).Equal("create_ctf")

	required := map[string]bool{}
	for _, opt := range cmd.Options {
		required[opt.Name] = opt.Required
	}

	for _, name := range []string{"ctftime_url", "category_name", "role_name"} {
		if !required[name] {
			t.Errorf("option %q should be required", name)
		}
	}
	for _, name := range []string{"username", "password", "academy"} {
		req, ok := required[name]
		if !ok {
			t.Errorf("option %q is missing", name)
		}
		if req {
			t.Errorf("option %q should be optional", name)
		}
	}
}
