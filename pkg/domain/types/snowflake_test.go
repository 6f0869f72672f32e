package types_test

import (
	"testing"

	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/types"
)

func TestSnowflakeValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "typical snowflake",
			input: "1088159171399918633",
		},
		{
			name:  "short numeric ID",
			input: "8",
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "non numeric",
			input:   "abc123",
			wantErr: true,
		},
		{
			name:    "negative",
			input:   "-42",
			wantErr: true,
		},
		{
			name:    "too long",
			input:   "123456789012345678901",
			wantErr: true,
		},
		{
			name:    "mention markup is not an ID",
			input:   "<#1088159171399918633>",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := types.MessageID(tt.input).Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("MessageID(%q).Validate() error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestChannelIDMention(t *testing.T) {
	got := types.ChannelID("123456789").Mention()
	if got != "<#123456789>" {
		t.Errorf("Mention() = %q, want %q", got, "<#123456789>")
	}
}
