package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	httpctrl "github.com/Cl4sm/discord-ctftime-bot/pkg/controller/http"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/model"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/domain/types"
	"github.com/Cl4sm/discord-ctftime-bot/pkg/repository/memory"
)

func TestHealth(t *testing.T) {
	srv := httpctrl.New(memory.New())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	gt.Value(t, rec.Code).Equal(http.StatusOK)
	gt.Value(t, rec.Body.String()).Equal(`{"status":"ok"}`)
}

func TestBindings(t *testing.T) {
	repo := memory.New()
	gt.NoError(t, repo.Append(context.Background(), &model.Binding{
		CTFName:  "PicoCTF 2024",
		Messages: []types.MessageID{"1000"},
		Emoji:    "555",
		Role:     "777",
	})).Required()

	srv := httpctrl.New(repo)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bindings", nil))

	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var bindings []*model.Binding
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bindings)).Required()
	gt.Array(t, bindings).Length(1)
	gt.Value(t, bindings[0].CTFName).Equal("PicoCTF 2024")
	gt.Value(t, bindings[0].Emoji).Equal(types.EmojiID("555"))
}

func TestUnknownRoute(t *testing.T) {
	srv := httpctrl.New(memory.New())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	gt.Value(t, rec.Code).Equal(http.StatusNotFound)
}
