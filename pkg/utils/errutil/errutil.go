package errutil

import (
	"context"
	"errors"
	"net/http"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Cl4sm/discord-ctftime-bot/pkg/utils/logging"
)

// Handle logs an error with its goerr context and reports it to Sentry when
// a Sentry client is bound. Event handlers call it at their outermost edge;
// the error is returned unchanged for callers that still need it.
func Handle(ctx context.Context, err error, msg string) error {
	if err == nil {
		return nil
	}

	logger := logging.From(ctx)

	var ge *goerr.Error
	if errors.As(err, &ge) {
		logger.Error(msg,
			"error", err.Error(),
			"values", ge.Values(),
			"stack", ge.Stacks(),
		)
	} else {
		logger.Error(msg, "error", err.Error())
	}

	if sentry.CurrentHub().Client() != nil {
		sentry.CaptureException(err)
	}

	return err
}

// HandleHTTP logs the error and writes an HTTP error response
func HandleHTTP(ctx context.Context, w http.ResponseWriter, err error, statusCode int) {
	if err == nil {
		return
	}

	_ = Handle(ctx, err, "HTTP error")
	http.Error(w, err.Error(), statusCode)
}
