package model

import "github.com/m-mizutani/goerr/v2"

// Event is a CTFTime event record as returned by the public schedule API.
// Start and Finish keep the raw ISO-8601 strings; conversion to Discord time
// tokens happens at render time.
type Event struct {
	Title  string `json:"title"`
	URL    string `json:"url"`
	Start  string `json:"start"`
	Finish string `json:"finish"`
}

// Validate checks that the API response carried the fields the bot relies on
func (x *Event) Validate() error {
	if x.Title == "" {
		return goerr.New("event title is missing")
	}
	if x.Start == "" || x.Finish == "" {
		return goerr.New("event time window is missing", goerr.V("title", x.Title))
	}
	return nil
}
