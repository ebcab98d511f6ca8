package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// Name is the command name of a captured game event.
type Name string

const (
	// HubUserLogin is the login of an authenticated account.
	HubUserLogin Name = "HubUserLogin"
	// GuestLogin is the login of a guest account.
	GuestLogin Name = "GuestLogin"
	// GetUnitStorageList delivers the sealed monster storage list.
	GetUnitStorageList Name = "getUnitStorageList"
	// GetWizardDataPart1 delivers, among others, the sealed monster storage list.
	GetWizardDataPart1 Name = "GetWizardDataPart1"
)

// Names lists every event the exporter understands.
var Names = []Name{HubUserLogin, GuestLogin, GetUnitStorageList, GetWizardDataPart1}

// ErrUnhandled is returned by Dispatch for an event without a handler.
var ErrUnhandled = errors.New("no handler registered for event")

// Envelope is one captured request/response pair.
type Envelope struct {
	Command  Name            `json:"command"`
	Request  json.RawMessage `json:"request,omitempty"`
	Response json.RawMessage `json:"response,omitempty"`
}

// Decode unmarshals the request and response payloads into req and resp.
// A nil target or an empty payload is skipped.
func (e Envelope) Decode(req, resp any) error {
	if req != nil && len(e.Request) > 0 {
		if err := json.Unmarshal(e.Request, req); err != nil {
			return fmt.Errorf("failed to decode %s request: %w", e.Command, err)
		}
	}
	if resp != nil && len(e.Response) > 0 {
		if err := json.Unmarshal(e.Response, resp); err != nil {
			return fmt.Errorf("failed to decode %s response: %w", e.Command, err)
		}
	}
	return nil
}

// Result is what a handler reports back about one event.
type Result struct {
	Command  Name   `json:"command"`
	Status   string `json:"status"`
	Identity string `json:"identity,omitempty"`
	Message  string `json:"message,omitempty"`
}

// HandlerFunc processes one event.
type HandlerFunc func(ctx context.Context, env Envelope) (Result, error)

// Dispatcher routes events to the handler registered for their name.
// Dispatch runs one handler at a time, so handlers never see concurrent events.
type Dispatcher struct {
	mu       sync.Mutex
	handlers map[Name]HandlerFunc
}

// NewDispatcher creates an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[Name]HandlerFunc)}
}

// Handle registers fn for name, replacing any previous handler.
func (d *Dispatcher) Handle(name Name, fn HandlerFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[name] = fn
}

// Handles reports whether a handler is registered for name.
func (d *Dispatcher) Handles(name Name) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.handlers[name]
	return ok
}

// Dispatch runs the handler registered for env.Command.
func (d *Dispatcher) Dispatch(ctx context.Context, env Envelope) (Result, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	fn, ok := d.handlers[env.Command]
	if !ok {
		return Result{Command: env.Command, Status: "ignored"}, fmt.Errorf("%w: %q", ErrUnhandled, env.Command)
	}
	res, err := fn(ctx, env)
	if res.Command == "" {
		res.Command = env.Command
	}
	return res, err
}
