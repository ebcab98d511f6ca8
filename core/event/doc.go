// Package event defines the captured game events the exporter consumes and
// the dispatcher that routes them to handlers.
//
// An Envelope carries the command name plus the raw request and response
// bodies exactly as the capture layer recorded them. Handlers are
// registered per Name and decode the payload shape they expect.
//
// # Usage
//
//	d := event.NewDispatcher()
//	d.Handle(event.HubUserLogin, exporter.HandleLogin)
//	res, err := d.Dispatch(ctx, env)
//	if errors.Is(err, event.ErrUnhandled) {
//	    // not an event we care about
//	}
package event
