// Package hawk is an error-telemetry catcher for the Hawk collector.
//
// A Catcher turns Go errors and recovered panics into structured events
// and posts them to the collector resolved from an integration token.
// Sending never blocks the reporting caller and never fails it: delivery
// runs in the background and failures only reach the diagnostic log.
//
// Most applications use the package-level facade:
//
//	if err := hawk.Init(os.Getenv("HAWK_TOKEN")); err != nil {
//		log.Fatal(err)
//	}
//	defer hawk.Flush(2 * time.Second)
//	...
//	hawk.Send(err, map[string]interface{}{"order": orderID}, nil)
package hawk

import "github.com/pkg/errors"

const (
	// Name of the catcher, as reported to the collector.
	Name = "hawk-catcher-go"

	// CatcherType identifies the platform in every envelope.
	CatcherType = "errors/golang"
)

// Version of the catcher, stamped into every event payload.
var Version = "dev"

var (
	// ErrMissingToken is returned by Init and New when no integration
	// token was provided.
	ErrMissingToken = errors.New("integration token is required and can't be empty")

	// ErrInvalidToken is returned by Init and New when the integration
	// token can't be decoded. The underlying decode error is logged at
	// debug level and deliberately not exposed.
	ErrInvalidToken = errors.New("invalid integration token")
)
