package hawk

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/hawk-tracker/catcher-go/internal/delivery"
	"github.com/hawk-tracker/catcher-go/internal/token"
)

// Collector host pattern: the integration id picks the subdomain, k1 is
// the default ingestion region.
const collectorURLFormat = "https://%s.k1.hawk.so/"

// TestEventMessage is the title of the event produced by Test.
const TestEventMessage = "Hawk Go catcher test event"

// Catcher composes error events and hands them to the delivery channel.
// Its configuration is immutable after New.
type Catcher struct {
	settings Settings
	channel  *delivery.Channel
	log      *logrus.Entry

	inflight sync.WaitGroup
}

// New builds a Catcher from the given settings. It validates the
// integration token, resolves the collector endpoint and, unless
// disabled, installs the catcher on the supplied global handler.
//
// This is the only place errors are surfaced to the caller: once New
// succeeds, nothing the Catcher does can fail the application it
// instruments.
func New(settings Settings) (*Catcher, error) {
	if settings.Token == "" {
		return nil, ErrMissingToken
	}

	logger := settings.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	log := logger.WithField("component", "hawk.Catcher")

	integrationID, err := token.Decode(settings.Token)
	if err != nil {
		log.WithError(err).Debug("integration token rejected")
		return nil, ErrInvalidToken
	}

	endpoint := settings.CollectorEndpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf(collectorURLFormat, integrationID)
	}

	c := &Catcher{
		settings: settings,
		channel:  delivery.New(endpoint, fmt.Sprintf("%s/%s", Name, Version), settings.Transport, settings.SendTimeout),
		log:      log,
	}
	log.WithField("endpoint", endpoint).Debugf("catcher configured, version %s", Version)

	if settings.GlobalHandler != nil && !settings.DisableGlobalHandling {
		settings.GlobalHandler.Install(c.handleGlobal)
	}

	return c, nil
}

// Endpoint returns the resolved collector URL.
func (c *Catcher) Endpoint() string {
	return c.channel.Endpoint()
}

// Send reports an error to the collector. The call returns immediately;
// delivery happens in the background and its outcome is only logged.
// A nil error is ignored.
func (c *Catcher) Send(err error, callContext map[string]interface{}, user *User) {
	if err == nil {
		return
	}

	event := compose(err)
	event.Context = mergeContext(c.settings.Context, callContext)
	event.User = user

	if c.settings.BeforeSend != nil {
		event = c.settings.BeforeSend(event)
	}

	c.dispatch(Envelope{
		Token:       c.settings.Token,
		CatcherType: CatcherType,
		Payload:     event,
	})
}

// Test sends a synthetic event with a fixed title, letting an operator
// verify the integration end to end.
func (c *Catcher) Test() {
	c.Send(errors.New(TestEventMessage), nil, nil)
}

// Recover is meant to be deferred. It reports a recovered panic through
// the global-handler path and swallows it.
func (c *Catcher) Recover() {
	if r := recover(); r != nil {
		c.handleGlobal(recoveredError(r), true)
	}
}

// Flush waits until all deliveries started so far have finished, or the
// timeout elapses. It reports whether the queue drained in time.
func (c *Catcher) Flush(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		c.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// handleGlobal is the callback installed on the host's global handler.
// Unlike Send it builds a minimal envelope directly: title only, no
// backtrace, no context, no user. Manual Send remains the rich path.
// Fatal or not, the event is delivered the same way; whether the
// process dies afterwards is the host's decision.
func (c *Catcher) handleGlobal(err error, fatal bool) {
	if err == nil {
		return
	}
	c.log.WithField("fatal", fatal).Debugf("global handler caught: %s", err)
	c.dispatch(Envelope{
		Token:       c.settings.Token,
		CatcherType: CatcherType,
		Payload: Event{
			Title:          err.Error(),
			Backtrace:      []Frame{},
			CatcherVersion: Version,
		},
	})
}

// dispatch hands the envelope to the delivery channel on a background
// goroutine. Failures are logged and dropped: at-most-once, best effort.
func (c *Catcher) dispatch(env Envelope) {
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		if err := c.channel.Deliver(context.Background(), env); err != nil {
			c.log.WithError(err).Error("event delivery failed")
			return
		}
		c.log.WithField("title", env.Payload.Title).Debug("event delivered")
	}()
}

func recoveredError(r interface{}) error {
	if err, ok := r.(error); ok {
		return err
	}
	return errors.Errorf("panic: %v", r)
}
