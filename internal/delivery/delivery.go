// Package delivery posts event envelopes to a Hawk collector.
package delivery

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const defaultTimeout = 30 * time.Second

// Channel sends serialized envelopes to a single collector endpoint.
// Delivery is at-most-once: an envelope that fails to send is counted,
// logged by the caller and dropped.
type Channel struct {
	endpoint  string
	userAgent string
	client    *http.Client
	log       *logrus.Entry
}

// New returns a Channel posting to the given collector endpoint, with
// the given User-Agent identifying the catcher to the collector. A nil
// roundtripper falls back to http.DefaultTransport, a zero timeout to
// the package default.
func New(endpoint, userAgent string, rt http.RoundTripper, timeout time.Duration) *Channel {
	if rt == nil {
		rt = http.DefaultTransport
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Channel{
		endpoint:  endpoint,
		userAgent: userAgent,
		client: &http.Client{
			Transport: rt,
			Timeout:   timeout,
		},
		log: logrus.WithField("component", "delivery.Channel"),
	}
}

// Endpoint returns the collector URL this channel posts to.
func (c *Channel) Endpoint() string {
	return c.endpoint
}

// Deliver marshals the envelope and issues a single POST to the collector.
// There are no retries. A non-2xx response is an error like any transport
// failure; the response body is never interpreted.
func (c *Channel) Deliver(ctx context.Context, envelope interface{}) error {
	body, err := json.Marshal(envelope)
	if err != nil {
		droppedEnvelopesMetric.Inc()
		return errors.Wrap(err, "marshaling envelope")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		droppedEnvelopesMetric.Inc()
		return errors.Wrap(err, "building collector request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.log.WithField("bytes", len(body)).Debug("posting envelope")

	resp, err := c.client.Do(req)
	if err != nil {
		failedEnvelopesMetric.Inc()
		return errors.Wrap(err, "posting envelope to collector")
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	_, _ = io.Copy(ioutil.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		failedEnvelopesMetric.Inc()
		return errors.Errorf("collector responded with %s", resp.Status)
	}

	sentEnvelopesMetric.Inc()
	return nil
}
