package hawk

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// GlobalHandler is the host-runtime capability that reports uncaught
// errors. Install registers a callback invoked with the error and
// whether the host considers it fatal.
type GlobalHandler interface {
	Install(func(err error, fatal bool))
}

// Settings configures a Catcher. The struct is copied at construction
// time; a Catcher never observes later mutations.
type Settings struct {
	// Token is the integration token issued by the collector. Required.
	Token string `mapstructure:"token"`

	// CollectorEndpoint overrides the URL derived from the token.
	CollectorEndpoint string `mapstructure:"collector_endpoint"`

	// Context is attached to every event. Call-time context wins on
	// key collision.
	Context map[string]interface{} `mapstructure:"context"`

	// BeforeSend, when set, rewrites the composed event just before it
	// is sealed into an envelope. The returned event is trusted as-is.
	BeforeSend func(Event) Event `mapstructure:"-"`

	// GlobalHandler is the host capability for uncaught errors. When
	// set and global handling is not disabled, the Catcher installs
	// itself on it during construction.
	GlobalHandler GlobalHandler `mapstructure:"-"`

	// DisableGlobalHandling keeps the Catcher off the GlobalHandler.
	DisableGlobalHandling bool `mapstructure:"disable_global_handling"`

	// Transport replaces the default HTTP transport used for delivery.
	Transport http.RoundTripper `mapstructure:"-"`

	// SendTimeout bounds a single delivery attempt.
	SendTimeout time.Duration `mapstructure:"send_timeout"`

	// Logger receives catcher diagnostics. Defaults to the logrus
	// standard logger.
	Logger *logrus.Logger `mapstructure:"-"`
}

// normalizeSettings turns the settings accepted by Init into a Settings
// value. A bare string is shorthand for Settings{Token: s}.
func normalizeSettings(settings interface{}) (Settings, error) {
	switch s := settings.(type) {
	case string:
		return Settings{Token: s}, nil
	case Settings:
		return s, nil
	case *Settings:
		if s == nil {
			return Settings{}, ErrMissingToken
		}
		return *s, nil
	default:
		return Settings{}, ErrMissingToken
	}
}
