package hawk

import (
	"sync"
	"time"
)

// The process-wide singleton behind the package-level operations. Init
// replaces it wholesale; there is no merging of old and new state.
var (
	instanceMu sync.RWMutex
	instance   *Catcher
)

// Init constructs the process-wide Catcher. Settings may be a full
// Settings value or a bare token string. A repeated Init silently
// replaces the previous catcher; construction failures are returned
// and leave the previous catcher in place.
func Init(settings interface{}) error {
	s, err := normalizeSettings(settings)
	if err != nil {
		return err
	}

	c, err := New(s)
	if err != nil {
		return err
	}

	instanceMu.Lock()
	instance = c
	instanceMu.Unlock()
	return nil
}

// Send reports an error through the process-wide Catcher. Before Init
// it is a silent no-op.
func Send(err error, context map[string]interface{}, user *User) {
	if c := current(); c != nil {
		c.Send(err, context, user)
	}
}

// Test sends the fixed test event through the process-wide Catcher.
func Test() {
	if c := current(); c != nil {
		c.Test()
	}
}

// Recover reports a recovered panic through the process-wide Catcher.
// Meant to be deferred; without an initialized catcher the panic is
// still swallowed.
func Recover() {
	r := recover()
	if r == nil {
		return
	}
	if c := current(); c != nil {
		c.handleGlobal(recoveredError(r), true)
	}
}

// Flush drains in-flight deliveries of the process-wide Catcher. It
// reports true when there is nothing to drain.
func Flush(timeout time.Duration) bool {
	if c := current(); c != nil {
		return c.Flush(timeout)
	}
	return true
}

func current() *Catcher {
	instanceMu.RLock()
	defer instanceMu.RUnlock()
	return instance
}
