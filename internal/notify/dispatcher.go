package notify

import (
	"context"
	"time"

	"github.com/pratik-mahalle/cloudsentry/internal/pkg/logger"
	"github.com/pratik-mahalle/cloudsentry/internal/pkg/metrics"
)

// Dispatcher fans one message out to every configured channel. Channel
// failures are absorbed and reported as per-channel outcomes; the
// caller decides what a fully failed fan-out means.
type Dispatcher struct {
	channels []Channel
	timeout  time.Duration
	log      *logger.Logger
}

// NewDispatcher creates a dispatcher over the given channels. Each
// channel gets at most timeout to accept the message.
func NewDispatcher(channels []Channel, timeout time.Duration, log *logger.Logger) *Dispatcher {
	return &Dispatcher{
		channels: channels,
		timeout:  timeout,
		log:      log,
	}
}

// Channels returns the names of the configured channels
func (d *Dispatcher) Channels() []string {
	names := make([]string, 0, len(d.channels))
	for _, ch := range d.channels {
		names = append(names, ch.Name())
	}
	return names
}

// Dispatch sends the message to every channel and returns a map of
// channel name to delivery outcome. It never returns an error; a
// channel that panics, times out, or rejects the message simply
// records false.
func (d *Dispatcher) Dispatch(ctx context.Context, subject, body string) map[string]bool {
	outcomes := make(map[string]bool, len(d.channels))
	for _, ch := range d.channels {
		outcomes[ch.Name()] = d.send(ctx, ch, subject, body)
	}
	return outcomes
}

func (d *Dispatcher) send(ctx context.Context, ch Channel, subject, body string) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			d.log.WithFields(map[string]interface{}{
				"channel": ch.Name(),
				"panic":   r,
			}).Error("notification channel panicked")
			ok = false
		}
	}()

	sendCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := ch.Send(sendCtx, subject, body); err != nil {
		d.log.With("channel", ch.Name()).ErrorWithErr(err, "notification delivery failed")
		metrics.RecordChannelDelivery(ch.Name(), false)
		return false
	}

	metrics.RecordChannelDelivery(ch.Name(), true)
	return true
}
