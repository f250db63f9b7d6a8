package services

import (
	"sync"
	"time"

	uuid "github.com/google/uuid"

	domain "github.com/inference-gateway/coordpick/internal/domain"
	logger "github.com/inference-gateway/coordpick/internal/logger"
)

// Notifier drives the transient toast and click ripples.
//
// A toast shown while another is visible replaces its message and restarts the
// hide timer, so an older timer never hides a newer message. Ripples are
// independent: each one is removed rippleTTL after it was added.
type Notifier struct {
	publisher domain.EventPublisher
	toastTTL  time.Duration
	rippleTTL time.Duration

	mu         sync.Mutex
	toastSeq   uint64
	toastTimer *time.Timer
	message    string
	visible    bool
	ripples    map[string]domain.RipplePayload
}

// NewNotifier creates a notifier publishing to publisher
func NewNotifier(publisher domain.EventPublisher, toastTTL, rippleTTL time.Duration) *Notifier {
	return &Notifier{
		publisher: publisher,
		toastTTL:  toastTTL,
		rippleTTL: rippleTTL,
		ripples:   make(map[string]domain.RipplePayload),
	}
}

// Notify shows message until toastTTL passes without another Notify
func (n *Notifier) Notify(message string) {
	n.mu.Lock()
	n.toastSeq++
	seq := n.toastSeq
	n.message = message
	n.visible = true

	if n.toastTimer != nil {
		n.toastTimer.Stop()
	}
	n.toastTimer = time.AfterFunc(n.toastTTL, func() { n.hideToast(seq) })
	n.mu.Unlock()

	logger.Debug("Showing toast", "message", message, "seq", seq)
	n.publisher.Publish(domain.Event{
		Type:    domain.EventToastShow,
		Payload: domain.ToastPayload{Message: message, Seq: seq},
	})
}

func (n *Notifier) hideToast(seq uint64) {
	n.mu.Lock()
	if seq != n.toastSeq || !n.visible {
		n.mu.Unlock()
		return
	}
	n.visible = false
	n.mu.Unlock()

	n.publisher.Publish(domain.Event{
		Type:    domain.EventToastHide,
		Payload: domain.ToastPayload{Seq: seq},
	})
}

// Toast returns the current message and whether it is visible
func (n *Notifier) Toast() (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.message, n.visible
}

// Ripple adds a ripple at a local position on an entry's card
func (n *Notifier) Ripple(entryID uint64, x, y float64) {
	ripple := domain.RipplePayload{
		ID:      uuid.New().String(),
		EntryID: entryID,
		X:       x,
		Y:       y,
	}

	n.mu.Lock()
	n.ripples[ripple.ID] = ripple
	n.mu.Unlock()

	n.publisher.Publish(domain.Event{Type: domain.EventRippleAdd, Payload: ripple})

	time.AfterFunc(n.rippleTTL, func() {
		n.mu.Lock()
		delete(n.ripples, ripple.ID)
		n.mu.Unlock()

		n.publisher.Publish(domain.Event{Type: domain.EventRippleRemove, Payload: ripple})
	})
}

// ActiveRipples returns the number of ripples not yet removed
func (n *Notifier) ActiveRipples() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.ripples)
}

// Stop cancels the pending toast hide
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.toastTimer != nil {
		n.toastTimer.Stop()
	}
}
