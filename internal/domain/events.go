package domain

// EventType identifies a gallery or feedback event
type EventType string

const (
	EventGalleryReset EventType = "gallery.reset"
	EventGalleryEntry EventType = "gallery.entry"
	EventToastShow    EventType = "toast.show"
	EventToastHide    EventType = "toast.hide"
	EventRippleAdd    EventType = "ripple.add"
	EventRippleRemove EventType = "ripple.remove"
)

// Event is published to every connected gallery page
type Event struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload,omitempty"`
}

// ToastPayload carries a notification message
type ToastPayload struct {
	Message string `json:"message"`
	Seq     uint64 `json:"seq"`
}

// RipplePayload describes a ripple at a local click position
type RipplePayload struct {
	ID      string  `json:"id"`
	EntryID uint64  `json:"entry_id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

// EventPublisherFunc adapts a function to EventPublisher
type EventPublisherFunc func(Event)

// Publish implements EventPublisher
func (f EventPublisherFunc) Publish(e Event) {
	f(e)
}
