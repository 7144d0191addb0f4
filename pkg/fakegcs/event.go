package fakegcs

import "time"

const (
	EventTypeFinalize = "OBJECT_FINALIZE"
	objectKind        = "storage#object"
)

// Event is the payload published for an object change.
type Event struct {
	Kind        string    `json:"kind"`
	EventType   string    `json:"eventType"`
	Bucket      string    `json:"bucket"`
	Name        string    `json:"name"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size,string"`
	Generation  int64     `json:"generation,string"`
	ETag        string    `json:"etag"`
	Updated     time.Time `json:"updated"`
}

func newFinalizeEvent(attrs Attrs) Event {
	return Event{
		Kind:        objectKind,
		EventType:   EventTypeFinalize,
		Bucket:      attrs.Bucket,
		Name:        attrs.Name,
		ContentType: attrs.ContentType,
		Size:        attrs.Size,
		Generation:  attrs.Generation,
		ETag:        attrs.ETag,
		Updated:     attrs.Updated,
	}
}
