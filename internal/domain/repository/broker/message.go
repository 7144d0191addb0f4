package broker

import "gcsfake/pkg/fakegcs"

type Message interface {
	Body() string
	Event() (fakegcs.Event, error)
	Ack() error
}
