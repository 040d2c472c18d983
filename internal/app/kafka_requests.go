package app

import (
	"github.com/tinashecee/lab-center-request/internal/service/notify"
	"github.com/tinashecee/lab-center-request/internal/transport/kafka"
)

// makeRequestsKafka adapts the notification pipeline into a Kafka message
// handler.
func makeRequestsKafka(p *notify.Pipeline) kafka.HandleFunc {
	return p.Handle
}
