package messaging

import (
	"fleet-service/src/internal/model"
	kafka "fleet-service/src/pkg/kafka/confluent"
	"fleet-service/src/pkg/log"
)

const (
	TopicJobStatusChanged = "job-status-changed"
	TopicTripRecorded     = "trip-recorded"
)

type JobProducer struct {
	StatusProducer Producer[*model.JobStatusEvent]
	TripProducer   Producer[*model.TripRecordedEvent]
}

func NewJobProducer(producer kafka.Producer, log log.Log) *JobProducer {
	return &JobProducer{
		StatusProducer: Producer[*model.JobStatusEvent]{
			Producer: producer,
			Topic:    TopicJobStatusChanged,
			Log:      log,
		},
		TripProducer: Producer[*model.TripRecordedEvent]{
			Producer: producer,
			Topic:    TopicTripRecorded,
			Log:      log,
		},
	}
}

func (p *JobProducer) SendStatusChanged(event *model.JobStatusEvent) error {
	return p.StatusProducer.Send(event)
}

func (p *JobProducer) SendTripRecorded(event *model.TripRecordedEvent) error {
	return p.TripProducer.Send(event)
}
