package ws

import (
	"encoding/json"
	"time"
)

const EventJobsUpdated = "jobs_updated"

// JobsUpdatedEvent tells connected dashboards that the corpus changed and
// their scores and recommendations should be fetched again.
type JobsUpdatedEvent struct {
	Type      string `json:"type"`
	Action    string `json:"action"`
	JobID     string `json:"jobId,omitempty"`
	Timestamp string `json:"timestamp"`
}

type Notifier struct {
	hub *Hub
	now func() time.Time
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub, now: time.Now}
}

func (n *Notifier) NotifyJobsUpdated(action, jobID string) {
	if n == nil || n.hub == nil {
		return
	}
	b, err := json.Marshal(JobsUpdatedEvent{
		Type:      EventJobsUpdated,
		Action:    action,
		JobID:     jobID,
		Timestamp: n.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
