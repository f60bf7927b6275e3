// Package dispatch queues bulk outbound dials on Redis and paces them on a worker.
package dispatch

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskDialCall = "calls.dial"

type DialCallPayload struct {
	CallID uint `json:"callId"`
}

func NewDialCallTask(payload DialCallPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskDialCall, data), nil
}

func ParseDialCallPayload(task *asynq.Task) (DialCallPayload, error) {
	var payload DialCallPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return DialCallPayload{}, err
	}
	return payload, nil
}
