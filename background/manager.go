package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"

	"github.com/guardhq/patrol-api/consts"
	"github.com/guardhq/patrol-api/external/controlroom"
	"github.com/guardhq/patrol-api/store"
)

// TaggingManager runs the scan tagging worker. Its collaborators are passed
// in at construction time so tests can substitute any of them.
type TaggingManager struct {
	store store.PatrolCore

	publisher controlroom.Publisher

	taskServer *machinery.Server

	sender taskSender

	worker *machinery.Worker
}

func New(patrolStore store.PatrolCore, publisher controlroom.Publisher, taskServer *machinery.Server) *TaggingManager {
	return &TaggingManager{
		store:      patrolStore,
		publisher:  publisher,
		taskServer: taskServer,
		sender:     taskServer,
	}
}

// RegisterTasks binds the tagging task to the queue server.
func (m *TaggingManager) RegisterTasks() error {
	return m.taskServer.RegisterTask(consts.TaggingTaskName, m.TagCheckpointScan)
}

// Run spawns workers consuming the dedicated tagging queue
func (m *TaggingManager) Run() error {
	if m.worker != nil {
		return errors.New("tagging worker has started")
	}
	m.worker = m.taskServer.NewCustomQueueWorker("patrol-tagging-worker", 5, consts.TaggingQueueName)
	return m.worker.Launch()
}
