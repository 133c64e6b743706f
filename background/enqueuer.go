package background

import (
	"time"

	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/backends/result"
	"github.com/RichardKnop/machinery/v1/tasks"

	"github.com/guardhq/patrol-api/consts"
)

// Enqueuer hands scan IDs to the tagging queue. The ingestion handler only
// depends on this interface, never on the queue implementation.
type Enqueuer interface {
	EnqueueScanTagging(scanID int64) error
}

// taskSender is the slice of the queue server the retry path needs, split
// out so worker tests can exercise retry scheduling without a broker.
type taskSender interface {
	SendTask(signature *tasks.Signature) (*result.AsyncResult, error)
}

// TaskEnqueuer is the machinery-backed Enqueuer.
type TaskEnqueuer struct {
	taskServer *machinery.Server
}

func NewTaskEnqueuer(taskServer *machinery.Server) *TaskEnqueuer {
	return &TaskEnqueuer{
		taskServer: taskServer,
	}
}

// EnqueueScanTagging queues the first tagging attempt for a scan.
func (e *TaskEnqueuer) EnqueueScanTagging(scanID int64) error {
	_, err := e.taskServer.SendTask(newTaggingSignature(scanID, 1, nil))
	return err
}

// newTaggingSignature builds the queue message for one tagging attempt. The
// routing key pins it to the dedicated tagging queue so a backlog here can
// not starve other background work.
func newTaggingSignature(scanID, attempt int64, eta *time.Time) *tasks.Signature {
	return &tasks.Signature{
		Name:       consts.TaggingTaskName,
		RoutingKey: consts.TaggingQueueName,
		ETA:        eta,
		Args: []tasks.Arg{
			{
				Type:  "int64",
				Value: scanID,
			},
			{
				Type:  "int64",
				Value: attempt,
			},
		},
	}
}
