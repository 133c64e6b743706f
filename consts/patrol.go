package consts

const (
	// DEFAULT_TOLERANCE_METERS is used when neither the checkpoint nor its
	// site declares a geofence radius.
	DEFAULT_TOLERANCE_METERS = 100.0

	// NEARBY_DISTANCE_RANGE is the default lookup radius (in meters) for the
	// nearby-checkpoint query.
	NEARBY_DISTANCE_RANGE = 500

	// GEOHASH_PRECISION is the number of base-32 characters kept in scan tags.
	GEOHASH_PRECISION = 7
)

const (
	// TaggingQueueName is the machinery queue dedicated to scan tagging. It is
	// kept apart from any other background queue so a tagging backlog can not
	// starve unrelated work.
	TaggingQueueName = "patrol_tagging"

	// TaggingTaskName is the registered task consuming scan IDs.
	TaggingTaskName = "tag_checkpoint_scan"

	// ControlRoomChannel is the broadcast channel the live dashboard
	// subscribes to.
	ControlRoomChannel = "control-room"
)
