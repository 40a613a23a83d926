package shared

// Asynq task types
const (
	TypeDeleteAssetObject = "asset:delete_object"
	TypeSweepOrphans      = "storage:sweep_orphans"
)

// Asynq queues
const (
	QueueDefault = "default"
	QueueStorage = "storage"
)

// DeleteAssetObjectPayload là payload cho task xóa object khi asset row bị xóa
type DeleteAssetObjectPayload struct {
	AssetID   string `json:"assetId"`
	ObjectKey string `json:"objectKey"`
}

// SweepOrphansPayload - scheduled job, không cần tham số
type SweepOrphansPayload struct{}
