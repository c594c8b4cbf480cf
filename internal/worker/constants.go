package worker

// Log messages for worker pool operations
const (
	LogMsgWorkerJobFailed   = "Worker job failed"
	LogMsgWorkerJobPanicked = "worker job panicked"
	LogMsgWorkerQueueFull   = "Worker queue full, dropping job"
)
