package enum

type WorkerState int

const (
	// WorkerInit worker已启动但还没有回ready
	WorkerInit WorkerState = iota
	// WorkerIdle worker空闲,可以接任务
	WorkerIdle
	// WorkerWorking worker正在执行任务
	WorkerWorking
	// WorkerStopped worker已退出
	WorkerStopped
)

func (s WorkerState) String() string {
	switch s {
	case WorkerInit:
		return "init"
	case WorkerIdle:
		return "idle"
	case WorkerWorking:
		return "working"
	case WorkerStopped:
		return "stopped"
	}
	return "unknown"
}
