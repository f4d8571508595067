package enum

type MinerMsgKind int

const (
	// MsgInit 协调者下发的初始化消息,携带item映射快照和日志级别
	MsgInit MinerMsgKind = iota
	// MsgReady worker初始化完成后的应答
	MsgReady
	// MsgTask 自包含的挖掘任务
	MsgTask
	// MsgResult worker返回的局部项集结果
	MsgResult
	// MsgError worker执行失败
	MsgError
	// MsgShutdown 通知worker退出
	MsgShutdown
)

func (k MinerMsgKind) String() string {
	switch k {
	case MsgInit:
		return "init"
	case MsgReady:
		return "ready"
	case MsgTask:
		return "task"
	case MsgResult:
		return "result"
	case MsgError:
		return "error"
	case MsgShutdown:
		return "shutdown"
	}
	return "unknown"
}
