package fpm_config

const GinPort = "19125"

// ChanSize worker收件箱和结果通道的缓冲大小
const ChanSize = 8

// MAXCpuNum worker数上限,超出的按这个值收口
// 轮转指派会把任务堆进忙worker的收件箱,必须保持 MAXCpuNum <= 2*ChanSize,
// 否则协调者阻塞在收件箱发送、worker阻塞在结果通道发送时会互相等死
const MAXCpuNum = 16

// 挖掘默认参数
const (
	Support    = float64(0.01)
	Confidence = float64(0.8)
	WorkerNum  = 1
)

// 结果输出相关配置
const (
	ResultDir     = "result"
	RuleTopK      = 20 // 日志中渲染的规则表最多展示的条数
	DotExportSize = 64 // 节点数不超过该值的FP树才会在debug日志中导出dot
)

// 开关
const (
	EnableRuleGen   = true
	EnableDotExport = true
)

// 支持度阈值的两种解释方式: >=1按绝对事务数取整,<1按占比向上取整
const AbsoluteSupportBound = float64(1.0)
