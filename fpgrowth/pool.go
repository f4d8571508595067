package fpgrowth

import (
	"fmt"
	"runtime/debug"
	"strconv"
	"strings"

	"fpm-shenglin/fpm_config"
	"fpm-shenglin/rock-share/base/logger"
	"fpm-shenglin/rock-share/global/enum"
	"fpm-shenglin/rock-share/global/model/fpm"
	"fpm-shenglin/utils"

	cmap "github.com/orcaman/concurrent-map"
)

// workerStates worker状态登记,只用于观测和日志
var workerStates = cmap.New()

// miningTask 一个顶层频繁项的条件模式基,worker在上面独立建条件树挖掘,不回头碰顶层树
type miningTask struct {
	prefix   []int
	paths    []patternPath
	freq     map[int]int
	minCount int
}

// workerMsg 协调者和worker之间的消息,Kind区分变体
// 初始化消息带映射快照和日志级别,worker拿到快照前不处理任务
type workerMsg[T comparable] struct {
	Kind     enum.MinerMsgKind
	Worker   int
	Task     *miningTask
	Result   fpm.ItemsetMap
	Mapper   *ItemMapper[T]
	LogLevel string
	Err      error
}

// mineParallel 顶层项的抽取串行做,各项的条件树挖掘分给worker并行
// 不同顶层项挖出的项集天然不相交,结果直接合并即可
func mineParallel[T comparable](tree *FPTree, minCount int, workerNum int, mapper *ItemMapper[T]) (fpm.ItemsetMap, error) {
	result := make(fpm.ItemsetMap)

	var tasks []*miningTask
	for _, item := range tree.ItemsAscending() {
		support := tree.Support(item)
		if support < minCount {
			continue
		}
		record(result, []int{item}, support)
		paths := tree.FindPaths(item)
		condFreq := pathFrequencies(paths, minCount)
		if len(condFreq) == 0 {
			continue
		}
		tasks = append(tasks, &miningTask{
			prefix:   []int{item},
			paths:    paths,
			freq:     condFreq,
			minCount: minCount,
		})
	}
	if len(tasks) == 0 {
		return result, nil
	}
	if workerNum > len(tasks) {
		workerNum = len(tasks)
	}
	logger.Infof("并行挖掘开始,任务数:%v,worker数:%v", len(tasks), workerNum)

	resultCh := make(chan workerMsg[T], fpm_config.ChanSize)
	inboxes := make([]chan workerMsg[T], workerNum)
	for i := 0; i < workerNum; i++ {
		inboxes[i] = make(chan workerMsg[T], fpm_config.ChanSize)
		go miningWorker(i, inboxes[i], resultCh)
		inboxes[i] <- workerMsg[T]{Kind: enum.MsgInit, Worker: i, Mapper: mapper, LogLevel: logger.Level()}
	}

	// 等全部worker就绪再派发第一波
	ready := 0
	for ready < workerNum {
		if msg := <-resultCh; msg.Kind == enum.MsgReady {
			ready++
		}
	}

	next := 0
	for ; next < workerNum; next++ {
		inboxes[next] <- workerMsg[T]{Kind: enum.MsgTask, Task: tasks[next]}
	}

	completed := 0
	outstanding := next
	var firstErr error
	for outstanding > 0 {
		msg := <-resultCh
		switch msg.Kind {
		case enum.MsgResult:
			outstanding--
			completed++
			result.Merge(msg.Result)
			if firstErr == nil && next < len(tasks) {
				// TODO 按completed轮转指派,worker耗时不均时会把任务压到忙的worker上,应改成空闲队列
				inboxes[completed%workerNum] <- workerMsg[T]{Kind: enum.MsgTask, Task: tasks[next]}
				next++
				outstanding++
			}
		case enum.MsgError:
			outstanding--
			completed++
			if firstErr == nil {
				firstErr = msg.Err
				logger.Errorf("worker:%v执行失败,任务整体失败:%v,各worker状态:%v", msg.Worker, msg.Err, workerStatesDump(workerNum))
			}
		}
	}
	for i := 0; i < workerNum; i++ {
		inboxes[i] <- workerMsg[T]{Kind: enum.MsgShutdown}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	logger.Infof("并行挖掘完成,任务数:%v,项集数:%v", completed, len(result))
	return result, nil
}

// workerStatesDump 各worker当前状态,出错时打进日志定位卡在哪个worker上
func workerStatesDump(workerNum int) string {
	var sb strings.Builder
	for i := 0; i < workerNum; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		state := enum.WorkerInit
		if v, ok := workerStates.Get(strconv.Itoa(i)); ok {
			state = v.(enum.WorkerState)
		}
		sb.WriteString(fmt.Sprintf("%v:%v", i, state))
	}
	return sb.String()
}

func miningWorker[T comparable](id int, inbox <-chan workerMsg[T], results chan<- workerMsg[T]) {
	key := strconv.Itoa(id)
	workerStates.Set(key, enum.WorkerInit)
	var mapper *ItemMapper[T]
	for msg := range inbox {
		switch msg.Kind {
		case enum.MsgInit:
			mapper = msg.Mapper
			workerStates.Set(key, enum.WorkerIdle)
			logger.Debugf("worker:%v初始化,日志级别:%v", id, msg.LogLevel)
			results <- workerMsg[T]{Kind: enum.MsgReady, Worker: id}
		case enum.MsgTask:
			workerStates.Set(key, enum.WorkerWorking)
			results <- runTask(id, msg.Task, mapper)
			workerStates.Set(key, enum.WorkerIdle)
		case enum.MsgShutdown:
			workerStates.Set(key, enum.WorkerStopped)
			return
		}
	}
}

// runTask 执行一个条件树挖掘任务,panic统一转成错误消息,不能把进程带崩
func runTask[T comparable](id int, task *miningTask, mapper *ItemMapper[T]) (msg workerMsg[T]) {
	defer func() {
		if r := recover(); r != nil {
			s := string(debug.Stack())
			logger.Errorf("worker:%v recover.err:%v, stack:\n%v", id, r, s)
			msg = workerMsg[T]{Kind: enum.MsgError, Worker: id, Err: utils.WorkerErrorf("worker %v panic: %v", id, r)}
		}
	}()
	if task == nil {
		panic("nil mining task")
	}
	if logger.DebugEnabled() {
		logger.Debugf("worker:%v开始挖掘前缀:%v,路径数:%v", id, renderPrefix(mapper, task.prefix), len(task.paths))
	}
	out := make(fpm.ItemsetMap)
	mineTree(buildConditionalTree(task.paths, task.freq), task.prefix, task.minCount, out)
	return workerMsg[T]{Kind: enum.MsgResult, Worker: id, Result: out}
}

// renderPrefix 日志里把前缀的编号换回原始项
func renderPrefix[T comparable](mapper *ItemMapper[T], ids []int) string {
	if mapper == nil {
		return utils.JoinInts(ids)
	}
	var sb strings.Builder
	for i, id := range ids {
		if i > 0 {
			sb.WriteByte(',')
		}
		item, err := mapper.ItemOf(id)
		if err != nil {
			sb.WriteString("?" + strconv.Itoa(id))
			continue
		}
		sb.WriteString(fmt.Sprintf("%v", item))
	}
	return sb.String()
}
