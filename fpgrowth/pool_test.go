package fpgrowth

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"fpm-shenglin/rock-share/global/enum"
	"fpm-shenglin/utils"
)

// 状态写入和消息应答不同步,轮询等到位为止
func waitWorkerState(t *testing.T, id int, want enum.WorkerState) {
	t.Helper()
	key := strconv.Itoa(id)
	for i := 0; i < 200; i++ {
		if v, ok := workerStates.Get(key); ok && v.(enum.WorkerState) == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("worker:%v状态没有变成%v", id, want)
}

func TestRunTaskRecoversFromPanic(t *testing.T) {
	msg := runTask(0, nil, NewItemMapper[string]())
	if msg.Kind != enum.MsgError {
		t.Fatalf("panic应转成错误消息, got %v", msg.Kind)
	}
	if msg.Err == nil {
		t.Fatalf("错误消息里应带err")
	}
	se, ok := msg.Err.(*utils.ServiceError)
	if !ok || se.Code != utils.ErrWorkerFailed.Code {
		t.Fatalf("错误码不对:%v", msg.Err)
	}
}

func TestMiningWorkerProtocol(t *testing.T) {
	inbox := make(chan workerMsg[string], 4)
	results := make(chan workerMsg[string], 4)
	go miningWorker(9, inbox, results)

	mapper := NewItemMapper[string]()
	mapper.Register("a")
	mapper.Register("b")
	inbox <- workerMsg[string]{Kind: enum.MsgInit, Worker: 9, Mapper: mapper, LogLevel: "info"}
	if msg := <-results; msg.Kind != enum.MsgReady || msg.Worker != 9 {
		t.Fatalf("初始化后应回ready, got %+v", msg)
	}

	// 一个正常任务
	tree := NewFPTree(map[int]int{0: 2, 1: 2})
	tree.Insert([]int{0, 1}, 2)
	paths := tree.FindPaths(1)
	inbox <- workerMsg[string]{Kind: enum.MsgTask, Task: &miningTask{
		prefix:   []int{1},
		paths:    paths,
		freq:     pathFrequencies(paths, 2),
		minCount: 2,
	}}
	msg := <-results
	if msg.Kind != enum.MsgResult {
		t.Fatalf("任务应返回结果, got %+v", msg)
	}
	if len(msg.Result) != 1 {
		t.Fatalf("结果项集数 = %v, want 1", len(msg.Result))
	}

	// 坏任务不能把worker带崩,还要能继续服务
	inbox <- workerMsg[string]{Kind: enum.MsgTask, Task: nil}
	if msg := <-results; msg.Kind != enum.MsgError {
		t.Fatalf("坏任务应返回错误, got %+v", msg)
	}
	inbox <- workerMsg[string]{Kind: enum.MsgInit, Worker: 9, Mapper: mapper}
	if msg := <-results; msg.Kind != enum.MsgReady {
		t.Fatalf("worker出错后应还活着, got %+v", msg)
	}
	inbox <- workerMsg[string]{Kind: enum.MsgShutdown}
}

func TestWorkerStatesRegistry(t *testing.T) {
	const id = 31
	inbox := make(chan workerMsg[string], 4)
	results := make(chan workerMsg[string], 4)
	go miningWorker(id, inbox, results)

	inbox <- workerMsg[string]{Kind: enum.MsgInit, Worker: id, Mapper: NewItemMapper[string]()}
	if msg := <-results; msg.Kind != enum.MsgReady {
		t.Fatalf("初始化后应回ready, got %+v", msg)
	}
	waitWorkerState(t, id, enum.WorkerIdle)

	tree := NewFPTree(map[int]int{0: 2, 1: 2})
	tree.Insert([]int{0, 1}, 2)
	paths := tree.FindPaths(1)
	inbox <- workerMsg[string]{Kind: enum.MsgTask, Task: &miningTask{
		prefix:   []int{1},
		paths:    paths,
		freq:     pathFrequencies(paths, 2),
		minCount: 2,
	}}
	if msg := <-results; msg.Kind != enum.MsgResult {
		t.Fatalf("任务应返回结果, got %+v", msg)
	}
	waitWorkerState(t, id, enum.WorkerIdle)

	inbox <- workerMsg[string]{Kind: enum.MsgShutdown}
	waitWorkerState(t, id, enum.WorkerStopped)
}

func TestWorkerStatesDump(t *testing.T) {
	workerStates.Set("0", enum.WorkerIdle)
	workerStates.Set("1", enum.WorkerWorking)
	dump := workerStatesDump(2)
	if !strings.Contains(dump, "0:idle") || !strings.Contains(dump, "1:working") {
		t.Fatalf("状态串不对:%v", dump)
	}
}

func TestMineParallelSmoke(t *testing.T) {
	tree := NewFPTree(map[int]int{0: 3, 1: 3, 2: 3})
	tree.Insert([]int{0, 1}, 3)
	tree.Insert([]int{0, 2}, 3)
	result, err := mineParallel(tree, 3, 2, NewItemMapper[string]())
	if err != nil {
		t.Fatalf("正常数据不应报错:%v", err)
	}
	if len(result) == 0 {
		t.Fatalf("应有结果")
	}
}

func TestRenderPrefix(t *testing.T) {
	mapper := NewItemMapper[string]()
	mapper.Register("bread")
	mapper.Register("milk")
	if got := renderPrefix(mapper, []int{0, 1}); got != "bread,milk" {
		t.Fatalf("renderPrefix = %v", got)
	}
	if got := renderPrefix(mapper, []int{5}); got != "?5" {
		t.Fatalf("未注册编号应打占位, got %v", got)
	}
	if got := renderPrefix[string](nil, []int{1, 2}); got != "1,2" {
		t.Fatalf("没有映射时退回编号, got %v", got)
	}
}
