package worker

import (
	"sync"
	"sync/atomic"
)

// queuePerWorker 每個 worker 可排隊的工作數
const queuePerWorker = 4

// Task 背景執行的一件工作
type Task func()

// Pool 背景工作池；Submit 不阻塞呼叫端，佇列已滿或已停止時回傳 false
type Pool interface {
	Submit(Task) bool
	Stop()
}

// NewPool 建立 n 個 worker 的工作池，n<=0 時為 1
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task, n*queuePerWorker)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	mu      sync.Mutex
	stopped bool
	jobs    chan Task
	wg      sync.WaitGroup
}

func (p *pool) Submit(t Task) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		return false
	}
	select {
	case p.jobs <- t:
		return true
	default:
		return false
	}
}

// Stop 不再接受新工作，等待已排隊的工作跑完
func (p *pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}

// Trigger 讓同一種工作在池中最多排隊一份：
// 已有一份尚未開始執行時，Fire 直接略過
type Trigger struct {
	pool    Pool
	pending atomic.Bool
}

func NewTrigger(p Pool) *Trigger {
	return &Trigger{pool: p}
}

// Fire 排入 t；已有待執行的一份或池子拒收時回傳 false
func (tr *Trigger) Fire(t Task) bool {
	if !tr.pending.CompareAndSwap(false, true) {
		return false
	}
	ok := tr.pool.Submit(func() {
		tr.pending.Store(false)
		t()
	})
	if !ok {
		tr.pending.Store(false)
	}
	return ok
}
