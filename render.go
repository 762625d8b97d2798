package dxfgeom

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/zooyer/dxfgeom/entities"
	"github.com/zooyer/dxfgeom/render"
)

// Result 一个实体的渲染结果，Index 是实体在输入中的下标
type Result struct {
	Index  int
	Handle string
	Data   render.RenderData
	Err    error
}

// RenderAll 把实体分块交给 workers 个 goroutine 渲染，结果与输入顺序一致。
// workers <= 0 时取 CPU 数，r 为 nil 时使用默认参数。
// 每个实体渲染前检查 ctx，取消后返回 ctx 的错误。
// 无法渲染的实体 (nil、未知种类) 记录在对应 Result.Err 中，不影响其他实体。
func RenderAll(ctx context.Context, list []entities.Entity, r *render.Renderer, workers int) ([]Result, error) {
	if r == nil {
		r = render.New()
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		logger  = render.Logger()
		start   = time.Now()
		results = make([]Result, len(list))
		wg      sync.WaitGroup
	)
	logger.Info("render: start", "entities", len(list), "workers", workers)

	perWorker := (len(list) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		begin := w * perWorker
		end := min(begin+perWorker, len(list))
		if begin >= end {
			continue
		}

		wg.Add(1)
		go func(begin, end int) {
			defer wg.Done()
			for i := begin; i < end; i++ {
				if ctx.Err() != nil {
					return
				}
				rd, err := r.Render(list[i])
				if err != nil {
					logger.Warn("render: skip entity", "index", i, "error", err)
				}
				results[i] = Result{Index: i, Handle: rd.Handle, Data: rd, Err: err}
			}
		}(begin, end)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger.Info("render: done", "entities", len(list), "elapsed", time.Since(start))
	return results, nil
}

// Render 渲染文档的模型空间实体
func (d *Document) Render(ctx context.Context, r *render.Renderer, workers int) ([]Result, error) {
	return RenderAll(ctx, d.Entities, r, workers)
}
