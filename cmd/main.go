package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"
	"github.com/zooyer/golib/xos"

	"github.com/zooyer/dxfgeom"
	"github.com/zooyer/dxfgeom/render"
)

// 每积累这么多字节写一次文件
const flushSize = 1 << 20

// selectFile 没有命令行参数时弹出文件选择框
func selectFile() (string, error) {
	return zenity.SelectFile(
		zenity.Title("选择 DXF 图纸"),
		zenity.FileFilters{
			{Name: "DXF 图纸", Patterns: []string{"*.dxf"}, CaseFold: true},
		},
	)
}

func outputPath(v string, input string) string {
	if v != "" {
		return v
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".jsonl"
}

func run(ctx context.Context, filename string) error {
	cfg, err := loadConfig(".", filepath.Dir(filename))
	if err != nil {
		return fmt.Errorf("读取配置: %w", err)
	}
	if cfg.GetBool(CfgDebug) {
		render.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	// 1. 读取图纸
	doc, err := dxfgeom.Open(filename)
	if err != nil {
		return fmt.Errorf("打开 %s: %w", filename, err)
	}

	output := outputPath(cfg.GetString(CfgOutput), filename)
	sum := newSummary(filename, output)

	// 2. 随层属性换成图层的值，渲染层本身不做继承
	if cfg.GetBool(CfgResolveByLayer) {
		sum.resolved = doc.ResolveByLayer()
	}

	// 3. 并行渲染，结果保持实体顺序
	results, err := doc.Render(ctx, render.New(rendererOptions(cfg)...), cfg.GetInt(CfgWorkers))
	if err != nil {
		return err
	}

	// 4. 每条记录一行 JSON
	if err = os.WriteFile(output, nil, 0644); err != nil {
		return err
	}
	var buf bytes.Buffer
	for _, res := range results {
		sum.add(res)
		if res.Err != nil {
			continue
		}
		data, err := render.Marshal(res.Data)
		if err != nil {
			render.Logger().Warn("encode", "index", res.Index, "error", err)
			sum.dropped++
			continue
		}
		buf.Write(data)
		buf.WriteByte('\n')
		if buf.Len() >= flushSize {
			if err = xos.AppendFile(output, buf.Bytes(), 0644); err != nil {
				return err
			}
			buf.Reset()
		}
	}
	if err = xos.AppendFile(output, buf.Bytes(), 0644); err != nil {
		return err
	}

	// 5. 打印统计
	fmt.Println(sum.render(cfg.GetFloat64(CfgClusterGap)))
	return nil
}

func main() {
	defer xos.PauseExit()

	var filename string
	if len(os.Args) > 1 {
		filename = os.Args[1]
	} else {
		var err error
		if filename, err = selectFile(); err != nil {
			if !errors.Is(err, zenity.ErrCanceled) {
				fmt.Println(warnStyle.Render("选择文件失败: " + err.Error()))
			}
			return
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, filename); err != nil {
		fmt.Println(warnStyle.Render(err.Error()))
	}
}
