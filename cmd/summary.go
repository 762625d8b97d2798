package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/zooyer/dxfgeom"
	"github.com/zooyer/dxfgeom/geometry"
	"github.com/zooyer/dxfgeom/render"
	"github.com/zooyer/dxfgeom/utils"
)

var (
	accentFg  = lipgloss.Color("#7C3AED")
	dimFg     = lipgloss.Color("#6B7280")
	warnFg    = lipgloss.Color("#F59E0B")
	borderCol = lipgloss.Color("#243141")

	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(dimFg)
	warnStyle  = lipgloss.NewStyle().Foreground(warnFg)
)

// summary 渲染结果的统计
type summary struct {
	file     string
	output   string
	resolved int            // 随层解析的实体数
	counts   map[string]int // 按实体种类计数
	failed   int            // 渲染失败
	dropped  int            // 编码失败 (非有限值)
	boxes    []geometry.Box // 非空记录的包围盒
}

func newSummary(file, output string) *summary {
	return &summary{file: file, output: output, counts: map[string]int{}}
}

func (s *summary) add(res dxfgeom.Result) {
	if res.Err != nil {
		s.failed++
		return
	}
	s.counts[res.Data.Type]++
	if !res.Data.Empty {
		s.boxes = append(s.boxes, toBox(res.Data.Bounds))
	}
}

func toBox(b render.Bounds) geometry.Box {
	return geometry.Box{
		Min: r3.Vec{X: b.Min[0], Y: b.Min[1], Z: b.Min[2]},
		Max: r3.Vec{X: b.Max[0], Y: b.Max[1], Z: b.Max[2]},
	}
}

// render 输出带边框的统计信息，gap 是聚类时合并相邻包围盒的容差
func (s *summary) render(gap float64) string {
	var lines []string
	lines = append(lines, titleStyle.Render("dxfgeom")+" "+dimStyle.Render(s.file))

	kinds := make([]string, 0, len(s.counts))
	total := 0
	for kind, n := range s.counts {
		kinds = append(kinds, kind)
		total += n
	}
	slices.Sort(kinds)
	for _, kind := range kinds {
		lines = append(lines, fmt.Sprintf("  %-10s %6d", kind, s.counts[kind]))
	}
	lines = append(lines, fmt.Sprintf("  %-10s %6d", "TOTAL", total))

	if s.resolved > 0 {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("随层解析: %d", s.resolved)))
	}
	if s.failed > 0 || s.dropped > 0 {
		lines = append(lines, warnStyle.Render(fmt.Sprintf("渲染失败: %d, 编码失败: %d", s.failed, s.dropped)))
	}

	if ext, ok := utils.Extents(s.boxes); ok {
		lines = append(lines, fmt.Sprintf("范围: RECTANG %.2f,%.2f %.2f,%.2f", ext.Min.X, ext.Min.Y, ext.Max.X, ext.Max.Y))
		clusters := utils.MergeBoxes(s.boxes, gap)
		lines = append(lines, fmt.Sprintf("分组: %d (间距 %.1f)", len(clusters), gap))
	}
	lines = append(lines, dimStyle.Render("输出: "+s.output))

	return boxStyle.Render(strings.Join(lines, "\n"))
}
