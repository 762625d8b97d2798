// Package dxfgeom loads ASCII DXF drawings and converts their entities into
// render.RenderData.
//
// Only the TABLES, BLOCKS, ENTITIES and OBJECTS sections are read. Entity
// kinds outside entities.Kinds() are skipped.
package dxfgeom

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zooyer/dxfgeom/aci"
	"github.com/zooyer/dxfgeom/core"
	"github.com/zooyer/dxfgeom/entities"
)

// Layer 图层表中渲染用得到的属性
type Layer struct {
	Name       string
	Color      int    // 组码 62，负数表示图层关闭，这里存绝对值
	Off        bool   // 组码 62 为负
	Frozen     bool   // 组码 70 第 1 位
	LineType   string // 组码 6
	LineWeight int    // 组码 370
}

type Block struct {
	Name      string
	BasePoint core.Point
	Entities  []entities.Entity
}

type Document struct {
	Blocks      map[string]*Block
	Entities    []entities.Entity
	Layers      map[string]*Layer
	DimStyles   map[string]entities.DimStyle
	MLineStyles map[string]entities.MLineStyle
}

func isMarker(tag core.Tag, name string) bool {
	return tag.Code == 0 && strings.ToUpper(tag.Value) == name
}

// eachTag 从当前标签开始逐个回调，直到下一个组码 0 或 EOF
func eachTag(scanner *core.Scanner, fn func(tag core.Tag)) {
	for {
		fn(scanner.LastTag)
		if !scanner.Next() || scanner.LastTag.Code == 0 {
			break
		}
	}
}

// parseEntityList 读取实体直到 stop 标记，stop 标记本身留在 LastTag 中。
// 不认识的实体整体跳过，实体读取出错时丢弃该实体并返回错误。
func parseEntityList(scanner *core.Scanner, add func(entities.Entity), stop ...string) error {
	for {
		tag := scanner.LastTag
		if tag.Code == 0 {
			name := strings.ToUpper(tag.Value)
			for _, s := range stop {
				if name == s {
					return nil
				}
			}
			if ent := entities.CreateEntity(name); ent != nil {
				if err := ent.Parse(scanner); err != nil {
					return fmt.Errorf("parse %s: %w", name, err)
				}
				add(ent)
				if scanner.Done() {
					return nil
				}
				continue
			}
		}
		if !scanner.Next() {
			return nil
		}
	}
}

func (d *Document) parseEntities(scanner *core.Scanner) error {
	return parseEntityList(scanner, func(e entities.Entity) {
		d.Entities = append(d.Entities, e)
	}, "ENDSEC")
}

func (d *Document) parseBlocks(scanner *core.Scanner) error {
	for {
		tag := scanner.LastTag
		if isMarker(tag, "ENDSEC") {
			return nil
		}
		if isMarker(tag, "BLOCK") {
			block := &Block{Entities: []entities.Entity{}}
			eachTag(scanner, func(tag core.Tag) {
				switch tag.Code {
				case 2:
					block.Name = strings.ToUpper(tag.AsString())
				case 10, 20, 30:
					core.SetAxis(&block.BasePoint, tag.Code, tag.AsFloat())
				}
			})
			d.Blocks[block.Name] = block
			if scanner.Done() {
				return nil
			}

			// 块内实体一直读到 ENDBLK
			err := parseEntityList(scanner, func(e entities.Entity) {
				block.Entities = append(block.Entities, e)
			}, "ENDBLK", "ENDSEC")
			if err != nil {
				return fmt.Errorf("block %s: %w", block.Name, err)
			}
			if isMarker(scanner.LastTag, "ENDSEC") {
				return nil
			}
		}
		if !scanner.Next() {
			return nil
		}
	}
}

func (d *Document) parseTables(scanner *core.Scanner) {
	for scanner.Next() {
		tag := scanner.LastTag
		if isMarker(tag, "ENDSEC") {
			break
		}
		if isMarker(tag, "TABLE") {
			if !scanner.Next() {
				break
			}
			switch strings.ToUpper(scanner.LastTag.Value) {
			case "LAYER":
				parseRecords(scanner, "LAYER", d.parseLayer)
			case "DIMSTYLE":
				parseRecords(scanner, "DIMSTYLE", d.parseDimStyle)
			}
		}
	}
}

// parseRecords 逐条读取表记录直到 ENDTAB
func parseRecords(scanner *core.Scanner, name string, parse func(scanner *core.Scanner)) {
	for {
		tag := scanner.LastTag
		if isMarker(tag, "ENDTAB") || isMarker(tag, "ENDSEC") {
			return
		}
		if isMarker(tag, name) {
			parse(scanner)
			if scanner.Done() {
				return
			}
			continue
		}
		if !scanner.Next() {
			return
		}
	}
}

func (d *Document) parseLayer(scanner *core.Scanner) {
	layer := &Layer{Color: 7, LineType: "CONTINUOUS", LineWeight: -3}
	eachTag(scanner, func(tag core.Tag) {
		switch tag.Code {
		case 2:
			layer.Name = tag.AsString()
		case 62:
			color := tag.AsInt()
			layer.Off = color < 0
			layer.Color = max(color, -color)
		case 70:
			layer.Frozen = tag.AsInt()&1 != 0
		case 6:
			layer.LineType = tag.AsString()
		case 370:
			layer.LineWeight = tag.AsInt()
		}
	})
	if layer.Name != "" {
		d.Layers[layer.Name] = layer
	}
}

func (d *Document) parseDimStyle(scanner *core.Scanner) {
	style := entities.DefaultDimStyle()
	style.Name = ""
	eachTag(scanner, func(tag core.Tag) {
		switch tag.Code {
		case 2: // 样式名称
			style.Name = strings.ToUpper(tag.AsString())
		case 271: // 精度
			style.Precision = tag.AsInt()
		case 44: // 标注线超出延伸线长度 (DIMEXE)
			style.ExLimit = tag.AsFloat()
		case 40: // 全局标注比例 (DIMSCALE)
			style.Scale = tag.AsFloat()
		}
	})
	if style.Scale == 0 {
		// 防止乘法归零
		style.Scale = 1
	}
	if style.Name != "" {
		d.DimStyles[style.Name] = style
	}
}

func (d *Document) parseObjects(scanner *core.Scanner) {
	parseRecords(scanner, "MLINESTYLE", d.parseMLineStyle)
}

// parseMLineStyle 元素按 49 (偏移)、62 (颜色)、6 (线型) 的顺序出现，
// 第一个 49 之前的 62 是填充色
func (d *Document) parseMLineStyle(scanner *core.Scanner) {
	style := entities.MLineStyle{FillColor: aci.ByLayer, StartAngle: 90, EndAngle: 90}
	eachTag(scanner, func(tag core.Tag) {
		last := len(style.Elements) - 1
		switch tag.Code {
		case 2:
			style.Name = strings.ToUpper(tag.AsString())
		case 70:
			style.Flags = tag.AsInt()
		case 51:
			style.StartAngle = tag.AsFloat()
		case 52:
			style.EndAngle = tag.AsFloat()
		case 49:
			style.Elements = append(style.Elements, entities.MLineElement{
				Offset:   tag.AsFloat(),
				Color:    aci.ByLayer,
				LineType: "BYLAYER",
			})
		case 62:
			if last < 0 {
				style.FillColor = tag.AsInt()
			} else {
				style.Elements[last].Color = tag.AsInt()
			}
		case 6:
			if last >= 0 {
				style.Elements[last].LineType = tag.AsString()
			}
		}
	})
	if style.Name != "" {
		d.MLineStyles[style.Name] = style
	}
}

// All 返回模型空间实体和所有块内实体
func (d *Document) All() []entities.Entity {
	all := append([]entities.Entity{}, d.Entities...)
	for _, block := range d.Blocks {
		all = append(all, block.Entities...)
	}
	return all
}

// linkStyles 把标注样式和多线样式挂到实体上，找不到的保持缺省样式
func (d *Document) linkStyles() {
	for _, entity := range d.All() {
		switch e := entity.(type) {
		case *entities.Dimension:
			if style, ok := d.DimStyles[styleKey(e.StyleName)]; ok {
				e.Style = style
			}
		case *entities.MLine:
			if style, ok := d.MLineStyles[styleKey(e.StyleName)]; ok {
				e.Style = style
			}
		}
	}
}

func styleKey(name string) string {
	if name == "" {
		return "STANDARD"
	}
	return strings.ToUpper(name)
}

// ResolveByLayer 把随层的颜色、线型和线宽替换成图层的值，返回修改过的实体数。
// 图层表中不存在的图层保持随层。
func (d *Document) ResolveByLayer() int {
	var n int
	for _, entity := range d.All() {
		b := entity.Common()
		layer, ok := d.Layers[b.LayerName]
		if !ok {
			continue
		}
		changed := false
		if b.Color == aci.ByLayer {
			b.Color, changed = layer.Color, true
		}
		if strings.EqualFold(b.LineType, "BYLAYER") {
			b.LineType, changed = layer.LineType, true
		}
		if b.LineWeight == -1 {
			b.LineWeight, changed = layer.LineWeight, true
		}
		if changed {
			n++
		}
	}
	return n
}

func Open(filename string) (doc *Document, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return Load(file)
}

func Load(reader io.Reader) (doc *Document, err error) {
	var (
		scanner  = core.NewScanner(reader)
		document = &Document{
			Blocks:      make(map[string]*Block),
			Entities:    make([]entities.Entity, 0, 1024),
			Layers:      make(map[string]*Layer),
			DimStyles:   make(map[string]entities.DimStyle),
			MLineStyles: make(map[string]entities.MLineStyle),
		}
	)

	for scanner.Next() {
		tag := scanner.LastTag
		if isMarker(tag, "SECTION") {
			if !scanner.Next() {
				break
			}
			sectionName := strings.ToUpper(scanner.LastTag.Value)
			switch sectionName {
			case "TABLES":
				document.parseTables(scanner)
			case "BLOCKS":
				err = document.parseBlocks(scanner)
			case "ENTITIES":
				err = document.parseEntities(scanner)
			case "OBJECTS":
				document.parseObjects(scanner)
			}
			if err != nil {
				return document, err
			}
		}
	}
	document.linkStyles()

	return document, scanner.Err()
}
