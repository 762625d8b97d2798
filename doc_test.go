package dxfgeom

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zooyer/dxfgeom/entities"
)

// pairs 把 "组码", "值" 交替排列的参数拼成 DXF 文本
func pairs(kv ...string) string {
	return strings.Join(kv, "\n") + "\n"
}

var sampleDXF = pairs(
	"0", "SECTION", "2", "HEADER",
	"9", "$ACADVER", "1", "AC1027",
	"0", "ENDSEC",

	"0", "SECTION", "2", "TABLES",
	"0", "TABLE", "2", "LAYER", "70", "2",
	"0", "LAYER", "2", "WALLS", "70", "0", "62", "3", "6", "DASHED", "370", "50",
	"0", "LAYER", "2", "HIDDEN", "70", "1", "62", "-5",
	"0", "ENDTAB",
	"0", "TABLE", "2", "DIMSTYLE", "70", "1",
	"0", "DIMSTYLE", "105", "27", "2", "MYDIM", "70", "0", "271", "2", "44", "0.5", "40", "2",
	"0", "ENDTAB",
	"0", "ENDSEC",

	"0", "SECTION", "2", "BLOCKS",
	"0", "BLOCK", "8", "0", "2", "*D1", "70", "1", "10", "1", "20", "2", "30", "0", "3", "*D1",
	"0", "SOLID", "8", "0", "10", "0", "20", "0", "11", "1", "21", "0", "12", "0", "22", "1",
	"0", "LINE", "8", "0", "10", "0", "20", "0", "11", "1", "21", "1",
	"0", "ENDBLK", "8", "0",
	"0", "BLOCK", "8", "0", "2", "EMPTY", "70", "0",
	"0", "ENDBLK", "8", "0",
	"0", "ENDSEC",

	"0", "SECTION", "2", "ENTITIES",
	"0", "DIMENSION", "5", "1A", "8", "WALLS", "2", "*D1", "3", "mydim", "70", "32",
	"10", "0", "20", "5", "13", "0", "23", "0", "14", "10", "24", "0",
	"0", "CIRCLE", "5", "1B", "8", "0", "10", "0", "20", "0", "40", "5",
	"0", "XLINE", "5", "1C", "8", "MISSING", "10", "1", "20", "2", "11", "0", "21", "1",
	"0", "MLINE", "5", "1D", "8", "0", "62", "1", "2", "THICK", "40", "1", "70", "1", "71", "0", "72", "2", "73", "2",
	"10", "0", "20", "0",
	"11", "0", "21", "0", "12", "1", "22", "0", "13", "0", "23", "1",
	"74", "1", "41", "0", "75", "0",
	"74", "1", "41", "-1", "75", "0",
	"11", "10", "21", "0", "12", "1", "22", "0", "13", "0", "23", "1",
	"74", "1", "41", "0", "75", "0",
	"74", "1", "41", "-1", "75", "0",
	"0", "ENDSEC",

	"0", "SECTION", "2", "OBJECTS",
	"0", "DICTIONARY", "5", "C",
	"0", "MLINESTYLE", "5", "18", "2", "THICK", "70", "0", "3", "", "62", "256", "51", "90", "52", "90", "71", "2",
	"49", "0", "62", "1", "6", "BYLAYER",
	"49", "-1", "62", "5", "6", "DASHED",
	"0", "ENDSEC",
	"0", "EOF",
)

func TestLoad(t *testing.T) {
	doc, err := Load(strings.NewReader(sampleDXF))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// CIRCLE 不在渲染种类里，被跳过
	if len(doc.Entities) != 3 {
		t.Fatalf("实体数 = %d, 期望 3", len(doc.Entities))
	}
	kinds := []entities.Kind{entities.KindDimension, entities.KindXLine, entities.KindMLine}
	for i, kind := range kinds {
		if doc.Entities[i].Kind() != kind {
			t.Errorf("第 %d 个实体 = %v, 期望 %v", i, doc.Entities[i].Kind(), kind)
		}
	}

	walls, ok := doc.Layers["WALLS"]
	if !ok || walls.Color != 3 || walls.LineType != "DASHED" || walls.LineWeight != 50 || walls.Off {
		t.Errorf("图层 WALLS = %+v", walls)
	}
	if hidden := doc.Layers["HIDDEN"]; hidden == nil || !hidden.Off || !hidden.Frozen || hidden.Color != 5 {
		t.Errorf("图层 HIDDEN = %+v", hidden)
	}

	style, ok := doc.DimStyles["MYDIM"]
	if !ok || style.Precision != 2 || style.ExLimit != 0.5 || style.Scale != 2 {
		t.Errorf("标注样式 = %+v", style)
	}

	block, ok := doc.Blocks["*D1"]
	if !ok || len(block.Entities) != 1 || block.Entities[0].Kind() != entities.KindSolid {
		t.Fatalf("块 *D1 = %+v", block)
	}
	if block.BasePoint.X != 1 || block.BasePoint.Y != 2 {
		t.Errorf("块基点 = %v", block.BasePoint)
	}
	if empty, ok := doc.Blocks["EMPTY"]; !ok || len(empty.Entities) != 0 {
		t.Errorf("空块 = %+v", empty)
	}
	if len(doc.All()) != 4 {
		t.Errorf("All() = %d 个实体", len(doc.All()))
	}
}

func TestLoadLinksStyles(t *testing.T) {
	doc, err := Load(strings.NewReader(sampleDXF))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	dim := doc.Entities[0].(*entities.Dimension)
	if dim.StyleName != "MYDIM" || dim.Style.Name != "MYDIM" || dim.Style.Precision != 2 {
		t.Errorf("标注未关联样式: %+v", dim.Style)
	}
	if dim.DimType != entities.DimRotated || dim.BlockName != "*D1" {
		t.Errorf("标注 = %+v", dim)
	}

	ml := doc.Entities[2].(*entities.MLine)
	if ml.Style.Name != "THICK" || len(ml.Style.Elements) != 2 {
		t.Fatalf("多线样式 = %+v", ml.Style)
	}
	if el := ml.Style.Elements[1]; el.Offset != -1 || el.Color != 5 || el.LineType != "DASHED" {
		t.Errorf("第二个元素 = %+v", el)
	}
	if ml.Style.FillColor != 256 {
		t.Errorf("填充色 = %d", ml.Style.FillColor)
	}
	if len(ml.Vertices) != 2 || len(ml.Vertices[1].Params) != 2 || ml.Vertices[1].Params[1][0] != -1 {
		t.Errorf("多线顶点 = %+v", ml.Vertices)
	}
}

func TestResolveByLayer(t *testing.T) {
	doc, err := Load(strings.NewReader(sampleDXF))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// 1A 在 WALLS 上；1C 的图层不存在；1D 在没有定义的图层 0 上
	if n := doc.ResolveByLayer(); n != 1 {
		t.Errorf("ResolveByLayer = %d, 期望 1", n)
	}
	dim := doc.Entities[0].Common()
	if dim.Color != 3 || dim.LineType != "DASHED" || dim.LineWeight != 50 {
		t.Errorf("标注未随层解析: %+v", dim)
	}
	if x := doc.Entities[1].Common(); x.Color != 256 {
		t.Errorf("未知图层不应修改颜色: %d", x.Color)
	}
	if ml := doc.Entities[2].Common(); ml.Color != 1 {
		t.Errorf("显式颜色不应修改: %d", ml.Color)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(strings.NewReader("0\nSECTION\nxx\nENTITIES\n")); err == nil {
		t.Error("非法组码应当返回错误")
	}

	// 截断的文件不报错，已读到的实体保留
	doc, err := Load(strings.NewReader(pairs("0", "SECTION", "2", "ENTITIES", "0", "XLINE", "10", "3")))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(doc.Entities) != 1 || doc.Entities[0].(*entities.XLine).BasePoint.X != 3 {
		t.Errorf("截断文件的实体 = %+v", doc.Entities)
	}

	// 实体内部的读取错误会中断加载，出错的实体不保留
	src := pairs("0", "SECTION", "2", "ENTITIES", "0", "XLINE", "5", "1C", "10", "3", "bad", "1")
	doc, err = Load(strings.NewReader(src))
	if err == nil || !strings.Contains(err.Error(), "XLINE") {
		t.Errorf("实体读取错误 = %v", err)
	}
	if doc == nil || len(doc.Entities) != 0 {
		t.Errorf("出错的实体不应保留: %+v", doc)
	}
	src = pairs("0", "SECTION", "2", "BLOCKS", "0", "BLOCK", "2", "B1", "0", "SOLID", "10", "1", "bad", "1")
	if _, err = Load(strings.NewReader(src)); err == nil || !strings.Contains(err.Error(), "B1") {
		t.Errorf("块内实体读取错误 = %v", err)
	}

	if _, err := Open(filepath.Join(t.TempDir(), "missing.dxf")); !os.IsNotExist(err) {
		t.Errorf("Open 不存在的文件 = %v", err)
	}
}

func TestOpen(t *testing.T) {
	name := filepath.Join(t.TempDir(), "sample.dxf")
	if err := os.WriteFile(name, []byte(strings.ReplaceAll(sampleDXF, "\n", "\r\n")), 0644); err != nil {
		t.Fatal(err)
	}
	doc, err := Open(name)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(doc.Entities) != 3 || len(doc.Layers) != 2 {
		t.Errorf("实体 %d, 图层 %d", len(doc.Entities), len(doc.Layers))
	}
}
