package core

import (
	"strings"
	"testing"
)

func TestScanner_Basic(t *testing.T) {
	// 模拟一个简单的 DXF 片段
	dxfData := "0\nSECTION\n2\nHEADER\n0\nENDSEC\n"
	r := strings.NewReader(dxfData)
	scanner := NewScanner(r)

	expected := []Tag{
		{0, "SECTION"},
		{2, "HEADER"},
		{0, "ENDSEC"},
	}

	for i, exp := range expected {
		if !scanner.Next() {
			t.Fatalf("第 %d 步读取失败: %v", i, scanner.Err())
		}
		if scanner.LastTag.Code != exp.Code || scanner.LastTag.Value != exp.Value {
			t.Errorf("第 %d 步数据不符: 期望 %+v, 得到 %+v", i, exp, scanner.LastTag)
		}
	}
}

func TestScanner_CRLFAndBlankLines(t *testing.T) {
	r := strings.NewReader("  0\r\nSOLID\r\n\n 10\r\n1.5\r\n")
	scanner := NewScanner(r)

	if !scanner.Next() || scanner.LastTag.Value != "SOLID" {
		t.Fatalf("期望 SOLID, 得到 %+v (%v)", scanner.LastTag, scanner.Err())
	}
	if !scanner.Next() || scanner.LastTag.Code != 10 || scanner.LastTag.AsFloat() != 1.5 {
		t.Fatalf("期望 10/1.5, 得到 %+v (%v)", scanner.LastTag, scanner.Err())
	}
	if scanner.Next() {
		t.Fatalf("期望 EOF, 得到 %+v", scanner.LastTag)
	}
	if scanner.Err() != nil {
		t.Fatalf("EOF 不应报错: %v", scanner.Err())
	}
	if !scanner.Done() || scanner.LastTag.Code != 10 {
		t.Fatalf("EOF 后 Done = %v, LastTag = %+v", scanner.Done(), scanner.LastTag)
	}
	if scanner.Next() {
		t.Fatal("Done 之后不应再读到标签")
	}
}

func TestScanner_BadCode(t *testing.T) {
	scanner := NewScanner(strings.NewReader("abc\nSOLID\n"))
	if scanner.Next() {
		t.Fatal("非法组码应当失败")
	}
	if scanner.Err() == nil {
		t.Fatal("非法组码应当返回错误")
	}
}

func TestSetAxis(t *testing.T) {
	var p Point
	SetAxis(&p, 10, 1)
	SetAxis(&p, 21, 2)
	SetAxis(&p, 32, 3)
	SetAxis(&p, 230, 9) // 拉伸方向 Z 分量
	if p.X != 1 || p.Y != 2 || p.Z != 9 {
		t.Errorf("SetAxis 结果不符: %+v", p)
	}
}
