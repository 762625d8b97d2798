package render

import (
	"github.com/zooyer/dxfgeom/aci"
	"github.com/zooyer/dxfgeom/transform"
)

type (
	Vec2 [2]float64
	Vec3 [3]float64
)

// 图元类型
const (
	PrimitiveTriangles = "triangles"
	PrimitiveLines     = "lines" // 每两个顶点一条线段
	PrimitiveLineStrip = "line-strip"
	PrimitivePoints    = "points"
)

// 材质类型
const (
	MaterialSolidFill   = "fill/solid"
	MaterialPatternFill = "fill/pattern"
	MaterialLine        = "line"
	MaterialMask        = "mask"
	MaterialText        = "text"
	MaterialSymbol      = "symbol"
)

const (
	SideFront  = "front"
	SideDouble = "double"
)

// Geometry 顶点缓冲，每个顶点 3 个坐标、3 个法向分量、3 个颜色分量、2 个 UV
// 切片总是非 nil，空缓冲序列化为 []
type Geometry struct {
	Primitive   string    `json:"primitive"`
	VertexCount int       `json:"vertexCount"`
	Positions   []float64 `json:"positions"`
	Normals     []float64 `json:"normals"`
	Colors      []float64 `json:"colors"`
	UVs         []float64 `json:"uvs"`
	Indices     []int     `json:"indices"`
}

type Material struct {
	Type         string  `json:"type"`
	Color        string  `json:"color"`
	Opacity      float64 `json:"opacity"`
	Transparent  bool    `json:"transparent"`
	DepthTest    bool    `json:"depthTest"`
	DepthWrite   bool    `json:"depthWrite"`
	Side         string  `json:"side"`
	VertexColors bool    `json:"vertexColors"`
	LineWidth    float64 `json:"lineWidth,omitempty"`
}

type Bounds struct {
	Min    Vec3 `json:"min"`
	Max    Vec3 `json:"max"`
	Center Vec3 `json:"center"`
	Size   Vec3 `json:"size"`
}

type Bounds2D struct {
	Min    Vec2 `json:"min"`
	Max    Vec2 `json:"max"`
	Center Vec2 `json:"center"`
	Size   Vec2 `json:"size"`
}

// RenderData 是一个实体的渲染描述，只有与 Type 对应的那个负载字段非 nil
type RenderData struct {
	Type             string              `json:"type"`
	Empty            bool                `json:"empty,omitempty"`
	Handle           string              `json:"handle"`
	Layer            string              `json:"layer"`
	LineType         string              `json:"lineType"`
	LineWeight       int                 `json:"lineWeight"`
	Visible          bool                `json:"visible"`
	Color            aci.Color           `json:"color"`
	CoordinateSystem string              `json:"coordinateSystem"`
	FlipY            bool                `json:"flipY"`
	Geometry         Geometry            `json:"geometry"`
	Material         Material            `json:"material"`
	Transform        transform.Transform `json:"transform"`
	Bounds           Bounds              `json:"bounds"`
	Bounds2D         Bounds2D            `json:"bounds2D"`
	Centroid         Vec3                `json:"centroid"`
	Centroid2D       Vec2                `json:"centroid2D"`

	Dimension *DimensionData `json:"dimension,omitempty"`
	Hatch     *HatchData     `json:"hatch,omitempty"`
	MLine     *MLineData     `json:"mline,omitempty"`
	Shape     *ShapeData     `json:"shape,omitempty"`
	Solid     *SolidData     `json:"solid,omitempty"`
	Spline    *SplineData    `json:"spline,omitempty"`
	Text      *TextData      `json:"text,omitempty"`
	Wipeout   *WipeoutData   `json:"wipeout,omitempty"`
	XLine     *XLineData     `json:"xline,omitempty"`
}

type DimensionData struct {
	DimType      string        `json:"dimType"`
	Measurement  float64       `json:"measurement"`
	Text         string        `json:"text"`
	TextPosition Vec3          `json:"textPosition"`
	TextRotation float64       `json:"textRotation"`
	StyleName    string        `json:"styleName"`
	Precision    int           `json:"precision"`
	BlockName    string        `json:"blockName"`
	Arc          *DimensionArc `json:"arc,omitempty"`
}

// DimensionArc 角度标注的圆弧
type DimensionArc struct {
	Vertex       Vec3    `json:"vertex"`
	Center       Vec3    `json:"center"`
	Radius       float64 `json:"radius"`
	StartAngle   float64 `json:"startAngle"`
	EndAngle     float64 `json:"endAngle"`
	Angle        float64 `json:"angle"`
	AngleDegrees float64 `json:"angleDegrees"`
	Points       []Vec3  `json:"points"`
}

type HatchData struct {
	PatternName  string          `json:"patternName"`
	SolidFill    bool            `json:"solidFill"`
	Associative  bool            `json:"associative"`
	Elevation    float64         `json:"elevation"`
	Style        int             `json:"style"`
	PatternType  int             `json:"patternType"`
	PatternAngle float64         `json:"patternAngle"`
	PatternScale float64         `json:"patternScale"`
	Double       bool            `json:"double"`
	Gradient     bool            `json:"gradient"`
	GradientName string          `json:"gradientName"`
	PathCount    int             `json:"pathCount"`
	TotalEdges   int             `json:"totalEdges"`
	EdgeTypes    []string        `json:"edgeTypes"`
	Area         float64         `json:"area"`
	Perimeter    float64         `json:"perimeter"`
	Paths        []HatchPathData `json:"paths"`
}

// HatchPathData 一条边界在顶点缓冲中的位置和度量
type HatchPathData struct {
	Flags        int      `json:"flags"`
	External     bool     `json:"external"`
	Polyline     bool     `json:"polyline"`
	EdgeCount    int      `json:"edgeCount"`
	EdgeTypes    []string `json:"edgeTypes"`
	VertexOffset int      `json:"vertexOffset"`
	VertexCount  int      `json:"vertexCount"`
	Area         float64  `json:"area"`
	Perimeter    float64  `json:"perimeter"`
	Centroid     Vec2     `json:"centroid"`
	Triangulated string   `json:"triangulated"`
}

type MLineData struct {
	StyleName     string             `json:"styleName"`
	Scale         float64            `json:"scale"`
	Justification string             `json:"justification"`
	Closed        bool               `json:"closed"`
	VertexCount   int                `json:"vertexCount"`
	Length        float64            `json:"length"`
	FillColor     aci.Color          `json:"fillColor"`
	Elements      []MLineElementData `json:"elements"`
	Vertices      []MLineVertexData  `json:"vertices"`
}

type MLineElementData struct {
	Offset   float64   `json:"offset"`
	Color    aci.Color `json:"color"`
	LineType string    `json:"lineType"`
	Points   []Vec3    `json:"points"`
}

type MLineVertexData struct {
	Position  Vec3 `json:"position"`
	Direction Vec3 `json:"direction"`
	Miter     Vec3 `json:"miter"`
}

type ShapeData struct {
	Name          string  `json:"name"`
	InsertPoint   Vec3    `json:"insertPoint"`
	Size          float64 `json:"size"`
	RelativeScale float64 `json:"relativeScale"`
	Rotation      float64 `json:"rotation"`
	Oblique       float64 `json:"oblique"`
	Thickness     float64 `json:"thickness"`
}

type SolidData struct {
	Corners      []Vec3  `json:"corners"`
	Triangle     bool    `json:"triangle"`
	Area         float64 `json:"area"`
	Perimeter    float64 `json:"perimeter"`
	Thickness    float64 `json:"thickness"`
	Extruded     bool    `json:"extruded"`
	GeometryType string  `json:"geometryType"`
}

type SplineData struct {
	CurveType     string    `json:"curveType"`
	Degree        int       `json:"degree"`
	Closed        bool      `json:"closed"`
	Periodic      bool      `json:"periodic"`
	Rational      bool      `json:"rational"`
	Planar        bool      `json:"planar"`
	Linear        bool      `json:"linear"`
	ControlPoints []Vec3    `json:"controlPoints"`
	FitPoints     []Vec3    `json:"fitPoints"`
	Knots         []float64 `json:"knots"`
	Weights       []float64 `json:"weights"`
	StartTangent  *Vec3     `json:"startTangent,omitempty"`
	EndTangent    *Vec3     `json:"endTangent,omitempty"`
	Samples       []Vec3    `json:"samples"`
	Length        float64   `json:"length"`
}

type TextData struct {
	Content     string   `json:"content"`
	Lines       []string `json:"lines"`
	Columns     int      `json:"columns"`
	Height      float64  `json:"height"`
	Width       float64  `json:"width"`
	Ascent      float64  `json:"ascent"`
	Descent     float64  `json:"descent"`
	Rotation    float64  `json:"rotation"`
	WidthFactor float64  `json:"widthFactor"`
	Oblique     float64  `json:"oblique"`
	Style       string   `json:"style"`
	HAlign      string   `json:"hAlign"`
	VAlign      string   `json:"vAlign"`
	MirrorX     bool     `json:"mirrorX"`
	MirrorY     bool     `json:"mirrorY"`
	Multiline   bool     `json:"multiline"`
	InsertPoint Vec3     `json:"insertPoint"`
	AlignPoint  Vec3     `json:"alignPoint"`
	Anchor      Vec3     `json:"anchor"`
	Tangent     Vec3     `json:"tangent"`
	Binormal    Vec3     `json:"binormal"`
}

type WipeoutData struct {
	ClipType     string  `json:"clipType"`
	Clipping     bool    `json:"clipping"`
	InsertPoint  Vec3    `json:"insertPoint"`
	UVector      Vec3    `json:"uVector"`
	VVector      Vec3    `json:"vVector"`
	ImageSize    Vec2    `json:"imageSize"`
	Boundary     []Vec3  `json:"boundary"`
	Area         float64 `json:"area"`
	Perimeter    float64 `json:"perimeter"`
	DisplayFlags int     `json:"displayFlags"`
	Brightness   int     `json:"brightness"`
	Contrast     int     `json:"contrast"`
	Fade         int     `json:"fade"`
}

type XLineData struct {
	BasePoint    Vec3    `json:"basePoint"`
	Direction    Vec3    `json:"direction"`
	Start        Vec3    `json:"start"`
	End          Vec3    `json:"end"`
	Angle        float64 `json:"angle"`
	AngleDegrees float64 `json:"angleDegrees"`
	Length       float64 `json:"length"`
}
