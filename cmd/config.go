package main

import (
	"errors"
	"strings"

	"github.com/spf13/viper"

	"github.com/zooyer/dxfgeom/render"
)

// 配置项，可写在 dxfgeom.yaml 中，也可用 DXFGEOM_ 前缀的环境变量覆盖 (点号换成下划线)
const (
	CfgWorkers        = "workers"
	CfgResolveByLayer = "resolve_bylayer"
	CfgDebug          = "debug"
	CfgOutput         = "output"
	CfgClusterGap     = "summary.cluster_gap"
	CfgArcTolerance   = "render.arc_tolerance"
	CfgMaxArcSegments = "render.max_arc_segments"
	CfgSplineSegments = "render.spline_segments"
	CfgCharWidth      = "render.char_width_factor"
	CfgTriangulation  = "render.triangulation"
)

// loadConfig 依次在 dirs 中查找 dxfgeom.* 配置文件，找不到时只用默认值和环境变量
func loadConfig(dirs ...string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigName("dxfgeom")
	for _, dir := range dirs {
		v.AddConfigPath(dir)
	}
	v.SetEnvPrefix("DXFGEOM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(CfgWorkers, 0)
	v.SetDefault(CfgResolveByLayer, true)
	v.SetDefault(CfgDebug, false)
	v.SetDefault(CfgOutput, "")
	v.SetDefault(CfgClusterGap, 10.0)
	v.SetDefault(CfgArcTolerance, 0.0)
	v.SetDefault(CfgMaxArcSegments, 0)
	v.SetDefault(CfgSplineSegments, 0)
	v.SetDefault(CfgCharWidth, 0.0)
	v.SetDefault(CfgTriangulation, "")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	return v, nil
}

// rendererOptions 未配置 (零值) 的项由 render 包忽略，保持默认
func rendererOptions(v *viper.Viper) []render.Option {
	return []render.Option{
		render.WithArcTolerance(v.GetFloat64(CfgArcTolerance)),
		render.WithMaxArcSegments(v.GetInt(CfgMaxArcSegments)),
		render.WithSplineSegments(v.GetInt(CfgSplineSegments)),
		render.WithCharWidthFactor(v.GetFloat64(CfgCharWidth)),
		render.WithTriangulation(render.Triangulation(v.GetString(CfgTriangulation))),
	}
}
