package render

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEncode JSON 没有 NaN/Inf，含非有限值的记录编码失败
var ErrEncode = errors.New("render: encode")

// Marshal 序列化一条记录，有限值可以逐位还原
func Marshal(rd RenderData) ([]byte, error) {
	data, err := json.Marshal(rd)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrEncode, rd.Handle, err)
	}
	return data, nil
}

func Unmarshal(data []byte) (RenderData, error) {
	var rd RenderData
	if err := json.Unmarshal(data, &rd); err != nil {
		return RenderData{}, fmt.Errorf("render: decode: %w", err)
	}
	return rd, nil
}
