package macro

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Parse 解析 YAML（或 JSON）格式的宏定义：
//
//	\R: "ℝ"
//	sinh: "sinh"
func Parse(data []byte) (map[string]string, error) {
	entries := make(map[string]string)
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse macros: %w", err)
	}
	for k := range entries {
		if k == "" {
			return nil, fmt.Errorf("parse macros: empty macro name")
		}
	}
	return entries, nil
}

// LoadFile 读取宏定义文件
func LoadFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read macros file: %w", err)
	}
	return Parse(data)
}
