package valuemap

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	yamlv3 "go.yaml.in/yaml/v3"
)

// FromFile 读取取值文件并解析为扁平取值表。
//
// 解析器由扩展名决定：.json 用 JSON，其余按 YAML 处理。
func FromFile(path string) (map[string]string, error) {
	content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
	if err != nil {
		return nil, fmt.Errorf("valuemap: read %s: %w", path, err)
	}

	return FromBytes(path, content)
}

// FromBytes 解析取值文件内容，path 仅用于选择解析器与错误信息。
//
// 文件根部必须是对象，取值必须为标量；标量会被宽松转换为字符串。
func FromBytes(path string, content []byte) (map[string]string, error) {
	var raw any
	var err error
	if isJSONPath(path) {
		err = json.Unmarshal(content, &raw)
	} else {
		err = yamlv3.Unmarshal(content, &raw)
	}
	if err != nil {
		return nil, fmt.Errorf("valuemap: parse %s: %w", path, err)
	}
	if raw == nil {
		return map[string]string{}, nil
	}

	values, err := decodeValues(raw)
	if err != nil {
		return nil, fmt.Errorf("valuemap: %s: %w", path, err)
	}

	return values, nil
}

// FromStruct 把结构体的标量字段转换为取值表。
//
// 字段名由 json tag 定义，嵌套结构体不被支持。
func FromStruct(v any) (map[string]string, error) {
	return decodeValues(v)
}

// FromPairs 解析 "key=value" 形式的参数列表。
//
// value 中允许出现 "="，只在首个 "=" 处切分；key 不能为空。
func FromPairs(pairs []string) (map[string]string, error) {
	values := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("valuemap: invalid pair %q, expected key=value", pair)
		}
		values[key] = value
	}

	return values, nil
}

// Merge 把 src 的取值叠加到 dst，同名键以 src 为准。
func Merge(dst, src map[string]string) {
	for key, value := range src {
		dst[key] = value
	}
}

// decodeValues 把任意标量映射宽松解码为 map[string]string。
func decodeValues(input any) (map[string]string, error) {
	out := map[string]string{}
	conf := &mapstructure.DecoderConfig{
		Metadata:         nil,
		Result:           &out,
		WeaklyTypedInput: true,
		TagName:          "json",
	}
	decoder, err := mapstructure.NewDecoder(conf)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(input); err != nil {
		return nil, fmt.Errorf("values must be flat scalars: %w", err)
	}

	return out, nil
}

func isJSONPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}
