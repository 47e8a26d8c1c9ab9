// Package valuemap 提供占位符取值表的构建。
//
// [github.com/lwmacct/260826-go-pkg-placeholder/pkg/placeholder.Render]
// 只接受扁平的 map[string]string；本包负责把 YAML/JSON 文件、
// 结构体与 CLI 的 key=value 参数转换成这种形式。
//
// # 语义说明
//
//  1. 取值文件按扩展名选择解析器：.json 用 JSON，其余用 YAML
//  2. 标量取值（字符串、数字、布尔）会被宽松转换为字符串，
//     其中布尔转换为 "1" / "0"
//  3. 嵌套取值（对象、数组）不被支持，解析时报错
//  4. [Merge] 以 src 覆盖 dst，用于多来源叠加
//
// # 快速开始
//
// 从 YAML 文件加载取值：
//
//	values, err := valuemap.FromFile("values.yaml")
//
// 叠加命令行覆盖：
//
//	overrides, err := valuemap.FromPairs([]string{"name=Homer"})
//	valuemap.Merge(values, overrides)
package valuemap
