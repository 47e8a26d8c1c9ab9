// Package placeholder 提供 {name} 占位符的字符串替换。
//
// 该包仅处理 "{名称}" 形式的占位符，适合邮件、通知、HTML 片段等
// 轻量文本渲染。不支持嵌套模板、循环与条件，强调可读性与可预测性。
//
// # 语义说明
//
//  1. 占位符名称由字母、数字、下划线组成（Unicode）
//  2. 紧跟在 "{" 之后的占位符视为字面量，原样保留（"{{name}" 转义）
//  3. 取值文本按原样插入，不做二次解析
//  4. 首个缺少取值的占位符会让整次渲染失败
//  5. 无法识别的花括号序列保持原样，永远不会报错
//
// # 快速开始
//
// 渲染带占位符的模板：
//
//	values := map[string]string{"name": "Homer"}
//	output, err := placeholder.Render("Hello {name}!", values)
//
// 保留字面量花括号：
//
//	output, err := placeholder.Render("json 示例: {{name}", nil)
//
// 缺少取值时返回 [MissingKeyError]，其 Name 字段为占位符名称。
// 详见 [Render] 文档。
package placeholder
