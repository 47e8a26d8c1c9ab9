package placeholder

import (
	"fmt"
	"regexp"
)

// ═══════════════════════════════════════════════════════════════════════════
// 预编译匹配器
// ═══════════════════════════════════════════════════════════════════════════

// 启动时编译一次，匹配器无状态，可被并发复用。
//
// 拆成两个模式是为了避免在循环里为 "字符串起始" 单独分支：
// matchStart 只负责位置 0 的占位符，matchOther 负责其余位置，
// 且要求占位符前有一个非 "{" 字符，由此实现 "{{name}" 转义。
var (
	matchStart = regexp.MustCompile(`^\{([\p{L}\p{N}_]+)\}`)
	matchOther = regexp.MustCompile(`[^{]\{([\p{L}\p{N}_]+)\}`)
)

// ═══════════════════════════════════════════════════════════════════════════
// 错误类型
// ═══════════════════════════════════════════════════════════════════════════

// MissingKeyError 表示模板中首个缺少取值的占位符。
//
// Name 为占位符名称本身，不含花括号与位置信息。
type MissingKeyError struct {
	Name string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("placeholder: %s: no value provided", e.Name)
}

// ═══════════════════════════════════════════════════════════════════════════
// 渲染
// ═══════════════════════════════════════════════════════════════════════════

// Render 用 values 中的取值替换 template 中的 {name} 占位符。
//
// 按从左到右的顺序解析占位符；遇到首个在 values 中不存在的
// 名称时立即返回 *[MissingKeyError]，不输出任何部分结果。
// 紧跟在 "{" 之后的占位符（如 "{{name}"）视为字面量，原样保留。
//
// 取值文本按原样插入。循环每轮都会在更新后的工作串上重新扫描，
// 因此插入的取值若恰好构成其他键的占位符形状，也会在后续轮次
// 被解析，这是沿袭既有行为的已知特性。
//
// 对固定的 template 与 values，结果是确定的，与 map 遍历顺序无关。
func Render(template string, values map[string]string) (string, error) {
	output := template
	if loc := matchStart.FindStringSubmatchIndex(template); loc != nil {
		name := capturedName(template, loc)
		value, ok := values[name]
		if !ok {
			return "", &MissingKeyError{Name: name}
		}
		output = value + template[loc[1]:]
	}

	for {
		loc := matchOther.FindStringSubmatchIndex(output)
		if loc == nil {
			break
		}
		name := capturedName(output, loc)
		value, ok := values[name]
		if !ok {
			return "", &MissingKeyError{Name: name}
		}
		// loc[2]-1 指向 "{"，前缀字符保持原样
		output = output[:loc[2]-1] + value + output[loc[1]:]
	}

	return output, nil
}

// capturedName 从匹配结果中提取占位符名称。
//
// 两个匹配器都带且仅带一个捕获组，提取失败说明匹配器与
// 提取逻辑对占位符形状的理解不一致，属于程序缺陷，直接 panic。
func capturedName(s string, loc []int) string {
	if len(loc) < 4 || loc[2] < 0 {
		panic("placeholder: token matched without a captured name")
	}

	return s[loc[2]:loc[3]]
}
