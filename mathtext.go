// Package mathtext 把混排了数学记号的题目文本渲染为可展示的节点序列
//
// 输入是一段原始字符串（题干、选项、解析等），其中可以混用：
//   - 显式定界的公式：$$...$$、\[...\]（块级），$...$、\(...\)（行内）
//   - 未加定界符的简单算式：1/2 + 1/4、x^2、sqrt(16)、y = 3
//   - LaTeX 风格的命令：\frac{1}{2}、\times、\pi、\le
//
// 核心功能：
//   - 无损切分：所有片段原文依序拼接即为原始输入
//   - 启发式识别未加定界符的公式
//   - 规范化：分数约分为 ½/¾ 等字形、x → ×、宏替换；可切换为 MathML 输出
//   - 单个公式渲染失败只降级该节点，整体失败时退化为一个纯文本节点
//
// 主要 API：
//   - RenderMathText(): 使用默认引擎渲染，返回节点序列
//   - RenderPlainText(): 拼接为纯文本
//   - New(): 创建可配置的 Engine（策略、宏、池大小、日志）
//
// 示例：
//
//	nodes := mathtext.RenderMathText("What is 1/2 + 1/4?", false, nil)
//	for _, n := range nodes {
//	    switch n.Kind {
//	    case mathtext.KindText:
//	        // 普通文本
//	    case mathtext.KindInlineMath, mathtext.KindDisplayMath:
//	        // 公式
//	    }
//	}
package mathtext

import "sync"

var (
	defaultEngine     *Engine
	defaultEngineOnce sync.Once
)

// Default 返回默认引擎（unicode 策略、启用启发式识别），进程内单例
func Default() *Engine {
	defaultEngineOnce.Do(func() {
		e, err := New()
		if err != nil {
			// 默认选项不会出错
			panic(err)
		}
		defaultEngine = e
	})
	return defaultEngine
}

// RenderMathText 渲染一段文本，从不 panic，也不返回错误
//
// 参数：
//   - text: 原始文本
//   - displayMode: 为 true 时所有公式按块级样式渲染
//   - extraMacros: 调用方追加的宏，与内置宏冲突时以调用方为准；可为 nil
//
// 返回的节点与切分出的片段一一对应，顺序不变。
func RenderMathText(text string, displayMode bool, extraMacros map[string]string) []RenderNode {
	return Default().RenderWithMacros(text, displayMode, extraMacros)
}

// RenderPlainText 渲染并拼接为纯文本；displayMode 为 true 时块级公式单独成行
func RenderPlainText(text string, displayMode bool) string {
	return Default().RenderPlainText(text, displayMode)
}
