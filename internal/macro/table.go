// Package macro 宏表：符号命令名 → 展开结果的只读映射
//
// 键有三种形式：
//   - 反斜杠命令，如 `\times`
//   - 裸单词，如 `sin`（仅在前后都不是字母且前面不是反斜杠时替换）
//   - 符号，如 `×`（任意位置替换）
//
// Table 构造后不可变，可在并发渲染间共享。
package macro

import (
	"sort"
	"unicode"
	"unicode/utf8"
)

// Table 不可变宏表
type Table struct {
	entries map[string]string
	words   []string
	symbols []string
}

// New 以 base 为内置表，依次叠加 extras；同名时后者优先
func New(base map[string]string, extras ...map[string]string) *Table {
	entries := make(map[string]string, len(base))
	for k, v := range base {
		entries[k] = v
	}
	for _, extra := range extras {
		for k, v := range extra {
			if k == "" {
				continue
			}
			entries[k] = v
		}
	}
	t := &Table{entries: entries}
	t.index()
	return t
}

func (t *Table) index() {
	for k := range t.entries {
		switch classify(k) {
		case keyWord:
			t.words = append(t.words, k)
		case keySymbol:
			t.symbols = append(t.symbols, k)
		}
	}
	// 长键优先，避免短键截断长键（如 "ln" 与 "lnx"）
	byLen := func(s []string) {
		sort.Slice(s, func(i, j int) bool {
			if len(s[i]) != len(s[j]) {
				return len(s[i]) > len(s[j])
			}
			return s[i] < s[j]
		})
	}
	byLen(t.words)
	byLen(t.symbols)
}

// Extend 返回叠加 extra 后的新表，原表不变
func (t *Table) Extend(extra map[string]string) *Table {
	if len(extra) == 0 {
		return t
	}
	if t == nil {
		return New(nil, extra)
	}
	return New(t.entries, extra)
}

// Lookup 查找展开结果
func (t *Table) Lookup(name string) (string, bool) {
	if t == nil {
		return "", false
	}
	v, ok := t.entries[name]
	return v, ok
}

// Len 条目数
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Names 按字典序返回所有键
func (t *Table) Names() []string {
	if t == nil {
		return nil
	}
	names := make([]string, 0, len(t.entries))
	for k := range t.entries {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Words 裸单词键，长者优先
func (t *Table) Words() []string {
	if t == nil {
		return nil
	}
	return t.words
}

// Symbols 符号键，长者优先
func (t *Table) Symbols() []string {
	if t == nil {
		return nil
	}
	return t.symbols
}

type keyClass int

const (
	keyCommand keyClass = iota
	keyWord
	keySymbol
)

func classify(key string) keyClass {
	if key[0] == '\\' {
		return keyCommand
	}
	r, _ := utf8.DecodeRuneInString(key)
	if unicode.IsLetter(r) && r < utf8.RuneSelf {
		for _, c := range key {
			if !unicode.IsLetter(c) {
				return keySymbol
			}
		}
		return keyWord
	}
	return keySymbol
}
