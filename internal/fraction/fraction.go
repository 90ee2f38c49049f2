// Package fraction 实现规范化过程中使用的分数值：约分、符号与 Unicode 规范形式
package fraction

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// FractionSlash U+2044，用于没有预组合字形的分数
const FractionSlash = "⁄"

var (
	// ErrZeroDenominator 分母为 0
	ErrZeroDenominator = errors.New("fraction: zero denominator")
	// ErrNotNumeric 操作数不是整数
	ErrNotNumeric = errors.New("fraction: operand is not numeric")
)

// glyphs 常见分数的预组合 Unicode 字形（键为约分后的分子、分母）
var glyphs = map[[2]int]string{
	{1, 2}:  "½",
	{1, 3}:  "⅓",
	{2, 3}:  "⅔",
	{1, 4}:  "¼",
	{3, 4}:  "¾",
	{1, 5}:  "⅕",
	{2, 5}:  "⅖",
	{3, 5}:  "⅗",
	{4, 5}:  "⅘",
	{1, 6}:  "⅙",
	{5, 6}:  "⅚",
	{1, 7}:  "⅐",
	{1, 8}:  "⅛",
	{3, 8}:  "⅜",
	{5, 8}:  "⅝",
	{7, 8}:  "⅞",
	{1, 9}:  "⅑",
	{1, 10}: "⅒",
}

// Glyph 返回 n/d 的预组合字形，不在表中时 ok 为 false
func Glyph(n, d int) (string, bool) {
	g, ok := glyphs[[2]int{n, d}]
	return g, ok
}

// Fraction 分子/分母均为有符号整数，分母不为 0
type Fraction struct {
	Numerator   int
	Denominator int
}

// New 创建分数，分母为 0 时返回 ErrZeroDenominator
func New(numerator, denominator int) (Fraction, error) {
	if denominator == 0 {
		return Fraction{}, ErrZeroDenominator
	}
	return Fraction{Numerator: numerator, Denominator: denominator}, nil
}

// Parse 从两个十进制操作数创建分数
func Parse(numerator, denominator string) (Fraction, error) {
	n, err := strconv.Atoi(strings.TrimSpace(numerator))
	if err != nil {
		return Fraction{}, fmt.Errorf("%w: %q", ErrNotNumeric, numerator)
	}
	d, err := strconv.Atoi(strings.TrimSpace(denominator))
	if err != nil {
		return Fraction{}, fmt.Errorf("%w: %q", ErrNotNumeric, denominator)
	}
	return New(n, d)
}

// GCD 最大公约数，结果非负；gcd(0, 0) 定义为 1 以便约分
func GCD(a, b int) int {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

// Sign 返回 -1、0 或 1
func (f Fraction) Sign() int {
	switch {
	case f.Numerator == 0:
		return 0
	case (f.Numerator < 0) != (f.Denominator < 0):
		return -1
	default:
		return 1
	}
}

// Reduce 约分；符号归入分子，分母恒为正。对已约分的分数是无操作
func (f Fraction) Reduce() Fraction {
	if f.Denominator == 0 {
		return f
	}
	n, d := abs(f.Numerator), abs(f.Denominator)
	g := GCD(n, d)
	n, d = n/g, d/g
	if f.Sign() < 0 {
		n = -n
	}
	return Fraction{Numerator: n, Denominator: d}
}

// Canonical 规范 Unicode 形式：预组合字形，或 "n⁄d"；负数带前缀 "-"
func (f Fraction) Canonical() string {
	r := f.Reduce()
	sign := ""
	if r.Numerator < 0 {
		sign = "-"
	}
	n := abs(r.Numerator)
	if g, ok := Glyph(n, r.Denominator); ok {
		return sign + g
	}
	return sign + strconv.Itoa(n) + FractionSlash + strconv.Itoa(r.Denominator)
}

// TeX 结构化标记形式 \frac{n}{d}（约分后），负数带前缀 "-"
func (f Fraction) TeX() string {
	r := f.Reduce()
	sign := ""
	if r.Numerator < 0 {
		sign = "-"
	}
	return sign + `\frac{` + strconv.Itoa(abs(r.Numerator)) + "}{" + strconv.Itoa(r.Denominator) + "}"
}

// Equal 判断两个分数是否表示同一有理数
func (f Fraction) Equal(o Fraction) bool {
	return f.Numerator*o.Denominator == o.Numerator*f.Denominator
}

func (f Fraction) String() string {
	return strconv.Itoa(f.Numerator) + "/" + strconv.Itoa(f.Denominator)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
