package latex

import (
	"fmt"

	"github.com/riverfjs/mathtext-go/internal/types"
)

// Validate 检查 LaTeX 源是否可被解释：未转义的花括号必须配对，结尾不能是悬空的反斜杠
func Validate(src string) error {
	depth := 0
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '\\':
			if i+1 >= len(src) {
				return fmt.Errorf("%w: dangling backslash at %d", types.ErrMalformed, i)
			}
			i++ // 跳过被转义的字符
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return fmt.Errorf("%w: unexpected '}' at %d", types.ErrMalformed, i)
			}
		}
	}
	if depth > 0 {
		return fmt.Errorf("%w: %w: %d unclosed '{'", types.ErrMalformed, types.ErrUnterminated, depth)
	}
	return nil
}
