package llvm

import (
	"fmt"
	"strings"
)

// formatBytes renders text as an LLVM c"..." literal with a trailing NUL.
// Printable ASCII is kept verbatim; quotes, backslashes and everything else
// become \XX escapes.
func formatBytes(text string) string {
	var sb strings.Builder
	sb.Grow(len(text) + 6)
	sb.WriteString("c\"")
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch >= 0x20 && ch < 0x7f && ch != '"' && ch != '\\' {
			sb.WriteByte(ch)
			continue
		}
		fmt.Fprintf(&sb, "\\%02X", ch)
	}
	sb.WriteString("\\00\"")
	return sb.String()
}

// StringPtr is the constant expression addressing the first byte of a pooled
// string global.
func StringPtr(global string, length int) string {
	return fmt.Sprintf("getelementptr ([%d x i8], [%d x i8]* %s, i32 0, i32 0)", length, length, global)
}
