package sanitizer

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

var strictPolicy = bluemonday.StrictPolicy()

// CleanText 清理用户输入的纯文本（工人消息、姓名、指令）：
// 移除所有 HTML 标签和控制字符，合并空白，并按 maxRunes 截断（0 表示不截断）。
//
// 示例：
//   - "<b>안전모</b>  착용" -> "안전모 착용"
//   - "Tom &amp; Jerry" -> "Tom & Jerry"
func CleanText(input string, maxRunes int) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	if !utf8.ValidString(input) {
		input = strings.ToValidUTF8(input, "")
	}

	out := input
	if strings.ContainsAny(out, "<>&") {
		out = html.UnescapeString(strictPolicy.Sanitize(out))
	}

	out = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, out)
	out = strings.Join(strings.Fields(out), " ")

	return Truncate(out, maxRunes)
}

// Truncate 按 rune 截断，超出时以 "…" 结尾。
func Truncate(s string, maxRunes int) string {
	if maxRunes <= 0 || utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:maxRunes-1])) + "…"
}

// Summary 将 RSS/Atom 条目的 HTML 摘要转换为纯文本。
func Summary(input string, maxRunes int) string {
	return Truncate(StripTags(input), maxRunes)
}

// StripTags 移除字符串中的所有 HTML/XML 标签，只保留文本内容。
// 仅用于内容清理，不应用于 XSS 防御。
//
// 示例：
//   - "<p>Hello <strong>World</strong></p>" -> "Hello World"
//   - "Plain text" -> "Plain text"
func StripTags(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if !strings.Contains(input, "<") {
		return strings.Join(strings.Fields(html.UnescapeString(input)), " ")
	}

	tokenizer := html.NewTokenizer(strings.NewReader(input))
	var buf strings.Builder
	skip := 0

	for {
		tt := tokenizer.Next()
		switch tt {
		case html.ErrorToken:
			if tokenizer.Err() == io.EOF {
				return strings.Join(strings.Fields(buf.String()), " ")
			}
			// 解析错误时返回空字符串
			return ""
		case html.SelfClosingTagToken:
			name, _ := tokenizer.TagName()
			if isBlockTag(string(name)) {
				buf.WriteByte(' ')
			}
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			if isSkippedTag(string(name)) {
				skip++
			} else if isBlockTag(string(name)) {
				buf.WriteByte(' ')
			}
		case html.EndTagToken:
			name, _ := tokenizer.TagName()
			if isSkippedTag(string(name)) && skip > 0 {
				skip--
			} else if isBlockTag(string(name)) {
				buf.WriteByte(' ')
			}
		case html.TextToken:
			if skip == 0 {
				buf.WriteString(tokenizer.Token().Data)
			}
		}
	}
}

// script/style 的内容不是正文
func isSkippedTag(name string) bool {
	return name == "script" || name == "style"
}

func isBlockTag(name string) bool {
	switch name {
	case "p", "br", "div", "li", "tr", "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}
