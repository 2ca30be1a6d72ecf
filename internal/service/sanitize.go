// File: internal/service/sanitize.go
package service

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	richTextPolicy = bluemonday.UGCPolicy()
	plainPolicy    = bluemonday.StrictPolicy()
)

// SanitizeRichText 保留編輯器產生的安全 HTML (段落、連結、清單等)
func SanitizeRichText(s string) string {
	return strings.TrimSpace(richTextPolicy.Sanitize(s))
}

// SanitizePlainText 移除所有標籤，回傳純文字
func SanitizePlainText(s string) string {
	return strings.TrimSpace(html.UnescapeString(plainPolicy.Sanitize(s)))
}
