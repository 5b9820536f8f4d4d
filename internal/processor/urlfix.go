package processor

import (
	"regexp"
	"strings"
)

var schemeRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*:`)

// DefaultSourceBaseURLs 各学校站点的根地址，用于补全站内相对链接。
// 值为空表示该来源本身就给出完整链接。
func DefaultSourceBaseURLs() map[string]string {
	return map[string]string{
		"Western University":          "https://www.westernu.edu",
		"Lincoln Memorial University": "",
	}
}

// URLFixer 把站内相对路径补全为绝对地址
type URLFixer struct {
	bases map[string]string
}

func NewURLFixer(bases map[string]string) *URLFixer {
	cp := make(map[string]string, len(bases))
	for k, v := range bases {
		cp[k] = v
	}
	return &URLFixer{bases: cp}
}

// Fix 已带 scheme 的原样返回；以 / 开头且来源有根地址的拼接；其余原样返回
func (f *URLFixer) Fix(url, source string) string {
	if schemeRe.MatchString(url) {
		return url
	}
	if strings.HasPrefix(url, "/") {
		if base := f.bases[source]; base != "" {
			return base + url
		}
	}
	return url
}
