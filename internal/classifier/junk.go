package classifier

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	minTitleRunes      = 10
	minIndexTitleRunes = 20
)

// 导航、分页、栏目名等非文章标题，均从行首匹配
var junkTitlePatterns = []*regexp.Regexp{
	ci(`^Read(\s+All)?(\s+News)?$`),
	ci(`^EMAIL\s`),
	ci(`^mailto:`),
	ci(`^\d+$`),
	ci(`^Page \d+`),
	ci(`^Next$|^Previous$`),
	ci(`^Read more$`),
	ci(`^See all$`),
	ci(`^School of Veterinary Medicine$`),
	ci(`^Veterinary Medicine$`),
	ci(`^College of Veterinary Medicine$`),
	ci(`^News$`),
	ci(`^Events$`),
	ci(`^Home$`),
	ci(`^Contact`),
	ci(`^About`),
}

var junkURLAnchors = []string{"#footer", "#header", "#nav"}

// IsJunk 判断 (title, url) 是否为抓取到的导航/样板链接而非真实文章
func IsJunk(title, url string) bool {
	n := utf8.RuneCountInString(title)
	if n < minTitleRunes {
		return true
	}
	for _, re := range junkTitlePatterns {
		if re.MatchString(title) {
			return true
		}
	}
	if strings.HasPrefix(url, "mailto:") {
		return true
	}
	if strings.Contains(url, "/page/") && strings.HasSuffix(url, "/") {
		return true
	}
	for _, a := range junkURLAnchors {
		if strings.Contains(url, a) {
			return true
		}
	}
	if strings.HasSuffix(url, "/index.html") && n < minIndexTitleRunes {
		return true
	}
	return false
}
