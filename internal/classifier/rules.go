// Package classifier 判断文章标题是否为导航噪音、是否与兽医/健康相关，并给出展示用的 emoji。
// 所有规则表在包初始化时编译一次，之后只读。
package classifier

import "regexp"

// rule 是一条关键词规则。unless 非空时，只有在最后一次命中之后的文本
// 不匹配 unless 才算命中（例如 "tiger" 后面出现 "zoo" 时不算）。
type rule struct {
	re     *regexp.Regexp
	unless *regexp.Regexp
}

func (r rule) match(s string) bool {
	if r.unless == nil {
		return r.re.MatchString(s)
	}
	locs := r.re.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return false
	}
	return !r.unless.MatchString(s[locs[len(locs)-1][1]:])
}

// ci 编译一个大小写不敏感的正则
func ci(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + pattern)
}

func rulesOf(patterns ...string) []rule {
	out := make([]rule, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, rule{re: ci(p)})
	}
	return out
}

func unless(pattern, except string) rule {
	return rule{re: ci(pattern), unless: ci(except)}
}

func matchAny(rules []rule, s string) bool {
	for _, r := range rules {
		if r.match(s) {
			return true
		}
	}
	return false
}
