package classifier

import "strings"

// DefaultEmoji 没有任何规则命中时使用
const DefaultEmoji = "📰"

type emojiRule struct {
	rule
	emoji string
}

func emojiOf(pattern, emoji string) emojiRule {
	return emojiRule{rule: rule{re: ci(pattern)}, emoji: emoji}
}

// 顺序即优先级：资助类先于物种类，物种类先于疾病类
var emojiRules = []emojiRule{
	emojiOf(`gift|donat|fund|million|\$\d+|endow|philanthrop`, "💰"),
	emojiOf(`fellowship|scholar|student|graduat|degree|class`, "🎓"),
	emojiOf(`research|study|discover|scientist|lab\b|investig`, "🔬"),
	emojiOf(`hospital|clinic|facility|center|treatment|surgery`, "🏥"),
	emojiOf(`dog|canine|puppy|k-?9`, "🐕"),
	emojiOf(`cat|feline|kitten`, "🐱"),
	emojiOf(`horse|equine|equestrian`, "🐴"),
	emojiOf(`cow|bovine|cattle|livestock|dairy`, "🐄"),
	emojiOf(`pig|swine|porcine`, "🐷"),
	emojiOf(`bird|avian|poultry|chicken`, "🐦"),
	emojiOf(`zoo|wildlife|exotic|conservation`, "🦁"),
	emojiOf(`cancer|tumor|oncolog`, "🎗️"),
	emojiOf(`vaccine|immun|virus|disease|outbreak|pandemic`, "💉"),
	emojiOf(`award|honor|recogni|winner|achievement`, "🏆"),
	emojiOf(`conference|symposium|forum|event|workshop`, "📅"),
	emojiOf(`one health|zoonotic|public health`, "🌍"),
	emojiOf(`nutrition|diet|food|feed`, "🥗"),
	emojiOf(`emergency|rescue|disaster`, "🚨"),
	emojiOf(`technology|ai|artificial|digital|robot`, "🤖"),
	emojiOf(`partnership|collaborat|agreement`, "🤝"),
}

// Emoji 按规则表顺序返回第一个命中的 emoji，总有返回值
func Emoji(title, summary string) string {
	text := strings.ToLower(title + " " + summary)
	for _, r := range emojiRules {
		if r.match(text) {
			return r.emoji
		}
	}
	return DefaultEmoji
}

// Emojis 返回所有可能的取值（含默认值），按规则表顺序
func Emojis() []string {
	out := make([]string, 0, len(emojiRules)+1)
	for _, r := range emojiRules {
		out = append(out, r.emoji)
	}
	return append(out, DefaultEmoji)
}
