package category

import "strings"

const (
	// All 是列表页“全部分类”的哨兵值，不属于分类表
	All = "All"
	// Default 没有任何关键词命中时的兜底分类
	Default = "World"
)

// rule 一个分类及其关键词（均为小写）
type rule struct {
	Label    string
	Keywords []string
}

// table 按声明顺序匹配：先命中的分类优先，顺序本身就是规则的一部分，不要排序
var table = []rule{
	{"World", []string{"world", "global", "ukraine", "india", "china", "europe", "middle east", "africa", "america"}},
	{"Business", []string{"business", "market", "stocks", "economy", "inflation", "trade", "bank", "startup"}},
	{"Technology", []string{"tech", "technology", "ai", "artificial intelligence", "software", "app", "iphone", "android", "robot", "chip"}},
	{"Sports", []string{"sport", "sports", "football", "cricket", "tennis", "match", "tournament", "olympic", "goal", "ipl"}},
	{"Entertainment", []string{"film", "movie", "bollywood", "hollywood", "tv", "series", "music", "celebrity", "show"}},
	{"Science", []string{"science", "space", "nasa", "research", "study", "astronomy"}},
	{"Health", []string{"health", "covid", "vaccine", "hospital", "disease", "mental"}},
	{"Environment", []string{"climate", "environment", "weather", "heat", "flood", "wildfire", "energy"}},
	{"Education", []string{"education", "university", "school", "students", "exam"}},
	{"Politics", []string{"election", "politics", "government", "parliament", "minister", "policy"}},
	{"Spiritual", []string{"spiritual", "meditation", "prayer", "mindfulness", "inner peace", "faith", "religion"}},
	{"Cyber Security", []string{"cyber", "security", "hacking", "data breach", "malware", "phishing", "ransomware"}},
	{"Animals", []string{"animals", "wildlife", "pets", "nature", "zoo", "endangered", "species"}},
}

// Classify 按关键词子串匹配标题，返回第一个命中的分类；都不命中时返回 Default
func Classify(title string) string {
	t := strings.ToLower(title)
	for _, r := range table {
		for _, k := range r.Keywords {
			if strings.Contains(t, k) {
				return r.Label
			}
		}
	}
	return Default
}

// Labels 返回分类表中的全部分类，保持声明顺序
func Labels() []string {
	out := make([]string, 0, len(table))
	for _, r := range table {
		out = append(out, r.Label)
	}
	return out
}

// Options 供前端下拉框使用：All + 全部分类
func Options() []string {
	return append([]string{All}, Labels()...)
}

// IsKnown 判断是否为分类表中的分类（不含 All）
func IsKnown(label string) bool {
	for _, r := range table {
		if r.Label == label {
			return true
		}
	}
	return false
}
