package analysis

import (
	"sort"
	"strings"

	"github.com/sjzar/chatrecap/internal/model"
)

// DefaultTopics 默认话题表，关键词区分大小写，大小写变体需要分别列出
var DefaultTopics = []model.Topic{
	{Name: "🎮 星露谷物语", Keywords: []string{"星露谷", "stardew", "Stardew", "鹈鹕镇", "下矿", "种菜", "鱼王", "潘妮", "阿比盖尔", "塞巴斯蒂安", "哈维", "山姆", "亚历克斯", "谢恩", "马鲁", "艾米丽", "海莉", "莱纳斯", "法师", "祝尼魔"}},
	{Name: "👗 暖暖系列", Keywords: []string{"暖暖", "闪暖", "奇迹暖暖", "无限暖暖", "搭配", "套装", "抽阁", "叠纸", "狗叠", "大喵", "秦衣", "左一", "莉莉斯", "墨丘利"}},
	{Name: "🐱 罗小黑", Keywords: []string{"罗小黑", "小黑", "蓝溪镇", "无限", "风息", "老君", "清凝", "玄离", "谛听", "哪吒", "会馆", "灵质空间"}},
	{Name: "💻 项目开发", Keywords: []string{"项目", "代码", "bug", "Bug", "BUG", "开发", "需求", "上线", "数据库", "前端", "后端", "接口", "服务器", "部署", "答辩", "大创", "毕设"}},
	{Name: "📚 学习上课", Keywords: []string{"学习", "上课", "作业", "考试", "复习", "老师", "绩点", "挂科", "考研", "教室", "图书馆", "自习", "早八", "课设", "实验", "论文", "文献"}},
}

// ClassifyTopics 统计每个话题相关的消息数
// 对每条消息，在每个话题内只记第一个命中的关键词：话题计数 +1，该关键词命中 +1，
// 然后继续检查下一个话题。因此一条消息对同一话题最多贡献 1 次，但可以同时命中多个话题。
// 返回结果按话题表顺序排列，每个话题的关键词按命中次数降序并截取前 topK 个（topK <= 0 不截取）。
func ClassifyTopics(windowed []*model.Message, topics []model.Topic, topK int) []model.TopicStat {
	counts := make([]int, len(topics))
	details := make([]*counter, len(topics))
	for i := range topics {
		details[i] = newCounter()
	}

	for _, m := range windowed {
		if m.Content == "" {
			continue
		}
		for i, topic := range topics {
			for _, kw := range topic.Keywords {
				if kw == "" || !strings.Contains(m.Content, kw) {
					continue
				}
				counts[i]++
				details[i].Add(kw, 1)
				break
			}
		}
	}

	out := make([]model.TopicStat, 0, len(topics))
	for i, topic := range topics {
		keywords := make([]model.KeywordHit, 0)
		for _, kw := range details[i].MostCommon(topK) {
			keywords = append(keywords, model.KeywordHit{Keyword: kw, Hits: details[i].Get(kw)})
		}
		out = append(out, model.TopicStat{
			Name:     topic.Name,
			Count:    counts[i],
			Keywords: keywords,
		})
	}
	return out
}

// RankTopics 过滤掉没有命中的话题，并按消息数降序排列（同数保持话题表顺序）
func RankTopics(stats []model.TopicStat) []model.TopicStat {
	out := make([]model.TopicStat, 0, len(stats))
	for _, s := range stats {
		if s.Count > 0 {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
