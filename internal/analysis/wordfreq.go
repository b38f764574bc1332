package analysis

import (
	"strings"

	"github.com/sjzar/chatrecap/internal/model"
	"github.com/sjzar/chatrecap/pkg/util"
)

// Segmenter 把一段文本切分成词，同样的输入必须得到同样的输出
type Segmenter interface {
	Name() string
	Cut(text string) []string
}

// StopWords 停用词集合
type StopWords map[string]struct{}

func NewStopWords(words []string) StopWords {
	sw := make(StopWords, len(words))
	for _, w := range words {
		sw[w] = struct{}{}
	}
	return sw
}

func (s StopWords) Contains(w string) bool {
	_, ok := s[w]
	return ok
}

// DefaultStopWords 默认停用词：常见虚词、语气词以及非文本消息的占位符
var DefaultStopWords = []string{
	"啊啊", "哈哈", "哈", "啊", "哦", "嗯", "了", "的", "我", "你", "是", "在", "不", "有", "也", "就", "都",
	"吧", "吗", "呢", "去", "要", "这", "那", "个", "很", "好", "么", "怎么", "什么", "因为", "所以",
	"但是", "而且", "然后", "虽然", "其实", "就是", "还是", "或者", "如果", "那个", "这个",
	"一个", "这么", "我们", "没有", "知道", "时候", "特别", "不是", "这样", "觉得", "感觉", "真的", "现在", "可以", "自己", "可能", "还有", "那些", "这些", "一次", "一下", "一点", "一些",
	"[动画表情]", "[图片]", "[语音]", "[视频]", "[引用]", "[链接]", "[文件]", "[位置]", "[转账]",
	"拍了拍", "emoji", "表情", "ok", "OK", "Ok", "xxx", "哈哈哈", "啊啊啊", "嘿嘿", "嘻嘻", "呜呜", "emmm",
	"捂脸", "流泪", "抓狂", "憨笑", "拥抱", "呲牙", "偷笑", "调皮", "撇嘴", "发呆",
}

// Tokenize 对文本消息分词并过滤，返回保留下来的词（按出现顺序）
func Tokenize(windowed []*model.Message, seg Segmenter, stopWords StopWords) []string {
	tokens := make([]string, 0)
	if seg == nil {
		return tokens
	}
	for _, m := range windowed {
		if !m.IsText() || m.Content == "" {
			continue
		}
		for _, w := range seg.Cut(m.Content) {
			if keepToken(w, stopWords) {
				tokens = append(tokens, w)
			}
		}
	}
	return tokens
}

func keepToken(w string, stopWords StopWords) bool {
	if util.RuneLen(w) <= 1 {
		return false
	}
	if stopWords.Contains(w) {
		return false
	}
	if strings.HasPrefix(w, "[") {
		return false
	}
	return !util.IsNumeric(w)
}

// RankWords 按词频降序排列，同频的词按首次出现先后，截取前 topN 个（topN <= 0 不截取）
func RankWords(tokens []string, topN int) []model.WordCount {
	c := newCounter()
	for _, t := range tokens {
		c.Add(t, 1)
	}
	out := make([]model.WordCount, 0, c.Len())
	for _, w := range c.MostCommon(topN) {
		out = append(out, model.WordCount{Word: w, Count: c.Get(w)})
	}
	return out
}

// WordFrequency 分词并统计高频词
func WordFrequency(windowed []*model.Message, seg Segmenter, stopWords StopWords, topN int) []model.WordCount {
	return RankWords(Tokenize(windowed, seg, stopWords), topN)
}
