package analysis

import (
	"github.com/sjzar/chatrecap/internal/model"
	"github.com/sjzar/chatrecap/pkg/util"
)

// CountBySender 统计每个发送者的消息数和字数，按消息数降序
// 字数按 Unicode 字符计
func CountBySender(windowed []*model.Message) []model.SenderStat {
	msgs := newCounter()
	chars := make(map[string]int)
	for _, m := range windowed {
		msgs.Add(m.Sender, 1)
		chars[m.Sender] += util.RuneLen(m.Content)
	}

	out := make([]model.SenderStat, 0, msgs.Len())
	for _, name := range msgs.MostCommon(0) {
		out = append(out, model.SenderStat{
			Name:     name,
			Messages: msgs.Get(name),
			Chars:    chars[name],
		})
	}
	return out
}

// CountByType 统计消息类型分布，按数量降序
func CountByType(windowed []*model.Message) []model.TypeStat {
	types := newCounter()
	for _, m := range windowed {
		types.Add(m.Type, 1)
	}

	out := make([]model.TypeStat, 0, types.Len())
	for _, t := range types.MostCommon(0) {
		out = append(out, model.TypeStat{Type: t, Count: types.Get(t)})
	}
	return out
}

// DailyCounts 按日统计消息数，窗口内没有消息的日期补 0
func DailyCounts(windowed []*model.Message, w model.Window) []model.DayCount {
	loc := w.Start.Location()
	perDay := make(map[string]int)
	for _, m := range windowed {
		perDay[m.Time.In(loc).Format(model.DateLayout)]++
	}

	dates := w.Dates()
	out := make([]model.DayCount, 0, len(dates))
	for _, d := range dates {
		key := d.Format(model.DateLayout)
		out = append(out, model.DayCount{Date: key, Count: perDay[key]})
	}
	return out
}

// HourlyCounts 按窗口时区的小时（0-23）统计消息数，始终返回 24 项
func HourlyCounts(windowed []*model.Message, w model.Window) []model.HourCount {
	loc := w.Start.Location()
	var perHour [24]int
	for _, m := range windowed {
		perHour[m.Time.In(loc).Hour()]++
	}

	out := make([]model.HourCount, 24)
	for h := 0; h < 24; h++ {
		out[h] = model.HourCount{Hour: h, Count: perHour[h]}
	}
	return out
}

// TotalChars 汇总各发送者字数
func TotalChars(senders []model.SenderStat) int {
	total := 0
	for _, s := range senders {
		total += s.Chars
	}
	return total
}

// TotalMessages 汇总各发送者消息数
func TotalMessages(senders []model.SenderStat) int {
	total := 0
	for _, s := range senders {
		total += s.Messages
	}
	return total
}
