package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjzar/chatrecap/internal/model"
)

func TestCountBySender(t *testing.T) {
	msgs := []*model.Message{
		text(at(2025, 1, 1, 1, 0), "B", "一二三"),
		text(at(2025, 1, 1, 2, 0), "A", "ab"),
		text(at(2025, 1, 1, 3, 0), "A", "星露谷"),
		text(at(2025, 1, 1, 4, 0), "C", ""),
	}
	got := CountBySender(msgs)
	assert.Equal(t, []model.SenderStat{
		{Name: "A", Messages: 2, Chars: 5},
		{Name: "B", Messages: 1, Chars: 3},
		{Name: "C", Messages: 1, Chars: 0},
	}, got)
	assert.Equal(t, 4, TotalMessages(got))
	assert.Equal(t, 8, TotalChars(got))
}

func TestCountByType(t *testing.T) {
	msgs := []*model.Message{
		msg(at(2025, 1, 1, 1, 0), "A", "图片消息", "", false),
		msg(at(2025, 1, 1, 2, 0), "A", model.MessageTypeText, "x", false),
		msg(at(2025, 1, 1, 3, 0), "A", model.MessageTypeText, "y", false),
	}
	assert.Equal(t, []model.TypeStat{
		{Type: model.MessageTypeText, Count: 2},
		{Type: "图片消息", Count: 1},
	}, CountByType(msgs))
}

func TestDailyCountsFillsGaps(t *testing.T) {
	w := window(at(2025, 1, 1, 0, 0), at(2025, 1, 3, 0, 0))
	msgs := []*model.Message{
		text(at(2025, 1, 1, 9, 0), "A", "x"),
		text(at(2025, 1, 1, 23, 0), "A", "x"),
		text(at(2025, 1, 3, 0, 30), "A", "x"),
	}
	got := DailyCounts(msgs, w)
	assert.Equal(t, []model.DayCount{
		{Date: "2025-01-01", Count: 2},
		{Date: "2025-01-02", Count: 0},
		{Date: "2025-01-03", Count: 1},
	}, got)
}

func TestDailyCountsLengthAndSum(t *testing.T) {
	start := at(2025, 1, 1, 0, 0)
	end := at(2025, 12, 25, 0, 0)
	w := window(start, end)

	msgs := make([]*model.Message, 0)
	for i := 0; i < 500; i++ {
		msgs = append(msgs, text(start.Add(time.Duration(i)*17*time.Hour), "A", "x"))
	}
	msgs = FilterWindow(msgs, w)

	got := DailyCounts(msgs, w)
	wantDays := int(end.Sub(start).Hours()/24) + 1
	require.Len(t, got, wantDays)

	sum := 0
	for _, d := range got {
		sum += d.Count
	}
	assert.Equal(t, len(msgs), sum)
	assert.Equal(t, "2025-01-01", got[0].Date)
	assert.Equal(t, "2025-12-25", got[len(got)-1].Date)
}

func TestHourlyCounts(t *testing.T) {
	msgs := []*model.Message{
		text(at(2025, 1, 1, 0, 5), "A", "x"),
		text(at(2025, 1, 2, 23, 59), "A", "x"),
		text(at(2025, 1, 3, 23, 1), "A", "x"),
	}
	got := HourlyCounts(msgs, window(at(2025, 1, 1, 0, 0), at(2025, 1, 3, 0, 0)))
	require.Len(t, got, 24)
	for h, c := range got {
		assert.Equal(t, h, c.Hour)
	}
	assert.Equal(t, 1, got[0].Count)
	assert.Equal(t, 2, got[23].Count)
	assert.Equal(t, 0, got[12].Count)
}

func TestHourlyCountsUsesWindowZone(t *testing.T) {
	// 00:30 UTC 即 08:30 +08:00
	msgs := []*model.Message{
		text(time.Date(2025, 1, 1, 0, 30, 0, 0, time.UTC), "A", "x"),
	}
	got := HourlyCounts(msgs, window(at(2025, 1, 1, 0, 0), at(2025, 1, 1, 0, 0)))
	assert.Equal(t, 1, got[8].Count)
	assert.Equal(t, 0, got[0].Count)
}
