package model

import "time"

// Window 表示统计的日历窗口，Start 和 End 均为闭区间
// Start 为起始日期的 00:00:00，End 为结束日期的 23:59:59
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewWindow 以 loc 时区构造 [startDate 00:00:00, endDate 23:59:59] 窗口
func NewWindow(startDate, endDate time.Time, loc *time.Location) Window {
	if loc == nil {
		loc = time.Local
	}
	sy, sm, sd := startDate.Date()
	ey, em, ed := endDate.Date()
	return Window{
		Start: time.Date(sy, sm, sd, 0, 0, 0, 0, loc),
		End:   time.Date(ey, em, ed, 23, 59, 59, 0, loc),
	}
}

// Contains 判断 t 是否落在窗口内（含边界）
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Dates 返回窗口内的每一个日历日（按时间升序），日期均为当天零点
func (w Window) Dates() []time.Time {
	loc := w.Start.Location()
	y, m, d := w.Start.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, loc)
	ey, em, ed := w.End.In(loc).Date()
	last := time.Date(ey, em, ed, 0, 0, 0, 0, loc)

	dates := make([]time.Time, 0)
	for !day.After(last) {
		dates = append(dates, day)
		day = day.AddDate(0, 0, 1)
	}
	return dates
}

// Days 返回窗口覆盖的日历天数
func (w Window) Days() int {
	return len(w.Dates())
}

const DateLayout = "2006-01-02"

func (w Window) String() string {
	return w.Start.Format(DateLayout) + " ~ " + w.End.Format(DateLayout)
}
