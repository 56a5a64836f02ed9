package pkg

import "time"

const (
	LayoutYMD     = "20060102"
	LayoutDate    = "2006-01-02"
	LayoutYMDTime = "20060102 15:04:05"
)

// ParseYMD 解析 YYYYMMDD 字符串
func ParseYMD(s string) (time.Time, error) {
	return time.Parse(LayoutYMD, s)
}

func FormatYMD(t time.Time) string {
	return t.Format(LayoutYMD)
}

func FormatDate(t time.Time) string {
	return t.Format(LayoutDate)
}

func FormatYMDTime(t time.Time) string {
	return t.Format(LayoutYMDTime)
}
