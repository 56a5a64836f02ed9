package model

// Metro 旅游 API 的行政区编码
type Metro struct {
	AreaCode string `json:"areaCode"`
	Name     string `json:"name"`
}

var Metros = []Metro{
	{AreaCode: "1", Name: "서울"},
	{AreaCode: "2", Name: "인천"},
	{AreaCode: "3", Name: "대전"},
	{AreaCode: "4", Name: "대구"},
	{AreaCode: "5", Name: "광주"},
	{AreaCode: "6", Name: "부산"},
	{AreaCode: "7", Name: "울산"},
	{AreaCode: "8", Name: "세종"},
	{AreaCode: "31", Name: "경기"},
	{AreaCode: "32", Name: "강원"},
	{AreaCode: "33", Name: "충북"},
	{AreaCode: "34", Name: "충남"},
	{AreaCode: "35", Name: "경북"},
	{AreaCode: "36", Name: "경남"},
	{AreaCode: "37", Name: "전북"},
	{AreaCode: "38", Name: "전남"},
	{AreaCode: "39", Name: "제주"},
}

func MetroName(areaCode string) string {
	for _, m := range Metros {
		if m.AreaCode == areaCode {
			return m.Name
		}
	}
	return ""
}
