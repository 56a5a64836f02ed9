package pkg

// PageQuery 列表查询参数。SortKey/Field 来自请求输入，
// repository 侧必须先对照各实体的白名单校验再拼进 SQL。
type PageQuery struct {
	SortKey   string
	SortValue string // asc / desc
	Skip      int
	Limit     int
	Field     string
	Search    string
}

// PageResult content + totalElements 的分页信封，totalElements 是过滤后、分页前的总数
type PageResult struct {
	Content       any   `json:"content"`
	TotalElements int64 `json:"totalElements"`
}

// SortDir 把 asc/desc 转成 SQL 方向，缺省升序
func SortDir(v string) string {
	if v == "desc" {
		return "DESC"
	}
	return "ASC"
}

// ClampLimit 页大小兜底
func ClampLimit(limit, fallback int) int {
	if limit <= 0 || limit > 100 {
		return fallback
	}
	return limit
}
