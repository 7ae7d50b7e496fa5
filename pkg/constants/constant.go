package constants

const (
	DataFormate = "2006-01-02 15:04:05"

	// 分页默认值
	DefaultPageNum  = 1
	DefaultPageSize = 10
	MaxPageSize     = 100

	// 排序默认值
	DefaultSortField = "created_at"
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
)

// 点赞目标类型
const (
	LikeTargetVideo   = "video"
	LikeTargetComment = "comment"
	LikeTargetTweet   = "tweet"
)
