package model

type Video struct {
	VideoId     int64  `json:"video_id" gorm:"primaryKey"`
	UserId      int64  `json:"user_id" gorm:"index"`
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoUrl    string `json:"video_url"`
	CoverUrl    string `json:"cover_url"`
	Duration    int64  `json:"duration"`
	VisitCount  int64  `json:"visit_count"`
	IsPublished bool   `json:"is_published"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	DeletedAt   string `json:"deleted_at"`
}

// VideoInfo 视频投影, owner为单条内嵌的公开投影而不是数组
type VideoInfo struct {
	VideoId     int64     `json:"video_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	VideoUrl    string    `json:"video_url"`
	CoverUrl    string    `json:"cover_url"`
	Duration    int64     `json:"duration"`
	VisitCount  int64     `json:"visit_count"`
	CreatedAt   string    `json:"created_at"`
	Owner       *UserInfo `json:"owner"`
}

// Info 组装视频与其作者的公开投影
func (v *Video) Info(owner *UserInfo) *VideoInfo {
	return &VideoInfo{
		VideoId:     v.VideoId,
		Title:       v.Title,
		Description: v.Description,
		VideoUrl:    v.VideoUrl,
		CoverUrl:    v.CoverUrl,
		Duration:    v.Duration,
		VisitCount:  v.VisitCount,
		CreatedAt:   v.CreatedAt,
		Owner:       owner,
	}
}
