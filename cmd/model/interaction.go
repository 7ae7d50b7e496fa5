package model

type Comment struct {
	CommentId int64  `json:"comment_id" gorm:"primaryKey"`
	UserId    int64  `json:"user_id" gorm:"index"`
	VideoId   int64  `json:"video_id" gorm:"index"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	DeletedAt string `json:"deleted_at"`
}

// Like 统一的点赞边, (user_id, target_type, target_id)组合唯一
// target_type取值见constants.LikeTargetVideo等
type Like struct {
	LikeId     int64  `json:"like_id" gorm:"primaryKey"`
	UserId     int64  `json:"user_id" gorm:"uniqueIndex:uk_like_pair"`
	TargetType string `json:"target_type" gorm:"uniqueIndex:uk_like_pair;size:16"`
	TargetId   int64  `json:"target_id" gorm:"uniqueIndex:uk_like_pair"`
	CreatedAt  string `json:"created_at"`
}
