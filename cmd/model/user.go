package model

type User struct {
	UserId    int64  `json:"user_id" gorm:"primaryKey"`
	UserName  string `json:"user_name" gorm:"uniqueIndex:uk_user_name;size:64"`
	Email     string `json:"email" gorm:"uniqueIndex:uk_user_email;size:128"`
	FullName  string `json:"full_name"`
	Password  string `json:"-"` // 外部凭证系统产出的不透明凭证, 原样存储
	AvatarUrl string `json:"avatar_url"`
	CoverUrl  string `json:"cover_url"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	DeletedAt string `json:"deleted_at"`
}

// UserInfo 用户公开投影, 任何视图中内嵌的作者/所有者都只使用这个形状
// 不携带邮箱/凭证/令牌字段
type UserInfo struct {
	UserId    int64  `json:"user_id"`
	UserName  string `json:"user_name"`
	FullName  string `json:"full_name"`
	AvatarUrl string `json:"avatar_url"`
}

// Info 返回用户的公开投影
func (u *User) Info() *UserInfo {
	return &UserInfo{
		UserId:    u.UserId,
		UserName:  u.UserName,
		FullName:  u.FullName,
		AvatarUrl: u.AvatarUrl,
	}
}

// WatchRecord 观看历史记录, 同一用户同一视频只保留一条, 重复观看更新观看时间
type WatchRecord struct {
	WatchRecordId int64  `json:"watch_record_id" gorm:"primaryKey"`
	UserId        int64  `json:"user_id" gorm:"uniqueIndex:uk_watch_pair"`
	VideoId       int64  `json:"video_id" gorm:"uniqueIndex:uk_watch_pair"`
	WatchTime     string `json:"watch_time"`
}
