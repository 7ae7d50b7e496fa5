package model

// Playlist 歌单, 名称在同一所有者下唯一
type Playlist struct {
	PlaylistId  int64  `json:"playlist_id" gorm:"primaryKey"`
	UserId      int64  `json:"user_id" gorm:"uniqueIndex:uk_playlist_name"`
	Name        string `json:"name" gorm:"uniqueIndex:uk_playlist_name;size:128"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	DeletedAt   string `json:"deleted_at"`
}

// PlaylistVideo 歌单成员边, (playlist_id, video_id)组合唯一, position保持加入顺序
type PlaylistVideo struct {
	PlaylistVideoId int64  `json:"playlist_video_id" gorm:"primaryKey"`
	PlaylistId      int64  `json:"playlist_id" gorm:"uniqueIndex:uk_playlist_video"`
	VideoId         int64  `json:"video_id" gorm:"uniqueIndex:uk_playlist_video"`
	Position        int64  `json:"position"`
	CreatedAt       string `json:"created_at"`
}
