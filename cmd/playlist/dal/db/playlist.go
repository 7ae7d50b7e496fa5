package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
)

func CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	if err := DB.WithContext(ctx).Create(playlist).Error; err != nil {
		return errors.Wrapf(err, "CreatePlaylist failed, user_id=%d", playlist.UserId)
	}
	return nil
}

func GetPlaylist(ctx context.Context, playlistId int64) (*model.Playlist, error) {
	playlist := &model.Playlist{}
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("playlist_id = ?", playlistId).First(playlist).Error; err != nil {
		return nil, err
	}
	return playlist, nil
}

// IsPlaylistNameExist 同一所有者下歌单名唯一
func IsPlaylistNameExist(ctx context.Context, userId int64, name string) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).
		Where("user_id = ? AND name = ?", userId, name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func UpdatePlaylist(ctx context.Context, playlistId int64, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now().Format(constants.DataFormate)
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("playlist_id = ?", playlistId).Updates(updates).Error; err != nil {
		return errors.Wrapf(err, "UpdatePlaylist failed, playlist_id=%d", playlistId)
	}
	return nil
}

// DeletePlaylist 连同成员边一起删除
func DeletePlaylist(ctx context.Context, playlistId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", playlistId).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return tx.Where("playlist_id = ?", playlistId).Delete(&model.Playlist{}).Error
	})
}

func GetPlaylistsByOwner(ctx context.Context, userId int64) ([]*model.Playlist, error) {
	var playlists []*model.Playlist
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("user_id = ?", userId).
		Order("created_at DESC, playlist_id DESC").Find(&playlists).Error; err != nil {
		return nil, err
	}
	return playlists, nil
}

// AddPlaylistVideo 加入歌单, 已存在时不重复插入, 返回本次是否新增
func AddPlaylistVideo(ctx context.Context, playlistId, videoId int64) (added bool, err error) {
	err = DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxPos *int64
		if err := tx.Model(&model.PlaylistVideo{}).Where("playlist_id = ?", playlistId).
			Select("MAX(position)").Scan(&maxPos).Error; err != nil {
			return err
		}
		position := int64(1)
		if maxPos != nil {
			position = *maxPos + 1
		}
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&model.PlaylistVideo{
			PlaylistVideoId: int64(uuid.New().ID()),
			PlaylistId:      playlistId,
			VideoId:         videoId,
			Position:        position,
			CreatedAt:       time.Now().Format(constants.DataFormate),
		})
		if res.Error != nil {
			return res.Error
		}
		added = res.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, errors.Wrapf(err, "AddPlaylistVideo failed, playlist_id=%d, video_id=%d", playlistId, videoId)
	}
	return added, nil
}

func RemovePlaylistVideo(ctx context.Context, playlistId, videoId int64) error {
	if err := DB.WithContext(ctx).Where("playlist_id = ? AND video_id = ?", playlistId, videoId).
		Delete(&model.PlaylistVideo{}).Error; err != nil {
		return errors.Wrapf(err, "RemovePlaylistVideo failed, playlist_id=%d, video_id=%d", playlistId, videoId)
	}
	return nil
}

// GetPlaylistVideoIds 歌单内视频, 按加入顺序
func GetPlaylistVideoIds(ctx context.Context, playlistId int64) ([]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).Where("playlist_id = ?", playlistId).
		Order("position ASC, playlist_video_id ASC").Select("video_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func IsRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
