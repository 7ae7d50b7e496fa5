package service

import (
	"context"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/playlist/dal/db"
	userdb "vidtube.com/cmd/user/dal/db"
	videodb "vidtube.com/cmd/video/dal/db"
)

// PlaylistRepo 歌单实体与成员边的存储契约
type PlaylistRepo interface {
	IsUserExist(ctx context.Context, userId int64) (bool, error)
	IsVideoExist(ctx context.Context, videoId int64) (bool, error)

	CreatePlaylist(ctx context.Context, playlist *model.Playlist) error
	GetPlaylist(ctx context.Context, playlistId int64) (*model.Playlist, error)
	IsPlaylistNameExist(ctx context.Context, userId int64, name string) (bool, error)
	UpdatePlaylist(ctx context.Context, playlistId int64, updates map[string]interface{}) error
	DeletePlaylist(ctx context.Context, playlistId int64) error
	GetPlaylistsByOwner(ctx context.Context, userId int64) ([]*model.Playlist, error)

	AddPlaylistVideo(ctx context.Context, playlistId, videoId int64) (bool, error)
	RemovePlaylistVideo(ctx context.Context, playlistId, videoId int64) error
	GetPlaylistVideoIds(ctx context.Context, playlistId int64) ([]int64, error)

	GetVideosByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error)
	GetUsersByIds(ctx context.Context, userIds []int64) ([]*model.User, error)
	GetUser(ctx context.Context, userId int64) (*model.User, error)
}

type dbRepo struct{}

func (dbRepo) IsUserExist(ctx context.Context, userId int64) (bool, error) {
	return userdb.IsUserExist(ctx, userId)
}

func (dbRepo) IsVideoExist(ctx context.Context, videoId int64) (bool, error) {
	return videodb.IsVideoExist(ctx, videoId)
}

func (dbRepo) CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	return db.CreatePlaylist(ctx, playlist)
}

func (dbRepo) GetPlaylist(ctx context.Context, playlistId int64) (*model.Playlist, error) {
	return db.GetPlaylist(ctx, playlistId)
}

func (dbRepo) IsPlaylistNameExist(ctx context.Context, userId int64, name string) (bool, error) {
	return db.IsPlaylistNameExist(ctx, userId, name)
}

func (dbRepo) UpdatePlaylist(ctx context.Context, playlistId int64, updates map[string]interface{}) error {
	return db.UpdatePlaylist(ctx, playlistId, updates)
}

func (dbRepo) DeletePlaylist(ctx context.Context, playlistId int64) error {
	return db.DeletePlaylist(ctx, playlistId)
}

func (dbRepo) GetPlaylistsByOwner(ctx context.Context, userId int64) ([]*model.Playlist, error) {
	return db.GetPlaylistsByOwner(ctx, userId)
}

func (dbRepo) AddPlaylistVideo(ctx context.Context, playlistId, videoId int64) (bool, error) {
	return db.AddPlaylistVideo(ctx, playlistId, videoId)
}

func (dbRepo) RemovePlaylistVideo(ctx context.Context, playlistId, videoId int64) error {
	return db.RemovePlaylistVideo(ctx, playlistId, videoId)
}

func (dbRepo) GetPlaylistVideoIds(ctx context.Context, playlistId int64) ([]int64, error) {
	return db.GetPlaylistVideoIds(ctx, playlistId)
}

func (dbRepo) GetVideosByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error) {
	return videodb.GetVideosByIds(ctx, videoIds)
}

func (dbRepo) GetUsersByIds(ctx context.Context, userIds []int64) ([]*model.User, error) {
	return userdb.GetUsersByIds(ctx, userIds)
}

func (dbRepo) GetUser(ctx context.Context, userId int64) (*model.User, error) {
	return userdb.GetUser(ctx, userId)
}
