package service

import (
	"context"
	"strings"
	"time"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/playlist/dal/db"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/owner"
	"vidtube.com/pkg/utils"
)

type PlaylistService struct {
	ctx  context.Context
	repo PlaylistRepo
}

func NewPlaylistService(ctx context.Context) *PlaylistService {
	return &PlaylistService{ctx: ctx, repo: dbRepo{}}
}

// CreatePlaylist 歌单名在同一所有者下唯一, 重名返回Conflict
func (service *PlaylistService) CreatePlaylist(principalId int64, name, description string) (*model.Playlist, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return nil, errno.RequestErr.WithMessage("name and description are required")
	}
	exist, err := service.repo.IsUserExist(service.ctx, principalId)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	if !exist {
		return nil, errno.RecordNotFoundErr.WithMessage("user not found")
	}

	taken, err := service.repo.IsPlaylistNameExist(service.ctx, principalId, name)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	if taken {
		return nil, errno.RecordAlreadyExistErr.WithMessage("playlist with this name already exists")
	}

	now := time.Now().Format(constants.DataFormate)
	playlist := &model.Playlist{
		PlaylistId:  utils.GenerateEntityID(),
		UserId:      principalId,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := service.repo.CreatePlaylist(service.ctx, playlist); err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	return playlist, nil
}

// loadPlaylist 区分记录不存在与存储故障
func (service *PlaylistService) loadPlaylist(playlistId int64) (*model.Playlist, error) {
	playlist, err := service.repo.GetPlaylist(service.ctx, playlistId)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return nil, errno.RecordNotFoundErr.WithMessage("playlist not found")
		}
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	return playlist, nil
}

func (service *PlaylistService) UpdatePlaylist(principalId, playlistId int64, name, description string) error {
	playlist, err := service.loadPlaylist(playlistId)
	if err != nil {
		return err
	}
	if err := owner.Assert(playlist.UserId, principalId); err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if strings.TrimSpace(name) != "" && name != playlist.Name {
		taken, err := service.repo.IsPlaylistNameExist(service.ctx, principalId, name)
		if err != nil {
			return errno.MysqlErr.WithMessage(err.Error())
		}
		if taken {
			return errno.RecordAlreadyExistErr.WithMessage("playlist with this name already exists")
		}
		updates["name"] = name
	}
	if strings.TrimSpace(description) != "" {
		updates["description"] = description
	}
	if len(updates) == 0 {
		return errno.RequestErr.WithMessage("nothing to update")
	}

	if err := service.repo.UpdatePlaylist(service.ctx, playlistId, updates); err != nil {
		return errno.MysqlErr.WithMessage(err.Error())
	}
	return nil
}

func (service *PlaylistService) DeletePlaylist(principalId, playlistId int64) error {
	playlist, err := service.loadPlaylist(playlistId)
	if err != nil {
		return err
	}
	if err := owner.Assert(playlist.UserId, principalId); err != nil {
		return err
	}
	if err := service.repo.DeletePlaylist(service.ctx, playlistId); err != nil {
		return errno.MysqlErr.WithMessage(err.Error())
	}
	return nil
}

// AddVideo 只有歌单所有者可以添加; 重复添加不产生第二条边, 返回Conflict
func (service *PlaylistService) AddVideo(principalId, playlistId, videoId int64) error {
	playlist, err := service.loadPlaylist(playlistId)
	if err != nil {
		return err
	}
	if err := owner.Assert(playlist.UserId, principalId); err != nil {
		return err
	}
	exist, err := service.repo.IsVideoExist(service.ctx, videoId)
	if err != nil {
		return errno.MysqlErr.WithMessage(err.Error())
	}
	if !exist {
		return errno.RecordNotFoundErr.WithMessage("video not found")
	}

	added, err := service.repo.AddPlaylistVideo(service.ctx, playlistId, videoId)
	if err != nil {
		return errno.MysqlErr.WithMessage(err.Error())
	}
	if !added {
		return errno.RecordAlreadyExistErr.WithMessage("video already in playlist")
	}
	return nil
}

func (service *PlaylistService) RemoveVideo(principalId, playlistId, videoId int64) error {
	playlist, err := service.loadPlaylist(playlistId)
	if err != nil {
		return err
	}
	if err := owner.Assert(playlist.UserId, principalId); err != nil {
		return err
	}
	if err := service.repo.RemovePlaylistVideo(service.ctx, playlistId, videoId); err != nil {
		return errno.MysqlErr.WithMessage(err.Error())
	}
	return nil
}
