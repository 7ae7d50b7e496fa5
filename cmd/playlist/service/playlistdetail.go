package service

import (
	"context"

	"vidtube.com/cmd/model"
	"vidtube.com/cmd/playlist/dal/db"
	userdb "vidtube.com/cmd/user/dal/db"
	"vidtube.com/pkg/errno"
)

// PlaylistDetail 歌单视图: 视频序列按加入顺序展开为带作者投影的完整记录,
// 歌单所有者同样只出现公开投影
type PlaylistDetail struct {
	PlaylistId  int64              `json:"playlist_id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	CreatedAt   string             `json:"created_at"`
	Owner       *model.UserInfo    `json:"owner"`
	Videos      []*model.VideoInfo `json:"videos"`
}

type PlaylistDetailService struct {
	ctx  context.Context
	repo PlaylistRepo
}

func NewPlaylistDetailService(ctx context.Context) *PlaylistDetailService {
	return &PlaylistDetailService{ctx: ctx, repo: dbRepo{}}
}

func (service *PlaylistDetailService) PlaylistDetail(playlistId int64) (*PlaylistDetail, error) {
	playlist, err := service.repo.GetPlaylist(service.ctx, playlistId)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return nil, errno.RecordNotFoundErr.WithMessage("playlist not found")
		}
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	return service.compose(playlist)
}

// UserPlaylists 用户的全部歌单, 没有任何歌单时返回NotFound
func (service *PlaylistDetailService) UserPlaylists(userId int64) ([]*PlaylistDetail, error) {
	exist, err := service.repo.IsUserExist(service.ctx, userId)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	if !exist {
		return nil, errno.RecordNotFoundErr.WithMessage("user not found")
	}

	playlists, err := service.repo.GetPlaylistsByOwner(service.ctx, userId)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	if len(playlists) == 0 {
		return nil, errno.RecordNotFoundErr.WithMessage("no playlists found for this user")
	}

	details := make([]*PlaylistDetail, 0, len(playlists))
	for _, p := range playlists {
		detail, err := service.compose(p)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return details, nil
}

func (service *PlaylistDetailService) compose(playlist *model.Playlist) (*PlaylistDetail, error) {
	// 所有者已删除时投影为空, 其他存储错误整体失败而不是返回部分视图
	var ownerInfo *model.UserInfo
	u, err := service.repo.GetUser(service.ctx, playlist.UserId)
	if err != nil && !userdb.IsRecordNotFound(err) {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	if err == nil {
		ownerInfo = u.Info()
	}

	videoIds, err := service.repo.GetPlaylistVideoIds(service.ctx, playlist.PlaylistId)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}

	videos := []*model.VideoInfo{}
	if len(videoIds) > 0 {
		rows, err := service.repo.GetVideosByIds(service.ctx, videoIds)
		if err != nil {
			return nil, errno.MysqlErr.WithMessage(err.Error())
		}
		videoById := make(map[int64]*model.Video, len(rows))
		authorIds := make([]int64, 0, len(rows))
		for _, v := range rows {
			videoById[v.VideoId] = v
			authorIds = append(authorIds, v.UserId)
		}
		authors, err := service.repo.GetUsersByIds(service.ctx, authorIds)
		if err != nil {
			return nil, errno.MysqlErr.WithMessage(err.Error())
		}
		authorById := make(map[int64]*model.User, len(authors))
		for _, u := range authors {
			authorById[u.UserId] = u
		}
		for _, id := range videoIds {
			video, ok := videoById[id]
			if !ok {
				continue
			}
			var authorInfo *model.UserInfo
			if u, ok := authorById[video.UserId]; ok {
				authorInfo = u.Info()
			}
			videos = append(videos, video.Info(authorInfo))
		}
	}

	return &PlaylistDetail{
		PlaylistId:  playlist.PlaylistId,
		Name:        playlist.Name,
		Description: playlist.Description,
		CreatedAt:   playlist.CreatedAt,
		Owner:       ownerInfo,
		Videos:      videos,
	}, nil
}
