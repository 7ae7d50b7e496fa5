package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"vidtube.com/cmd/interaction/dal/db"
	"vidtube.com/cmd/model"
	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/owner"
	"vidtube.com/pkg/pagination"
	"vidtube.com/pkg/utils"
)

// 评论长度上限, 按rune计数
const MaxCommentLength = 500

// CommentInfo 评论视图行, 内嵌作者公开投影
type CommentInfo struct {
	CommentId int64           `json:"comment_id"`
	VideoId   int64           `json:"video_id"`
	Content   string          `json:"content"`
	CreatedAt string          `json:"created_at"`
	Author    *model.UserInfo `json:"author"`
}

type CommentService struct {
	ctx  context.Context
	repo CommentRepo
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx, repo: dbRepo{}}
}

func (service *CommentService) validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errno.RequestErr.WithMessage("comment content cannot be empty")
	}
	if utf8.RuneCountInString(content) > MaxCommentLength {
		return errno.RequestErr.WithMessage("comment too long, maximum 500 characters allowed")
	}
	return nil
}

func (service *CommentService) AddComment(principalId, videoId int64, content string) (*model.Comment, error) {
	if err := service.validateContent(content); err != nil {
		return nil, err
	}
	exist, err := service.repo.IsUserExist(service.ctx, principalId)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	if !exist {
		return nil, errno.RecordNotFoundErr.WithMessage("user not found")
	}
	exist, err = service.repo.IsVideoExist(service.ctx, videoId)
	if err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	if !exist {
		return nil, errno.RecordNotFoundErr.WithMessage("video not found")
	}

	now := time.Now().Format(constants.DataFormate)
	comment := &model.Comment{
		CommentId: utils.GenerateEntityID(),
		UserId:    principalId,
		VideoId:   videoId,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := service.repo.CreateComment(service.ctx, comment); err != nil {
		return nil, errno.MysqlErr.WithMessage(err.Error())
	}
	return comment, nil
}

// UpdateComment 修改前重新加载实体做归属校验
func (service *CommentService) UpdateComment(principalId, commentId int64, content string) error {
	if err := service.validateContent(content); err != nil {
		return err
	}
	comment, err := service.repo.GetComment(service.ctx, commentId)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return errno.RecordNotFoundErr.WithMessage("comment not found")
		}
		return errno.MysqlErr.WithMessage(err.Error())
	}
	if err := owner.Assert(comment.UserId, principalId); err != nil {
		return err
	}
	if err := service.repo.UpdateComment(service.ctx, commentId, content); err != nil {
		return errno.MysqlErr.WithMessage(err.Error())
	}
	return nil
}

func (service *CommentService) DeleteComment(principalId, commentId int64) error {
	comment, err := service.repo.GetComment(service.ctx, commentId)
	if err != nil {
		if db.IsRecordNotFound(err) {
			return errno.RecordNotFoundErr.WithMessage("comment not found")
		}
		return errno.MysqlErr.WithMessage(err.Error())
	}
	if err := owner.Assert(comment.UserId, principalId); err != nil {
		return err
	}
	if err := service.repo.DeleteComment(service.ctx, commentId); err != nil {
		return errno.MysqlErr.WithMessage(err.Error())
	}
	return nil
}

// VideoComments 视频评论列表, 分页, 内嵌作者公开投影
func (service *CommentService) VideoComments(videoId, pageNum, pageSize int64) ([]*CommentInfo, int64, error) {
	exist, err := service.repo.IsVideoExist(service.ctx, videoId)
	if err != nil {
		return nil, 0, errno.MysqlErr.WithMessage(err.Error())
	}
	if !exist {
		return nil, 0, errno.RecordNotFoundErr.WithMessage("video not found")
	}

	param := pagination.Normalize(pageNum, pageSize)
	comments, count, err := service.repo.GetVideoComments(service.ctx, videoId, param)
	if err != nil {
		return nil, 0, errno.MysqlErr.WithMessage(err.Error())
	}

	authorIds := make([]int64, 0, len(comments))
	for _, c := range comments {
		authorIds = append(authorIds, c.UserId)
	}
	authors, err := service.repo.GetUsersByIds(service.ctx, authorIds)
	if err != nil {
		return nil, 0, errno.MysqlErr.WithMessage(err.Error())
	}
	authorById := make(map[int64]*model.User, len(authors))
	for _, u := range authors {
		authorById[u.UserId] = u
	}

	infos := make([]*CommentInfo, 0, len(comments))
	for _, c := range comments {
		var authorInfo *model.UserInfo
		if author, ok := authorById[c.UserId]; ok {
			authorInfo = author.Info()
		}
		infos = append(infos, &CommentInfo{
			CommentId: c.CommentId,
			VideoId:   c.VideoId,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
			Author:    authorInfo,
		})
	}
	return infos, count, nil
}
