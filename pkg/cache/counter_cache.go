package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Redis key templates
const (
	// 订阅数缓存 Key: count:subscribers:{channel_id}
	SubscriberCountKeyTemplate = "count:subscribers:%d"

	// 点赞数缓存 Key: count:likes:{target_type}:{target_id}
	LikeCountKeyTemplate = "count:likes:%s:%d"
)

// CounterCache 聚合计数的旁路缓存, 计数的事实来源永远是数据库聚合
// client为nil时所有操作直接失效, 读路径退回SQL聚合
type CounterCache struct {
	client     redis.Cmdable
	defaultTTL time.Duration
}

func NewCounterCache(client redis.Cmdable) *CounterCache {
	return &CounterCache{
		client:     client,
		defaultTTL: 10 * time.Minute,
	}
}

func SubscriberCountKey(channelId int64) string {
	return fmt.Sprintf(SubscriberCountKeyTemplate, channelId)
}

func LikeCountKey(targetType string, targetId int64) string {
	return fmt.Sprintf(LikeCountKeyTemplate, targetType, targetId)
}

// GetCount 读取缓存计数, 未命中或redis不可用返回ok=false
func (c *CounterCache) GetCount(ctx context.Context, key string) (int64, bool) {
	if c == nil || c.client == nil {
		return 0, false
	}
	val, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return 0, false
	}
	if err != nil {
		logrus.Warnf("counter cache get failed, key=%s, err=%v", key, err)
		return 0, false
	}
	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return count, true
}

// SetCount 回填聚合结果, 失败只记日志不影响读路径
func (c *CounterCache) SetCount(ctx context.Context, key string, count int64) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Set(ctx, key, strconv.FormatInt(count, 10), c.defaultTTL).Err(); err != nil {
		logrus.Warnf("counter cache set failed, key=%s, err=%v", key, err)
	}
}

// Invalidate 切换边之后必须先失效再返回, 保证后续读重新聚合
func (c *CounterCache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logrus.Warnf("counter cache invalidate failed, keys=%v, err=%v", keys, err)
	}
}
