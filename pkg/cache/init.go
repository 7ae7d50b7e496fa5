package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"vidtube.com/config"
)

var counter *CounterCache

// Init 初始化redis连接, redis不可用时只降级不阻断启动
func Init() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logrus.Warnf("redis unavailable, counter cache disabled: %v", err)
		counter = NewCounterCache(nil)
		return
	}

	counter = NewCounterCache(client)
	logrus.Info("redis counter cache initialized")
}

// Counter 返回全局计数缓存, 未初始化时返回nil, 所有方法对nil安全
func Counter() *CounterCache {
	return counter
}
