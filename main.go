package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	interactiondal "vidtube.com/cmd/interaction/dal"
	playlistdal "vidtube.com/cmd/playlist/dal"
	relationdal "vidtube.com/cmd/relation/dal"
	tweetdal "vidtube.com/cmd/tweet/dal"
	userdal "vidtube.com/cmd/user/dal"
	videodal "vidtube.com/cmd/video/dal"
	"vidtube.com/config"
	"vidtube.com/pkg/cache"
	"vidtube.com/pkg/utils"
)

func Init() {
	config.Init()

	if err := utils.InitSnowflake(
		config.ConfigInfo.Snowflake.WorkerId,
		config.ConfigInfo.Snowflake.DatacenterId,
	); err != nil {
		logrus.Fatalf("snowflake init failed: %v", err)
	}

	userdal.Init()
	videodal.Init()
	interactiondal.Init()
	relationdal.Init()
	playlistdal.Init()
	tweetdal.Init()

	cache.Init()
}

func main() {
	Init()
	logrus.Info("vidtube core initialized, waiting for transport layer")

	// 传输层由外部协作方提供, 这里只保持进程存活
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("vidtube core shutting down")
}
