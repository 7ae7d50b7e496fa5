package model

// Subscription 订阅边, (subscriber_id, channel_id)组合唯一
// 不允许订阅自己, 由service层校验
type Subscription struct {
	SubscriptionId int64  `json:"subscription_id" gorm:"primaryKey"`
	SubscriberId   int64  `json:"subscriber_id" gorm:"uniqueIndex:uk_sub_pair"`
	ChannelId      int64  `json:"channel_id" gorm:"uniqueIndex:uk_sub_pair"`
	CreatedAt      string `json:"created_at"`
}
