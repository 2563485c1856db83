package subscription

import (
	"docuchat-backend/config"
	"docuchat-backend/dao"
	"log/slog"
	"time"
)

// Resolver 根据订阅记录解析用户当前套餐
// 计费服务写入subscriptions表，这里只读；无有效订阅即Free
type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

func (r *Resolver) PlanFor(ownerID string) config.Plan {
	sub, err := dao.GetSubscriptionByOwnerID(ownerID)
	if err != nil {
		slog.Error("Failed to get subscription, falling back to free plan",
			"owner_id", ownerID,
			"err", err)
		return config.FreePlan()
	}

	if !sub.Active(time.Now()) {
		return config.FreePlan()
	}
	return config.PlanByName(sub.PlanName)
}
