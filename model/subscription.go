package model

import "time"

// Subscription 用户订阅记录，由计费服务的回调写入
// 不存在有效记录时视为Free套餐
type Subscription struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	OwnerID   string    `gorm:"not null;uniqueIndex" json:"owner_id"`
	PlanName  string    `gorm:"not null" json:"plan_name"`

	// 当前计费周期的截止时间，过期即回落到Free
	CurrentPeriodEnd time.Time `gorm:"not null" json:"current_period_end"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

func (s *Subscription) Active(now time.Time) bool {
	return s != nil && now.Before(s.CurrentPeriodEnd)
}
