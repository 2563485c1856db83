package dao

import (
	"docuchat-backend/model"
	"errors"

	"gorm.io/gorm"
)

func GetSubscriptionByOwnerID(ownerID string) (*model.Subscription, error) {
	var subscription model.Subscription
	if err := DB.Where("owner_id = ?", ownerID).
		First(&subscription).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subscription, nil
}
