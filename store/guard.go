package store

import (
	"fmt"

	"github.com/jinzhu/gorm"

	"github.com/guardhq/patrol-api/schema"
)

var (
	ErrGuardNotFound = fmt.Errorf("guard not found")
)

func (s *PatrolStore) GetGuard(id uint) (*schema.Guard, error) {
	var guard schema.Guard

	if err := s.ormDB.Where("id = ?", id).First(&guard).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrGuardNotFound
		}
		return nil, err
	}

	return &guard, nil
}

func (s *PatrolStore) GetGuardByUsername(username string) (*schema.Guard, error) {
	var guard schema.Guard

	if err := s.ormDB.Where("username = ?", username).First(&guard).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrGuardNotFound
		}
		return nil, err
	}

	return &guard, nil
}
