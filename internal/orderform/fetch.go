package orderform

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"autoservice/internal/models"
)

// Read-only accessors of the pipeline. Absence is reported as ok=false,
// never as an error; list fetches return possibly-empty slices ordered
// newest-first by primary key.

func (s *Service) company(ctx context.Context) (models.Company, bool, error) {
	var company models.Company
	err := s.db.WithContext(ctx).First(&company, models.CompanyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return company, false, nil
	}
	if err != nil {
		return company, false, err
	}
	return company, true, nil
}

func (s *Service) account(ctx context.Context, accountID uint) (models.Account, bool, error) {
	var account models.Account
	err := s.db.WithContext(ctx).First(&account, accountID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return account, false, nil
	}
	if err != nil {
		return account, false, err
	}
	return account, true, nil
}

// client resolves the account's client through its auto.
func (s *Service) client(ctx context.Context, accountID uint) (models.Client, bool, error) {
	var client models.Client
	err := s.db.WithContext(ctx).
		Table("t_account").
		Select("t_client.*").
		Joins("JOIN t_auto ON t_auto.id_auto = t_account.id_auto").
		Joins("JOIN t_client ON t_client.id_client = t_auto.id_client").
		Where("t_account.id_account = ?", accountID).
		Take(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return client, false, nil
	}
	if err != nil {
		return client, false, err
	}
	return client, true, nil
}

func (s *Service) auto(ctx context.Context, autoID uint) (models.Auto, bool, error) {
	var auto models.Auto
	err := s.db.WithContext(ctx).First(&auto, autoID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return auto, false, nil
	}
	if err != nil {
		return auto, false, err
	}
	return auto, true, nil
}

func (s *Service) works(ctx context.Context, accountID uint) ([]models.Work, error) {
	var works []models.Work
	err := s.db.WithContext(ctx).
		Where("id_account = ?", accountID).
		Order("id_work DESC").
		Find(&works).Error
	return works, err
}

func (s *Service) parts(ctx context.Context, works []models.Work) ([]models.Part, error) {
	if len(works) == 0 {
		return nil, nil
	}
	workIDs := make([]uint, 0, len(works))
	for _, w := range works {
		workIDs = append(workIDs, w.ID)
	}
	var parts []models.Part
	err := s.db.WithContext(ctx).
		Where("id_work IN ?", workIDs).
		Order("id_part DESC").
		Find(&parts).Error
	return parts, err
}
