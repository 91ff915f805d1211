package storage

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/disha-labs/disha-backend/internal/models"
)

// DatabaseStore persists sessions and the catalog in PostgreSQL.
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a store over an open gorm connection.
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

func (d *DatabaseStore) GetSession(phone string) (*models.Session, error) {
	var session models.Session
	err := d.db.Where("phone = ?", phone).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", phone, err)
	}
	return &session, nil
}

func (d *DatabaseStore) SaveSession(session *models.Session) error {
	err := d.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "phone"}},
		UpdateAll: true,
	}).Create(session).Error
	if err != nil {
		return fmt.Errorf("save session %s: %w", session.Phone, err)
	}
	return nil
}

func (d *DatabaseStore) DeleteSession(phone string) error {
	result := d.db.Where("phone = ?", phone).Delete(&models.Session{})
	if result.Error != nil {
		return fmt.Errorf("delete session %s: %w", phone, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func (d *DatabaseStore) ListSessions() ([]*models.Session, error) {
	var sessions []*models.Session
	if err := d.db.Order("phone").Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

func (d *DatabaseStore) SaveOpportunity(opp *models.Opportunity) error {
	err := d.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(opp).Error
	if err != nil {
		return fmt.Errorf("save opportunity %s: %w", opp.ID, err)
	}
	return nil
}

func (d *DatabaseStore) GetOpportunity(id string) (*models.Opportunity, error) {
	var opp models.Opportunity
	err := d.db.First(&opp, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOpportunityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load opportunity %s: %w", id, err)
	}
	return &opp, nil
}

func (d *DatabaseStore) ListOpportunities() ([]*models.Opportunity, error) {
	var opps []*models.Opportunity
	if err := d.db.Order("created_at").Find(&opps).Error; err != nil {
		return nil, fmt.Errorf("list opportunities: %w", err)
	}
	return opps, nil
}

func (d *DatabaseStore) DeleteOpportunity(id string) error {
	result := d.db.Delete(&models.Opportunity{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete opportunity %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrOpportunityNotFound
	}
	return nil
}
