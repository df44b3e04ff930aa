package providersim

import (
	"context"
	"errors"
	"fmt"

	"gigboard/internal/core/domain/model/job"
	"gigboard/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// jobDTO is the database representation of a simulated provider's job row.
type jobDTO struct {
	ID             string `gorm:"primaryKey"`
	Provider       string `gorm:"index"`
	PickupName     string
	Counterpart    string
	PickupAddress  string
	DropoffAddress string
	Notes          string
	PayoutUsd      float64
	DistanceMi     float64
	PickupEtaMin   int
	DropoffEtaMin  int
	Status         string `gorm:"index"`
	Taken          bool
}

// TableName overrides GORM's default naming to use "provider_jobs".
func (jobDTO) TableName() string {
	return "provider_jobs"
}

// toDomain converts a database row to a job aggregate.
func toDomain(dto jobDTO) (*job.Job, error) {
	provider, err := job.ParseProvider(dto.Provider)
	if err != nil {
		return nil, err
	}

	status, err := job.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return job.RestoreJob(
		dto.ID,
		provider,
		job.Details{
			PickupName:     dto.PickupName,
			Counterpart:    dto.Counterpart,
			PickupAddress:  dto.PickupAddress,
			DropoffAddress: dto.DropoffAddress,
			Notes:          dto.Notes,
		},
		dto.PayoutUsd,
		dto.DistanceMi,
		dto.PickupEtaMin,
		dto.DropoffEtaMin,
		status,
	)
}

// Store is the shared dataset behind every simulated provider client.
type Store struct {
	db *gorm.DB
}

// OpenInMemory opens a fresh in-memory sqlite database with the schema
// migrated. Every call returns an isolated database.
func OpenInMemory() (*Store, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset store: %w", err)
	}

	if err := db.AutoMigrate(&jobDTO{}); err != nil {
		return nil, fmt.Errorf("failed to migrate dataset schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Seed inserts the fixture jobs. Rows without an id get a generated one;
// rows without a status start available. Invalid rows fail the seed so a
// broken fixtures file is caught at startup rather than mid-session.
func (s *Store) Seed(ctx context.Context, fixtures Fixtures) error {
	for _, f := range fixtures.Jobs {
		dto := jobDTO{
			ID:             f.ID,
			Provider:       f.Provider,
			PickupName:     f.PickupName,
			Counterpart:    f.Counterpart,
			PickupAddress:  f.PickupAddress,
			DropoffAddress: f.DropoffAddress,
			Notes:          f.Notes,
			PayoutUsd:      f.PayoutUsd,
			DistanceMi:     f.DistanceMi,
			PickupEtaMin:   f.PickupEtaMin,
			DropoffEtaMin:  f.DropoffEtaMin,
			Status:         f.Status,
			Taken:          f.Taken,
		}
		if dto.ID == "" {
			dto.ID = uuid.NewString()
		}
		if dto.Status == "" {
			dto.Status = job.Available.String()
		}

		if _, err := toDomain(dto); err != nil {
			return fmt.Errorf("fixture job %s is invalid: %w", dto.ID, err)
		}

		if err := s.db.WithContext(ctx).Create(&dto).Error; err != nil {
			return fmt.Errorf("failed to seed job %s: %w", dto.ID, err)
		}
	}
	return nil
}

// listAvailable returns the provider's currently offered jobs.
func (s *Store) listAvailable(ctx context.Context, provider job.Provider) ([]jobDTO, error) {
	var rows []jobDTO
	err := s.db.WithContext(ctx).
		Where("provider = ? AND status = ?", provider.String(), job.Available.String()).
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// get fetches one row by id within a provider's namespace.
func (s *Store) get(ctx context.Context, provider job.Provider, jobID string) (jobDTO, error) {
	var row jobDTO
	err := s.db.WithContext(ctx).
		Where("id = ? AND provider = ?", jobID, provider.String()).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return jobDTO{}, errs.NewJobNotFoundError(jobID)
	}
	if err != nil {
		return jobDTO{}, err
	}
	return row, nil
}

// setStatus persists a status change for one row.
func (s *Store) setStatus(ctx context.Context, jobID string, status job.Status) error {
	return s.db.WithContext(ctx).
		Model(&jobDTO{}).
		Where("id = ?", jobID).
		Update("status", status.String()).Error
}
