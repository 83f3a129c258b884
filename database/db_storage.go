package database

import (
	"context"
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/programmingwithjerry/AirBnB-clone-v4/models"
)

// DBStorage persists records in PostgreSQL through gorm. Relations are
// enforced by foreign keys declared with ON DELETE CASCADE.
type DBStorage struct {
	db *gorm.DB
}

// NewDBStorage connects to the database described by cfg.
func NewDBStorage(ctx context.Context, cfg *Config) (*DBStorage, error) {
	return ConnectDB(ctx, cfg.DSN())
}

// ConnectDB connects to a PostgreSQL DSN and verifies the connection.
func ConnectDB(ctx context.Context, dsn string) (*DBStorage, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Info("connected to database")
	return &DBStorage{db: db}, nil
}

// Migrate creates or updates the schema of every entity table.
func (s *DBStorage) Migrate(ctx context.Context) error {
	err := s.db.WithContext(ctx).AutoMigrate(
		&models.State{},
		&models.City{},
		&models.User{},
		&models.Place{},
		&models.Review{},
		&models.Amenity{},
		&models.PlaceAmenity{},
	)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

func (s *DBStorage) Open(ctx context.Context) (Session, error) {
	return &dbSession{db: s.db.WithContext(ctx)}, nil
}

func (s *DBStorage) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// dbSession reads outside a transaction until the first write, which begins
// one. Save commits it and Close rolls back whatever is left.
type dbSession struct {
	db *gorm.DB
	tx *gorm.DB
}

func (s *dbSession) conn() *gorm.DB {
	if s.tx != nil {
		return s.tx
	}
	return s.db
}

func (s *dbSession) writer() (*gorm.DB, error) {
	if s.tx == nil {
		tx := s.db.Begin()
		if tx.Error != nil {
			return nil, tx.Error
		}
		s.tx = tx
	}
	return s.tx, nil
}

func (s *dbSession) New(obj models.Model) error {
	w, err := s.writer()
	if err != nil {
		return err
	}
	obj.Base().Touch()
	return w.Omit(clause.Associations).Create(obj).Error
}

func (s *dbSession) Update(obj models.Model) error {
	w, err := s.writer()
	if err != nil {
		return err
	}
	obj.Base().Touch()
	res := w.Model(obj).Select("*").Omit(clause.Associations).Updates(obj)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *dbSession) Get(kind models.Kind, id string) (models.Model, error) {
	obj := models.New(kind)
	if obj == nil {
		return nil, ErrNotFound
	}
	err := s.conn().First(obj, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return obj, nil
}

func findAll[T any, PT interface {
	*T
	models.Model
}](db *gorm.DB) ([]models.Model, error) {
	var rows []T
	if err := db.Order("created_at, id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]models.Model, len(rows))
	for i := range rows {
		out[i] = PT(&rows[i])
	}
	return out, nil
}

func (s *dbSession) All(kind models.Kind) ([]models.Model, error) {
	db := s.conn()
	switch kind {
	case models.KindAmenity:
		return findAll[models.Amenity](db)
	case models.KindCity:
		return findAll[models.City](db)
	case models.KindPlace:
		return findAll[models.Place](db)
	case models.KindReview:
		return findAll[models.Review](db)
	case models.KindState:
		return findAll[models.State](db)
	case models.KindUser:
		return findAll[models.User](db)
	}
	return nil, nil
}

func (s *dbSession) Count(kind models.Kind) (int64, error) {
	if kind == "" {
		var total int64
		for _, k := range models.Kinds {
			n, err := s.Count(k)
			if err != nil {
				return 0, err
			}
			total += n
		}
		return total, nil
	}

	obj := models.New(kind)
	if obj == nil {
		return 0, nil
	}
	var n int64
	if err := s.conn().Model(obj).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (s *dbSession) Delete(obj models.Model) error {
	w, err := s.writer()
	if err != nil {
		return err
	}
	res := w.Delete(obj)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *dbSession) Save() error {
	if s.tx == nil {
		return nil
	}
	err := s.tx.Commit().Error
	s.tx = nil
	return err
}

func (s *dbSession) Close() error {
	if s.tx == nil {
		return nil
	}
	err := s.tx.Rollback().Error
	s.tx = nil
	return err
}

func (s *dbSession) CityIDs(stateID string) ([]string, error) {
	var ids []string
	err := s.conn().Model(&models.City{}).Where("state_id = ?", stateID).
		Order("created_at, id").Pluck("id", &ids).Error
	return ids, err
}

func (s *dbSession) PlaceIDs(cityID string) ([]string, error) {
	var ids []string
	err := s.conn().Model(&models.Place{}).Where("city_id = ?", cityID).
		Order("created_at, id").Pluck("id", &ids).Error
	return ids, err
}

func (s *dbSession) ReviewIDs(placeID string) ([]string, error) {
	var ids []string
	err := s.conn().Model(&models.Review{}).Where("place_id = ?", placeID).
		Order("created_at, id").Pluck("id", &ids).Error
	return ids, err
}

func (s *dbSession) AmenityIDs(placeID string) ([]string, error) {
	var ids []string
	err := s.conn().Model(&models.PlaceAmenity{}).Where("place_id = ?", placeID).
		Order("amenity_id").Pluck("amenity_id", &ids).Error
	return ids, err
}

func (s *dbSession) LinkAmenity(placeID, amenityID string) (bool, error) {
	w, err := s.writer()
	if err != nil {
		return false, err
	}
	res := w.Clauses(clause.OnConflict{DoNothing: true}).
		Omit(clause.Associations).
		Create(&models.PlaceAmenity{PlaceID: placeID, AmenityID: amenityID})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (s *dbSession) UnlinkAmenity(placeID, amenityID string) error {
	w, err := s.writer()
	if err != nil {
		return err
	}
	res := w.Where("place_id = ? AND amenity_id = ?", placeID, amenityID).
		Delete(&models.PlaceAmenity{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
