package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"hotel-booking-backend/models"
)

var ErrInvalidRoomType = errors.New("room type price and total units must not be negative")

// RoomTypeService is the admin CRUD surface for inventory. The availability
// core only ever reads room types; all writes go through here.
type RoomTypeService struct {
	DB *gorm.DB
}

func NewRoomTypeService(db *gorm.DB) *RoomTypeService {
	return &RoomTypeService{DB: db}
}

func (s *RoomTypeService) Create(ctx context.Context, rt models.RoomType) (models.RoomType, error) {
	if rt.Price < 0 || rt.TotalUnits < 0 {
		return models.RoomType{}, ErrInvalidRoomType
	}
	if strings.TrimSpace(rt.Slug) == "" {
		rt.Slug = Slugify(rt.Name)
	}
	if err := s.DB.WithContext(ctx).Create(&rt).Error; err != nil {
		return models.RoomType{}, fmt.Errorf("create room type: %w", err)
	}
	return rt, nil
}

func (s *RoomTypeService) GetAll(ctx context.Context) ([]models.RoomType, error) {
	var roomTypes []models.RoomType
	err := s.DB.WithContext(ctx).Order("price ASC").Find(&roomTypes).Error
	if err != nil {
		return nil, fmt.Errorf("list room types: %w", err)
	}
	return roomTypes, nil
}

func (s *RoomTypeService) GetBySlug(ctx context.Context, slug string) (models.RoomType, error) {
	var rt models.RoomType
	err := s.DB.WithContext(ctx).Where("slug = ?", slug).First(&rt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RoomType{}, ErrRoomTypeNotFound
		}
		return models.RoomType{}, fmt.Errorf("load room type: %w", err)
	}
	return rt, nil
}

// UpdateRoomTypeInput uses pointers so the admin form can patch price,
// stock or capacity independently.
type UpdateRoomTypeInput struct {
	Name       *string `json:"name"`
	Category   *string `json:"category"`
	Price      *int64  `json:"price"`
	Capacity   *int    `json:"capacity"`
	TotalUnits *int    `json:"total_units"`
	Image      *string `json:"image"`
}

func (s *RoomTypeService) Update(ctx context.Context, id uint, in UpdateRoomTypeInput) (models.RoomType, error) {
	var rt models.RoomType
	if err := s.DB.WithContext(ctx).First(&rt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RoomType{}, ErrRoomTypeNotFound
		}
		return models.RoomType{}, fmt.Errorf("load room type: %w", err)
	}

	if in.Name != nil {
		rt.Name = *in.Name
	}
	if in.Category != nil {
		rt.Category = *in.Category
	}
	if in.Price != nil {
		rt.Price = *in.Price
	}
	if in.Capacity != nil {
		rt.Capacity = *in.Capacity
	}
	if in.TotalUnits != nil {
		rt.TotalUnits = *in.TotalUnits
	}
	if in.Image != nil {
		rt.Image = *in.Image
	}
	if rt.Price < 0 || rt.TotalUnits < 0 {
		return models.RoomType{}, ErrInvalidRoomType
	}

	if err := s.DB.WithContext(ctx).Save(&rt).Error; err != nil {
		return models.RoomType{}, fmt.Errorf("update room type: %w", err)
	}
	return rt, nil
}

func (s *RoomTypeService) Delete(ctx context.Context, id uint) error {
	res := s.DB.WithContext(ctx).Delete(&models.RoomType{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete room type: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRoomTypeNotFound
	}
	return nil
}

// Slugify lowercases a name and joins its words with dashes, the same form
// the booking URLs use (?room=deluxe-king).
func Slugify(name string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	return strings.Join(fields, "-")
}
