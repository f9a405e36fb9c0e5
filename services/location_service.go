package services

import (
	"context"

	"go.uber.org/zap"

	"anma.link/configs/configslog"
	"anma.link/models"
	"anma.link/repositories"
)

// LocationServiceError konum servis hataları.
type LocationServiceError string

func (e LocationServiceError) Error() string { return string(e) }

const (
	ErrLocationNameRequired    LocationServiceError = "konum adı zorunludur"
	ErrLocationNameTooLong     LocationServiceError = "konum adı en fazla 200 karakter olabilir"
	ErrLocationCountryRequired LocationServiceError = "ülke zorunludur"
	ErrLocationCountryTooLong  LocationServiceError = "ülke en fazla 100 karakter olabilir"
	ErrLocationCityTooLong     LocationServiceError = "şehir en fazla 100 karakter olabilir"
)

// LocationInput konum oluşturma girdisidir.
type LocationInput struct {
	Name    string
	City    string
	Country string
}

// ILocationService konum referans verisi için arayüz.
type ILocationService interface {
	ListLocations(ctx context.Context) ([]models.Location, error)
	CreateLocation(ctx context.Context, input LocationInput) (*models.Location, error)
}

// LocationService ILocationService arayüzünü uygular.
type LocationService struct {
	locationRepo repositories.ILocationRepository
}

// NewLocationService yeni bir LocationService örneği oluşturur.
func NewLocationService(locationRepo repositories.ILocationRepository) ILocationService {
	return &LocationService{locationRepo: locationRepo}
}

// ValidateLocationInput temel alan validasyonlarını yapar.
func ValidateLocationInput(input LocationInput) error {
	if input.Name == "" {
		return ErrLocationNameRequired
	}
	if len(input.Name) > 200 {
		return ErrLocationNameTooLong
	}
	if input.Country == "" {
		return ErrLocationCountryRequired
	}
	if len(input.Country) > 100 {
		return ErrLocationCountryTooLong
	}
	if len(input.City) > 100 {
		return ErrLocationCityTooLong
	}
	return nil
}

func (s *LocationService) ListLocations(ctx context.Context) ([]models.Location, error) {
	return s.locationRepo.FindAllOrdered(ctx)
}

func (s *LocationService) CreateLocation(ctx context.Context, input LocationInput) (*models.Location, error) {
	if err := ValidateLocationInput(input); err != nil {
		return nil, err
	}

	location := &models.Location{Name: input.Name, City: input.City, Country: input.Country}
	if err := s.locationRepo.Create(ctx, location); err != nil {
		configslog.Log.Error("CreateLocation: DB hatası", zap.String("name", input.Name), zap.Error(err))
		return nil, err
	}
	return location, nil
}

var _ ILocationService = (*LocationService)(nil)
