package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-box-keeper/internal/logger"
	"github.com/MKhiriev/go-box-keeper/internal/store"
	"github.com/MKhiriev/go-box-keeper/models"
)

type boxService struct {
	boxRepository store.BoxRepository
	idGenerator   IDGenerator

	logger *logger.Logger
}

// NewBoxService constructs a BoxService. Input is not validated here; wrap
// the result with NewBoxValidationService.
func NewBoxService(boxRepository store.BoxRepository, idGenerator IDGenerator, logger *logger.Logger) BoxService {
	return &boxService{
		boxRepository: boxRepository,
		idGenerator:   idGenerator,
		logger:        logger,
	}
}

// Resolve finds a box by id or, when only a name is given, the earliest
// created box with that name.
func (s *boxService) Resolve(ctx context.Context, key models.BoxKey) (models.Box, error) {
	log := logger.FromContext(ctx)

	var (
		box models.Box
		err error
	)
	switch {
	case key.ID != "" && key.Name != "", key.ID == "" && key.Name == "":
		return models.Box{}, ErrBoxKeyAmbiguous
	case key.ID != "":
		box, err = s.boxRepository.FindBoxByID(ctx, key.ID)
	default:
		box, err = s.boxRepository.FindFirstBoxByName(ctx, key.Name)
	}

	if errors.Is(err, store.ErrBoxNotFound) {
		log.Warn().Str("func", "*boxService.Resolve").Str("box", key.String()).Msg("box not found")
		return models.Box{}, fmt.Errorf("%w: %s", ErrBoxNotFound, key)
	}
	if err != nil {
		log.Err(err).Str("func", "*boxService.Resolve").Str("box", key.String()).Msg("box lookup ended with error")
		return models.Box{}, fmt.Errorf("box lookup ended with error: %w", err)
	}

	return box, nil
}

// Create persists a new box with every slot free.
func (s *boxService) Create(ctx context.Context, box models.Box) (models.Box, error) {
	log := logger.FromContext(ctx)

	box.BoxID = s.idGenerator.Generate()
	box.Slots = models.NewSlots(box.Size)

	created, err := s.boxRepository.CreateBox(ctx, box)
	if err != nil {
		log.Err(err).Str("func", "*boxService.Create").Str("name", box.Name).Msg("box creation ended with error")
		return models.Box{}, fmt.Errorf("box creation ended with error: %w", err)
	}

	return created, nil
}
