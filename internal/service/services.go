package service

import (
	"fmt"

	"github.com/MKhiriev/go-box-keeper/internal/config"
	"github.com/MKhiriev/go-box-keeper/internal/lock"
	"github.com/MKhiriev/go-box-keeper/internal/logger"
	"github.com/MKhiriev/go-box-keeper/internal/store"
	"github.com/MKhiriev/go-box-keeper/internal/utils"
	"github.com/MKhiriev/go-box-keeper/models"
)

type Services struct {
	AdminGateService    AdminGateService
	BoxService          BoxService
	SlotService         SlotService
	UserAccountService  UserAccountService
	AdminAccountService AdminAccountService
	AppInfoService      AppInfoService
}

// NewServices wires every service on top of the given storages. Account
// and box services are wrapped with input validation.
func NewServices(
	storages *store.Storages,
	locker lock.Locker,
	slotMetrics SlotMetrics,
	cfg *config.StructuredConfig,
	build models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	idGenerator := utils.NewUUIDGenerator()

	boxService := NewBoxValidationService().Wrap(
		NewBoxService(storages.BoxRepository, idGenerator, logger),
	)

	return &Services{
		AdminGateService: NewAdminGateService(storages.AdminRepository, logger),
		BoxService:       boxService,
		SlotService: NewSlotService(
			boxService,
			storages.BoxRepository,
			storages.UserRepository,
			locker,
			cfg.Lock,
			slotMetrics,
			logger,
		),
		UserAccountService: NewUserAccountValidationService().Wrap(
			NewUserAccountService(storages.UserRepository, idGenerator, logger),
		),
		AdminAccountService: NewAdminAccountValidationService().Wrap(
			NewAdminAccountService(storages.AdminRepository, idGenerator, logger),
		),
		AppInfoService: appInfoService,
	}, nil
}
