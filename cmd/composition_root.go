package cmd

import (
	"fmt"
	"log/slog"

	"officeorder/internal/adapters/out/postgres"
	"officeorder/internal/adapters/out/registry"
	"officeorder/internal/core/application/usecases/commands"
	"officeorder/internal/core/application/usecases/queries"
	"officeorder/internal/core/domain/services"
	"officeorder/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	gateway    ports.RegistryGateway
	validator  services.ValidationEngine
	logger     *slog.Logger
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	envelope, err := registry.NewEnvelope(configs.EnvelopeSecret)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to create envelope: %w", err)
	}

	client, err := registry.NewClient(nil, configs.RegistryBaseURL, envelope, logger)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to create registry client: %w", err)
	}

	gateway, err := registry.NewGateway(client, configs.RouteToken, logger)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to create registry gateway: %w", err)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		gateway:    gateway,
		validator:  services.NewValidationEngine(),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) sessionUoWFactory() commands.SessionUoWFactory {
	return FuncSessionUoWFactory(func() commands.SessionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateOpenSessionCommandHandler() commands.OpenSessionCommandHandler {
	return commands.NewOpenSessionCommandHandler(c.sessionUoWFactory(), c.gateway)
}

func (c *CompositionRoot) CreateApplyEditCommandHandler() commands.ApplyEditCommandHandler {
	return commands.NewApplyEditCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateSaveDraftCommandHandler() commands.SaveDraftCommandHandler {
	return commands.NewSaveDraftCommandHandler(c.sessionUoWFactory(), c.gateway, c.validator)
}

func (c *CompositionRoot) CreateSubmitOrderCommandHandler() commands.SubmitOrderCommandHandler {
	return commands.NewSubmitOrderCommandHandler(c.sessionUoWFactory(), c.gateway, c.validator)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.sessionUoWFactory(), c.gateway)
}

func (c *CompositionRoot) CreateSwitchTemplateCommandHandler() commands.SwitchTemplateCommandHandler {
	return commands.NewSwitchTemplateCommandHandler(
		c.sessionUoWFactory(),
		c.gateway,
		c.CreateOpenSessionCommandHandler(),
	)
}

func (c *CompositionRoot) CreateRequestPreviewCommandHandler() commands.RequestPreviewCommandHandler {
	return commands.NewRequestPreviewCommandHandler(c.sessionUoWFactory(), c.gateway, c.validator)
}

func (c *CompositionRoot) CreateClosePreviewCommandHandler() commands.ClosePreviewCommandHandler {
	return commands.NewClosePreviewCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateExpireSessionsCommandHandler() commands.ExpireSessionsCommandHandler {
	return commands.NewExpireSessionsCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateGetSessionStateQueryHandler() queries.GetSessionStateQueryHandler {
	return queries.NewGetSessionStateQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetEmployeeSessionsQueryHandler() queries.GetEmployeeSessionsQueryHandler {
	return queries.NewGetEmployeeSessionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCCRolesQueryHandler() *queries.GetCCRolesQueryHandler {
	return queries.NewGetCCRolesQueryHandler(c.gateway)
}

type FuncSessionUoWFactory func() commands.SessionUoW

func (f FuncSessionUoWFactory) Create() commands.SessionUoW {
	return f()
}
