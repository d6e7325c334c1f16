package cmd

import (
	"cakeshop/internal/adapters/out/postgres"
	"cakeshop/internal/core/application/usecases/commands"
	"cakeshop/internal/core/application/usecases/queries"
	"cakeshop/internal/core/domain/services"
	"cakeshop/internal/dashboards"

	"gorm.io/gorm"
)

// CompositionRoot wires the domain services, dashboards, and persistence
// adapters together. The pricing catalog, identity generator, and dashboards
// are shared singletons; unit of work instances are created per operation.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory

	catalog          *services.PricingCatalog
	identityGen      *services.IdentityGenerator
	cakeFactory      *services.CakeFactory
	publisher        *dashboards.Publisher
	salesDashboard   *dashboards.SalesDashboard
	managerDashboard *dashboards.ManagerDashboard
}

// NewCompositionRoot builds the object graph and subscribes the dashboards
// to the order placed publisher.
func NewCompositionRoot(_ Config, gormDB *gorm.DB) (*CompositionRoot, error) {
	catalog := services.NewPricingCatalog()
	identityGen := services.NewIdentityGenerator()

	cakeFactory, err := services.NewCakeFactory(catalog, identityGen)
	if err != nil {
		return nil, err
	}

	managerDashboard, err := dashboards.NewManagerDashboard(identityGen)
	if err != nil {
		return nil, err
	}

	salesDashboard := dashboards.NewSalesDashboard()

	publisher := dashboards.NewPublisher()
	publisher.Subscribe(salesDashboard)
	publisher.Subscribe(managerDashboard)

	return &CompositionRoot{
		gormDB:           gormDB,
		uowFactory:       postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:          catalog,
		identityGen:      identityGen,
		cakeFactory:      cakeFactory,
		publisher:        publisher,
		salesDashboard:   salesDashboard,
		managerDashboard: managerDashboard,
	}, nil
}

// SalesDashboard returns the shared sales dashboard.
func (c *CompositionRoot) SalesDashboard() *dashboards.SalesDashboard {
	return c.salesDashboard
}

// ManagerDashboard returns the shared manager dashboard.
func (c *CompositionRoot) ManagerDashboard() *dashboards.ManagerDashboard {
	return c.managerDashboard
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() (commands.PlaceOrderCommandHandler, error) {
	return commands.NewPlaceOrderCommandHandler(c.uowFactory, c.cakeFactory, c.publisher)
}

func (c *CompositionRoot) CreateSetBasePriceCommandHandler() (commands.SetBasePriceCommandHandler, error) {
	return commands.NewSetBasePriceCommandHandler(c.catalog)
}

func (c *CompositionRoot) CreateResetPricesCommandHandler() (commands.ResetPricesCommandHandler, error) {
	return commands.NewResetPricesCommandHandler(c.catalog)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSalesSummaryQueryHandler() queries.GetSalesSummaryQueryHandler {
	return queries.NewGetSalesSummaryQueryHandler(c.gormDB)
}
