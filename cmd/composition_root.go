package cmd

import (
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	httpadapter "workorder/internal/adapters/in/http"
	"workorder/internal/adapters/out/memory"
	"workorder/internal/adapters/out/postgres"
	"workorder/internal/adapters/out/postgres/retailerrepo"
	"workorder/internal/adapters/out/postgres/workorderrepo"
	"workorder/internal/core/application/usecases/commands"
	"workorder/internal/core/application/usecases/queries"
	"workorder/internal/core/application/wizard"
	"workorder/internal/core/domain/model/workorder"
	"workorder/internal/core/ports"
	"workorder/internal/jobs"
)

// CompositionRoot wires the application for one of the two storage modes:
// gorm over PostgreSQL, or the in-memory store.
type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	store      *memory.Store
	uowFactory ports.UnitOfWorkFactory
	catalog    workorder.Catalog
}

// NewCompositionRoot wires the postgres-backed application.
func NewCompositionRoot(configs Config, gormDB *gorm.DB) (CompositionRoot, error) {
	catalog, err := workorder.NewCatalog(configs.ProductCatalog)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid product catalog: %w", err)
	}

	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		catalog:    catalog,
	}, nil
}

// NewMemoryCompositionRoot wires the application over the in-memory store,
// seeded with the sample retailers. Used when no database is configured.
func NewMemoryCompositionRoot(configs Config) (CompositionRoot, error) {
	catalog, err := workorder.NewCatalog(configs.ProductCatalog)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("invalid product catalog: %w", err)
	}

	store := memory.NewStore()
	retailers, err := memory.SampleRetailers()
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to build sample retailers: %w", err)
	}
	if err := store.Seed(retailers...); err != nil {
		return CompositionRoot{}, fmt.Errorf("failed to seed sample retailers: %w", err)
	}

	return CompositionRoot{
		configs:    configs,
		store:      store,
		uowFactory: memory.NewUnitOfWorkFactory(store),
		catalog:    catalog,
	}, nil
}

// MigrateDatabase creates or updates the relational schema. No-op in memory
// mode.
func (c *CompositionRoot) MigrateDatabase() error {
	if c.gormDB == nil {
		return nil
	}
	return c.gormDB.AutoMigrate(
		&workorderrepo.WorkOrderDTO{},
		&workorderrepo.LineItemDTO{},
		&retailerrepo.RetailerDTO{},
	)
}

func (c *CompositionRoot) CreateCreateWorkOrderCommandHandler() commands.CreateWorkOrderCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWorkOrderCommandHandler(f, c.catalog)
}

func (c *CompositionRoot) CreateUpdateWorkOrderCommandHandler() commands.UpdateWorkOrderCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateWorkOrderCommandHandler(f, c.catalog)
}

func (c *CompositionRoot) CreateCreateRetailerCommandHandler() commands.CreateRetailerCommandHandler {
	var f commands.RetailerUoWFactory = FuncRetailerUoWFactory(func() commands.RetailerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRetailerCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceWorkOrderCommandHandler() commands.AdvanceWorkOrderCommandHandler {
	var f commands.WorkOrderUoWFactory = FuncWorkOrderUoWFactory(func() commands.WorkOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceWorkOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateListWorkOrdersQueryHandler() httpadapter.WorkOrderLister {
	if c.gormDB != nil {
		return queries.NewListWorkOrdersQueryHandler(c.gormDB)
	}
	return memory.NewListWorkOrdersQueryHandler(c.store)
}

func (c *CompositionRoot) CreateSearchRetailersQueryHandler() httpadapter.RetailerSearcher {
	if c.gormDB != nil {
		return queries.NewSearchRetailersQueryHandler(c.gormDB)
	}
	return memory.NewSearchRetailersQueryHandler(c.store)
}

// CreateWizardManager builds the session manager handing each session its
// own wizard over the shared store.
func (c *CompositionRoot) CreateWizardManager() *wizard.Manager {
	createOrder := c.CreateCreateWorkOrderCommandHandler()
	updateOrder := c.CreateUpdateWorkOrderCommandHandler()
	createRetailer := c.CreateCreateRetailerCommandHandler()

	return wizard.NewManager(func() *wizard.Wizard {
		return wizard.NewWizard(createOrder, updateOrder, createRetailer, c.uowFactory, c.catalog)
	}, c.configs.SessionTTLOrDefault())
}

// CreateHTTPServer builds the echo-facing server around the given session
// manager.
func (c *CompositionRoot) CreateHTTPServer(sessions *wizard.Manager) *httpadapter.Server {
	return httpadapter.NewServer(
		c.configs.AccessPassword,
		[]byte(c.configs.JWTSecret),
		c.configs.SessionTTLOrDefault(),
		sessions,
		c.CreateAdvanceWorkOrderCommandHandler(),
		c.CreateListWorkOrdersQueryHandler(),
		c.CreateSearchRetailersQueryHandler(),
	)
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager(sessions *wizard.Manager, logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(sessions, logger)
}

type FuncWorkOrderUoWFactory func() commands.WorkOrderUoW

func (f FuncWorkOrderUoWFactory) Create() commands.WorkOrderUoW {
	return f()
}

type FuncRetailerUoWFactory func() commands.RetailerUoW

func (f FuncRetailerUoWFactory) Create() commands.RetailerUoW {
	return f()
}
