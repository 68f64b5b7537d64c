package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	postgres_adapter "verduleria/internal/adapters/out/postgres"
	"verduleria/internal/adapters/out/postgres/customerrepo"
	"verduleria/internal/adapters/out/postgres/noterepo"
	"verduleria/internal/adapters/out/postgres/orderrepo"
	"verduleria/internal/adapters/out/postgres/productrepo"
	"verduleria/internal/core/domain/model/customer"
	"verduleria/internal/core/domain/model/kernel"
	"verduleria/internal/core/domain/model/note"
	"verduleria/internal/core/domain/model/order"
	"verduleria/internal/core/domain/model/product"
	"verduleria/internal/core/ports"
	"verduleria/internal/pkg/errs"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work and all four
// repositories against a real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	// Connect through lib/pq so driver errors carry pq error codes,
	// matching the production wiring.
	sqlDB, err := sql.Open("postgres", dsn)
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&noterepo.DeliveryNoteDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	for _, table := range []string{"delivery_notes", "order_lines", "orders", "products", "customers"} {
		err := suite.db.Exec("TRUNCATE TABLE " + table + " CASCADE").Error
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newCustomer() *customer.Customer {
	c, err := customer.NewCustomer(kernel.NewUUID(),
		"Verduleria Don Jose", "11-4567-8901", "Av. Rivadavia 1234", "donjose@example.com", "20-12345678-9")
	suite.Require().NoError(err)
	return c
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrderWithLines(customerID kernel.UUID) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), customerID, time.Now().UTC(), decimal.Zero)
	suite.Require().NoError(err)

	line1, err := order.NewLine(kernel.NewUUID(), decimal.NewFromInt(3), decimal.RequireFromString("10.005"))
	suite.Require().NoError(err)
	line2, err := order.NewLine(kernel.NewUUID(), decimal.NewFromInt(1), decimal.RequireFromString("2.00"))
	suite.Require().NoError(err)
	suite.Require().NoError(o.ReplaceLines([]order.Line{line1, line2}))

	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitPersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	c := suite.newCustomer()
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, c))

	o := suite.newOrderWithLines(c.ID())
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	suite.Require().NoError(uow.Commit(ctx))

	check := suite.factory.Create()
	restored, err := check.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Len(restored.Lines(), 2)
	suite.True(restored.Total().Equal(decimal.RequireFromString("32.02")),
		"got total %s", restored.Total())
	suite.Equal(order.Pending, restored.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsAllWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	c := suite.newCustomer()
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, c))
	suite.Require().NoError(uow.Rollback(ctx))

	check := suite.factory.Create()
	exists, err := check.CustomerRepository().Exists(ctx, c.ID())
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUpdateRewritesOrderLines() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	c := suite.newCustomer()
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, c))
	o := suite.newOrderWithLines(c.ID())
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	line, err := order.NewLine(kernel.NewUUID(), decimal.NewFromInt(2), decimal.RequireFromString("5.00"))
	suite.Require().NoError(err)
	suite.Require().NoError(o.ReplaceLines([]order.Line{line}))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	restored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Len(restored.Lines(), 1)
	suite.True(restored.Total().Equal(decimal.RequireFromString("10.00")),
		"got total %s", restored.Total())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSecondNoteForSameOrderConflicts() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	c := suite.newCustomer()
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, c))
	o := suite.newOrderWithLines(c.ID())
	suite.Require().NoError(o.ChangeStatus(order.InPreparation))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	first, err := note.NewDeliveryNote(kernel.NewUUID(), 1, o.ID(), o.LinesTotal(), time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.DeliveryNoteRepository().Add(ctx, first))
	suite.Require().NoError(uow.Commit(ctx))

	second, err := note.NewDeliveryNote(kernel.NewUUID(), 2, o.ID(), o.LinesTotal(), time.Now().UTC())
	suite.Require().NoError(err)

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	err = uow.DeliveryNoteRepository().Add(ctx, second)
	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestGetByOrderIDAndReceiptUpdate() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	c := suite.newCustomer()
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, c))
	o := suite.newOrderWithLines(c.ID())
	suite.Require().NoError(o.ChangeStatus(order.InPreparation))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	n, err := note.NewDeliveryNote(kernel.NewUUID(), 7, o.ID(), o.LinesTotal(), time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(uow.DeliveryNoteRepository().Add(ctx, n))
	suite.Require().NoError(uow.Commit(ctx))

	n.ConfirmReceipt("Ana Lopez", "20-30123456-7", "left at gate")
	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.DeliveryNoteRepository().Update(ctx, n))
	suite.Require().NoError(uow.Commit(ctx))

	restored, err := suite.factory.Create().DeliveryNoteRepository().GetByOrderID(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(int64(7), restored.Number())
	suite.Equal("Ana Lopez", restored.ReceivedBy())
	suite.Equal("left at gate", restored.Remarks())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestDeleteOrderCascadesToLines() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	c := suite.newCustomer()
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, c))
	o := suite.newOrderWithLines(c.ID())
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Delete(ctx, o.ID()))
	suite.Require().NoError(uow.Commit(ctx))

	var lineCount int64
	err := suite.db.Table("order_lines").Where("order_id = ?", o.ID().Bytes()).Count(&lineCount).Error
	suite.Require().NoError(err)
	suite.Zero(lineCount)

	_, err = suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestProductRoundTrip() {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	p, err := product.NewProduct(kernel.NewUUID(), "Lechuga", "kg", decimal.RequireFromString("10.50"))
	suite.Require().NoError(err)
	suite.Require().NoError(uow.ProductRepository().Add(ctx, p))
	suite.Require().NoError(uow.Commit(ctx))

	restored, err := suite.factory.Create().ProductRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal("Lechuga", restored.Name())
	suite.True(restored.SalePrice().Equal(decimal.RequireFromString("10.50")))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
