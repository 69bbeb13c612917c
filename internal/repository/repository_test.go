package repository

import (
	"context"
	"testing"
	"time"

	"supplychainx/internal/apperror"
	"supplychainx/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

func int64p(v int64) *int64 { return &v }

func TestRawMaterialRepo_CriticalAndLinkedSuppliers(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	materials := NewRawMaterialRepository(db)
	suppliers := NewSupplierRepository(db)
	orders := NewSupplyOrderRepository(db)

	steel := &model.RawMaterial{Name: "Steel", Stock: int64p(10), StockMin: int64p(20), Unit: "kg"}
	wood := &model.RawMaterial{Name: "Wood", Stock: int64p(20), StockMin: int64p(20), Unit: "kg"}
	glue := &model.RawMaterial{Name: "Glue"}
	for _, m := range []*model.RawMaterial{steel, wood, glue} {
		require.NoError(t, materials.Create(ctx, m))
	}

	below, err := materials.ListBelowMinimum(ctx)
	require.NoError(t, err)
	require.Len(t, below, 1)
	assert.Equal(t, "Steel", below[0].Name)

	acme := &model.Supplier{Name: "Acme", Rating: decimal.NewFromInt(4), LeadTime: 3}
	globex := &model.Supplier{Name: "Globex", Rating: decimal.NewFromInt(3), LeadTime: 5}
	require.NoError(t, suppliers.Create(ctx, acme))
	require.NoError(t, suppliers.Create(ctx, globex))

	for _, s := range []*model.Supplier{acme, acme, globex} {
		require.NoError(t, orders.Create(ctx, &model.SupplyOrder{
			SupplierID: s.ID,
			OrderDate:  time.Now(),
			Status:     model.SupplyOrderPending,
			Materials:  []model.RawMaterial{*steel},
		}))
	}

	n, err := materials.CountLinkedSuppliers(ctx, steel.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n, "suppliers are counted once")

	n, err = materials.CountLinkedSuppliers(ctx, wood.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	found, err := materials.FindByIDs(ctx, []int64{wood.ID, steel.ID, 999})
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestRepo_NotFoundTranslation(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	_, err := NewProductRepository(db).FindByID(ctx, 42)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	assert.Equal(t, "product not found with id 42", err.Error())

	_, err = NewSupplyOrderRepository(db).FindByID(ctx, 1)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	_, err = NewUserRepository(db).FindByEmail(ctx, "nobody@example.com")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	d, err := NewDeliveryRepository(db).FindByOrderID(ctx, 5)
	assert.NoError(t, err)
	assert.Nil(t, d)
}

func TestSupplyOrderRepo_ReplaceMaterialsAndDelete(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	materials := NewRawMaterialRepository(db)
	orders := NewSupplyOrderRepository(db)

	a := &model.RawMaterial{Name: "A"}
	b := &model.RawMaterial{Name: "B"}
	require.NoError(t, materials.Create(ctx, a))
	require.NoError(t, materials.Create(ctx, b))
	acme := &model.Supplier{Name: "Acme", LeadTime: 2}
	require.NoError(t, NewSupplierRepository(db).Create(ctx, acme))

	o := &model.SupplyOrder{SupplierID: acme.ID, OrderDate: time.Now(), Status: model.SupplyOrderPending, Materials: []model.RawMaterial{*a}}
	require.NoError(t, orders.Create(ctx, o))

	o.Status = model.SupplyOrderInProgress
	o.Materials = []model.RawMaterial{*b}
	require.NoError(t, orders.Update(ctx, o))

	got, err := orders.FindByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SupplyOrderInProgress, got.Status)
	assert.Equal(t, []int64{b.ID}, got.MaterialIDs())

	inProgress, err := orders.ListByStatus(ctx, model.SupplyOrderInProgress)
	require.NoError(t, err)
	assert.Len(t, inProgress, 1)

	require.NoError(t, orders.Delete(ctx, o.ID))
	_, err = orders.FindByID(ctx, o.ID)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	n, err := materials.CountLinkedSuppliers(ctx, b.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestProductRepo_SearchAndBOM(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	products := NewProductRepository(db)
	boms := NewBillOfMaterialRepository(db)
	materials := NewRawMaterialRepository(db)
	prodOrders := NewProductionOrderRepository(db)

	chair := &model.Product{Name: "Office Chair", ProductionTime: 30, Cost: decimal.NewFromInt(40)}
	table := &model.Product{Name: "Table", ProductionTime: 60, Cost: decimal.NewFromInt(90)}
	require.NoError(t, products.Create(ctx, chair))
	require.NoError(t, products.Create(ctx, table))

	hits, err := products.SearchByName(ctx, "chair")
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, chair.ID, hits[0].ID)

	steel := &model.RawMaterial{Name: "Steel", Stock: int64p(10)}
	require.NoError(t, materials.Create(ctx, steel))
	require.NoError(t, boms.Create(ctx, &model.BillOfMaterial{ProductID: chair.ID, MaterialID: steel.ID, Quantity: 3}))

	lines, err := boms.ListByProduct(ctx, chair.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.NotNil(t, lines[0].Material)
	assert.Equal(t, "Steel", lines[0].Material.Name)

	n, err := boms.CountByMaterial(ctx, steel.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, prodOrders.Create(ctx, &model.ProductionOrder{ProductID: chair.ID, Quantity: 2, Status: model.ProductionPending}))
	count, err := prodOrders.CountByProduct(ctx, chair.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, products.Delete(ctx, table.ID))
	_, err = products.FindByID(ctx, table.ID)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestDeliveryRepo_UniqueOrder(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	deliveries := NewDeliveryRepository(db)

	require.NoError(t, deliveries.Create(ctx, &model.Delivery{OrderID: 7, Status: model.DeliveryPending, Cost: decimal.NewFromInt(10)}))
	err := deliveries.Create(ctx, &model.Delivery{OrderID: 7, Status: model.DeliveryPending, Cost: decimal.NewFromInt(10)})
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.KindConflict), "got %v", err)

	d, err := deliveries.FindByOrderID(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.True(t, decimal.NewFromInt(10).Equal(d.Cost))
}

func TestSupplierRepo_DeleteCascadesOrders(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	suppliers := NewSupplierRepository(db)
	orders := NewSupplyOrderRepository(db)
	materials := NewRawMaterialRepository(db)

	steel := &model.RawMaterial{Name: "Steel"}
	require.NoError(t, materials.Create(ctx, steel))
	acme := &model.Supplier{Name: "Acme Metals", LeadTime: 2}
	require.NoError(t, suppliers.Create(ctx, acme))
	require.NoError(t, orders.Create(ctx, &model.SupplyOrder{
		SupplierID: acme.ID, OrderDate: time.Now(), Status: model.SupplyOrderReceived,
		Materials: []model.RawMaterial{*steel},
	}))

	hits, err := suppliers.SearchByName(ctx, "METAL")
	require.NoError(t, err)
	assert.Len(t, hits, 1)

	require.NoError(t, suppliers.Delete(ctx, acme.ID))

	left, err := orders.ListBySupplier(ctx, acme.ID)
	require.NoError(t, err)
	assert.Empty(t, left)

	n, err := materials.CountLinkedSuppliers(ctx, steel.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}
