package engine

import (
	"context"
	"math"
	"testing"

	"supplychainx/internal/apperror"
	"supplychainx/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── In-memory readers ────────────────────────────────────────────────────────

type stubProducts map[int64]*model.Product

func (s stubProducts) FindByID(_ context.Context, id int64) (*model.Product, error) {
	p, ok := s[id]
	if !ok {
		return nil, apperror.NotFound("product", id)
	}
	return p, nil
}

type stubBOMs map[int64][]model.BillOfMaterial

func (s stubBOMs) ListByProduct(_ context.Context, productID int64) ([]model.BillOfMaterial, error) {
	return s[productID], nil
}

func qty(v int64) *int64 { return &v }

func material(id int64, name string, stock, min *int64) model.RawMaterial {
	return model.RawMaterial{ID: id, Name: name, Stock: stock, StockMin: min}
}

// ── Stock ledger ─────────────────────────────────────────────────────────────

func TestIsCritical(t *testing.T) {
	cases := []struct {
		name     string
		m        model.RawMaterial
		critical bool
	}{
		{"below minimum", material(1, "steel", qty(10), qty(20)), true},
		{"equal is not critical", material(1, "steel", qty(20), qty(20)), false},
		{"above minimum", material(1, "steel", qty(21), qty(20)), false},
		{"missing stock", material(1, "steel", nil, qty(20)), false},
		{"missing threshold", material(1, "steel", qty(0), nil), false},
		{"zero threshold", material(1, "steel", qty(0), qty(0)), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.critical, IsCritical(tc.m))
		})
	}
}

func TestIsCritical_MatchesComparisonOverGrid(t *testing.T) {
	for stock := int64(0); stock <= 15; stock++ {
		for min := int64(0); min <= 15; min++ {
			m := material(1, "x", qty(stock), qty(min))
			assert.Equal(t, stock < min, IsCritical(m), "stock=%d min=%d", stock, min)
		}
	}
}

func TestListCritical_PreservesOrder(t *testing.T) {
	in := []model.RawMaterial{
		material(1, "a", qty(1), qty(5)),
		material(2, "b", qty(9), qty(5)),
		material(3, "c", qty(0), qty(1)),
		material(4, "d", nil, nil),
	}
	out := ListCritical(in)
	require.Len(t, out, 2)
	assert.Equal(t, int64(1), out[0].ID)
	assert.Equal(t, int64(3), out[1].ID)

	assert.Empty(t, ListCritical(nil))
}

// ── BOM explosion ────────────────────────────────────────────────────────────

func newTestEngine() *BOMEngine {
	steel := material(10, "steel", qty(10), qty(2))
	bolts := material(11, "bolts", qty(500), qty(100))
	products := stubProducts{
		1: {ID: 1, Name: "Chair", ProductionTime: 30, Cost: decimal.NewFromInt(40)},
		2: {ID: 2, Name: "Sticker", ProductionTime: 1, Cost: decimal.NewFromInt(1)},
	}
	boms := stubBOMs{
		1: {
			{ID: 100, ProductID: 1, MaterialID: 10, Quantity: 3, Material: &steel},
			{ID: 101, ProductID: 1, MaterialID: 11, Quantity: 8, Material: &bolts},
		},
	}
	return NewBOMEngine(products, boms)
}

func TestCheckAvailability_InsufficientLine(t *testing.T) {
	e := newTestEngine()

	report, err := e.CheckAvailability(context.Background(), 1, 4)
	require.NoError(t, err)

	assert.False(t, report.CanProduce)
	assert.Equal(t, "Chair", report.ProductName)
	assert.Equal(t, int64(4), report.RequestedQuantity)
	require.Len(t, report.MaterialsStatus, 2)
	assert.Equal(t, MaterialStatus{MaterialID: 10, MaterialName: "steel", RequiredQuantity: 12, AvailableStock: 10, IsAvailable: false}, report.MaterialsStatus[0])
	assert.True(t, report.MaterialsStatus[1].IsAvailable)
	assert.Equal(t, int64(32), report.MaterialsStatus[1].RequiredQuantity)
}

func TestCheckAvailability_AllSufficient(t *testing.T) {
	e := newTestEngine()

	report, err := e.CheckAvailability(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.True(t, report.CanProduce)
	assert.Empty(t, Shortages(report))
}

func TestCheckAvailability_CanProduceIffEveryLineCovered(t *testing.T) {
	e := newTestEngine()
	for q := int64(0); q <= 10; q++ {
		report, err := e.CheckAvailability(context.Background(), 1, q)
		require.NoError(t, err)
		expected := 10 >= 3*q && 500 >= 8*q
		assert.Equal(t, expected, report.CanProduce, "q=%d", q)
	}
}

func TestCheckAvailability_EmptyBOMAlwaysProducible(t *testing.T) {
	e := newTestEngine()
	for _, q := range []int64{0, 1, math.MaxInt64} {
		report, err := e.CheckAvailability(context.Background(), 2, q)
		require.NoError(t, err)
		assert.True(t, report.CanProduce)
		assert.Empty(t, report.MaterialsStatus)
	}
}

func TestCheckAvailability_Errors(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	_, err := e.CheckAvailability(ctx, 99, 1)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	_, err = e.CheckAvailability(ctx, 1, -1)
	assert.True(t, apperror.Is(err, apperror.KindInvalidQuantity))

	_, err = e.CheckAvailability(ctx, 1, math.MaxInt64/2)
	assert.True(t, apperror.Is(err, apperror.KindInvalidQuantity), "overflow must not wrap")
}

func TestCheckAvailability_DanglingMaterial(t *testing.T) {
	e := NewBOMEngine(
		stubProducts{1: {ID: 1, Name: "Chair"}},
		stubBOMs{1: {{ID: 1, ProductID: 1, MaterialID: 77, Quantity: 1}}},
	)
	_, err := e.CheckAvailability(context.Background(), 1, 1)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestEstimateProductionTime(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()

	for _, q := range []int64{0, 1, 7, 1000} {
		est, err := e.EstimateProductionTime(ctx, 1, q)
		require.NoError(t, err)
		assert.Equal(t, 30*q, est.TotalTime)
		assert.Equal(t, int64(30), est.UnitTime)
		assert.Equal(t, q, est.Quantity)
	}

	_, err := e.EstimateProductionTime(ctx, 42, 1)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	_, err = e.EstimateProductionTime(ctx, 1, -3)
	assert.True(t, apperror.Is(err, apperror.KindInvalidQuantity))

	_, err = e.EstimateProductionTime(ctx, 1, math.MaxInt64)
	assert.True(t, apperror.Is(err, apperror.KindInvalidQuantity))
}

func TestMulQuantity(t *testing.T) {
	v, err := mulQuantity(math.MaxInt64, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), v)

	v, err = mulQuantity(0, math.MaxInt64)
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = mulQuantity(math.MaxInt64, 2)
	assert.Error(t, err)
}

// ── Lifecycle guards ─────────────────────────────────────────────────────────

func TestGuards(t *testing.T) {
	supplier := model.Supplier{ID: 5, Name: "Acme"}

	steel := model.RawMaterial{Name: "steel"}
	assert.NoError(t, CanDeleteRawMaterial(steel, MaterialUsage{}))
	err := CanDeleteRawMaterial(steel, MaterialUsage{LinkedSuppliers: 2})
	assert.True(t, apperror.Is(err, apperror.KindBusinessRule))
	assert.Contains(t, err.Error(), "used by suppliers/orders")
	assert.True(t, apperror.Is(CanDeleteRawMaterial(steel, MaterialUsage{BOMLines: 1}), apperror.KindBusinessRule))

	assert.NoError(t, CanDeleteSupplier(supplier, []model.SupplyOrder{{SupplierID: 5, Status: model.SupplyOrderReceived}}))
	for _, st := range []model.SupplyOrderStatus{model.SupplyOrderPending, model.SupplyOrderInProgress} {
		err := CanDeleteSupplier(supplier, []model.SupplyOrder{{SupplierID: 5, Status: st}})
		assert.True(t, apperror.Is(err, apperror.KindBusinessRule), "status %s", st)
		assert.Contains(t, err.Error(), "has active orders")
	}

	assert.NoError(t, CanDeleteSupplyOrder(model.SupplyOrder{Status: model.SupplyOrderInProgress}))
	err = CanDeleteSupplyOrder(model.SupplyOrder{ID: 3, Status: model.SupplyOrderReceived})
	assert.True(t, apperror.Is(err, apperror.KindBusinessRule))
	assert.Contains(t, err.Error(), "already received")

	assert.NoError(t, CanDeleteProduct(model.Product{Name: "Chair"}, 0))
	err = CanDeleteProduct(model.Product{Name: "Chair"}, 4)
	assert.Contains(t, err.Error(), "has production orders (4)")

	assert.NoError(t, CanCancelProductionOrder(model.ProductionOrder{Status: model.ProductionPending}))
	for _, st := range []model.ProductionOrderStatus{model.ProductionInProgress, model.ProductionDone, model.ProductionBlocked} {
		err := CanCancelProductionOrder(model.ProductionOrder{Status: st})
		assert.True(t, apperror.Is(err, apperror.KindBusinessRule), "status %s", st)
	}

	assert.NoError(t, CanCancelOrder(model.Order{Status: model.OrderPreparing}))
	err = CanCancelOrder(model.Order{Status: model.OrderInTransit})
	assert.Contains(t, err.Error(), "already shipped")

	assert.NoError(t, CanDeleteCustomer(model.Customer{Name: "Bob"}, 0))
	assert.True(t, apperror.Is(CanDeleteCustomer(model.Customer{Name: "Bob"}, 3), apperror.KindBusinessRule))
}

func TestGuards_Idempotent(t *testing.T) {
	o := model.ProductionOrder{ID: 1, Status: model.ProductionInProgress}
	first := CanCancelProductionOrder(o)
	second := CanCancelProductionOrder(o)
	assert.Equal(t, first, second)

	so := model.SupplyOrder{ID: 2, Status: model.SupplyOrderPending}
	assert.Equal(t, CanDeleteSupplyOrder(so), CanDeleteSupplyOrder(so))
}

// ── Planning façade ──────────────────────────────────────────────────────────

func TestDeriveDeliveryCost(t *testing.T) {
	product := model.Product{Cost: decimal.RequireFromString("12.50")}
	order := model.Order{Quantity: 4}

	got := DeriveDeliveryCost(order, product, nil)
	assert.True(t, decimal.RequireFromString("55").Equal(got), "got %s", got)

	explicit := decimal.NewFromInt(50)
	assert.True(t, explicit.Equal(DeriveDeliveryCost(order, product, &explicit)))

	zero := decimal.Zero
	assert.True(t, decimal.RequireFromString("55").Equal(DeriveDeliveryCost(order, product, &zero)))

	negative := decimal.NewFromInt(-5)
	assert.True(t, decimal.RequireFromString("55").Equal(DeriveDeliveryCost(order, product, &negative)))
}

func TestPlanner_Shortages(t *testing.T) {
	steel := material(10, "steel", qty(10), qty(2))
	p := NewPlanner(
		stubProducts{1: {ID: 1, Name: "Chair", ProductionTime: 2}},
		stubBOMs{1: {{ProductID: 1, MaterialID: 10, Quantity: 3, Material: &steel}}},
	)

	report, err := p.CheckAvailability(context.Background(), 1, 4)
	require.NoError(t, err)
	assert.Equal(t, []Shortage{{MaterialID: 10, MaterialName: "steel", Missing: 2}}, Shortages(report))

	est, err := p.EstimateProductionTime(context.Background(), 1, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(8), est.TotalTime)

	assert.Len(t, p.CriticalMaterials([]model.RawMaterial{material(1, "a", qty(1), qty(2))}), 1)
	assert.Empty(t, Shortages(nil))
}
