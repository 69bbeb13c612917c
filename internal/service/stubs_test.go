package service

import (
	"context"
	"sort"
	"strings"

	"supplychainx/internal/apperror"
	"supplychainx/internal/infra"
	"supplychainx/internal/model"
	"supplychainx/internal/repository"
	"supplychainx/internal/worker"
)

// ── In-memory Repository Stubs ───────────────────────────────────────────────

var (
	_ repository.RawMaterialRepository     = (*stubMaterials)(nil)
	_ repository.BillOfMaterialRepository  = (*stubBOMs)(nil)
	_ repository.SupplierRepository        = (*stubSuppliers)(nil)
	_ repository.SupplyOrderRepository     = (*stubSupplyOrders)(nil)
	_ repository.ProductRepository         = (*stubProducts)(nil)
	_ repository.ProductionOrderRepository = (*stubProductionOrders)(nil)
	_ repository.CustomerRepository        = (*stubCustomers)(nil)
	_ repository.OrderRepository           = (*stubOrders)(nil)
	_ repository.DeliveryRepository        = (*stubDeliveries)(nil)
	_ repository.UserRepository            = (*stubUsers)(nil)
)

type stubMaterials struct {
	rows            map[int64]*model.RawMaterial
	linkedSuppliers map[int64]int64
	next            int64
}

func newStubMaterials() *stubMaterials {
	return &stubMaterials{rows: map[int64]*model.RawMaterial{}, linkedSuppliers: map[int64]int64{}}
}

func (r *stubMaterials) Create(_ context.Context, m *model.RawMaterial) error {
	r.next++
	m.ID = r.next
	cp := *m
	r.rows[m.ID] = &cp
	return nil
}

func (r *stubMaterials) FindByID(_ context.Context, id int64) (*model.RawMaterial, error) {
	m, ok := r.rows[id]
	if !ok {
		return nil, apperror.NotFound("raw material", id)
	}
	cp := *m
	return &cp, nil
}

func (r *stubMaterials) FindByIDs(_ context.Context, ids []int64) ([]model.RawMaterial, error) {
	var out []model.RawMaterial
	for _, id := range ids {
		if m, ok := r.rows[id]; ok {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *stubMaterials) List(_ context.Context) ([]model.RawMaterial, error) {
	out := make([]model.RawMaterial, 0, len(r.rows))
	for _, m := range r.rows {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubMaterials) ListBelowMinimum(ctx context.Context) ([]model.RawMaterial, error) {
	return r.List(ctx)
}

func (r *stubMaterials) CountLinkedSuppliers(_ context.Context, id int64) (int64, error) {
	return r.linkedSuppliers[id], nil
}

func (r *stubMaterials) Update(_ context.Context, m *model.RawMaterial) error {
	cp := *m
	r.rows[m.ID] = &cp
	return nil
}

func (r *stubMaterials) Delete(_ context.Context, id int64) error {
	delete(r.rows, id)
	return nil
}

type stubBOMs struct {
	rows      map[int64]*model.BillOfMaterial
	materials *stubMaterials
	next      int64
}

func newStubBOMs(materials *stubMaterials) *stubBOMs {
	return &stubBOMs{rows: map[int64]*model.BillOfMaterial{}, materials: materials}
}

func (r *stubBOMs) Create(_ context.Context, b *model.BillOfMaterial) error {
	r.next++
	b.ID = r.next
	cp := *b
	r.rows[b.ID] = &cp
	return nil
}

func (r *stubBOMs) FindByID(_ context.Context, id int64) (*model.BillOfMaterial, error) {
	b, ok := r.rows[id]
	if !ok {
		return nil, apperror.NotFound("bill of material", id)
	}
	cp := *b
	return &cp, nil
}

func (r *stubBOMs) List(_ context.Context) ([]model.BillOfMaterial, error) {
	out := make([]model.BillOfMaterial, 0, len(r.rows))
	for _, b := range r.rows {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ListByProduct resolves Material from the material stub, like the gorm preload.
func (r *stubBOMs) ListByProduct(ctx context.Context, productID int64) ([]model.BillOfMaterial, error) {
	all, _ := r.List(ctx)
	out := make([]model.BillOfMaterial, 0)
	for _, b := range all {
		if b.ProductID != productID {
			continue
		}
		b.Material = nil
		if m, ok := r.materials.rows[b.MaterialID]; ok {
			cp := *m
			b.Material = &cp
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *stubBOMs) CountByMaterial(_ context.Context, materialID int64) (int64, error) {
	var n int64
	for _, b := range r.rows {
		if b.MaterialID == materialID {
			n++
		}
	}
	return n, nil
}

func (r *stubBOMs) Update(_ context.Context, b *model.BillOfMaterial) error {
	cp := *b
	r.rows[b.ID] = &cp
	return nil
}

func (r *stubBOMs) Delete(_ context.Context, id int64) error {
	delete(r.rows, id)
	return nil
}

type stubSuppliers struct {
	rows map[int64]*model.Supplier
	next int64
}

func newStubSuppliers() *stubSuppliers { return &stubSuppliers{rows: map[int64]*model.Supplier{}} }

func (r *stubSuppliers) Create(_ context.Context, s *model.Supplier) error {
	r.next++
	s.ID = r.next
	cp := *s
	r.rows[s.ID] = &cp
	return nil
}

func (r *stubSuppliers) FindByID(_ context.Context, id int64) (*model.Supplier, error) {
	s, ok := r.rows[id]
	if !ok {
		return nil, apperror.NotFound("supplier", id)
	}
	cp := *s
	return &cp, nil
}

func (r *stubSuppliers) List(_ context.Context) ([]model.Supplier, error) {
	out := make([]model.Supplier, 0, len(r.rows))
	for _, s := range r.rows {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubSuppliers) SearchByName(ctx context.Context, name string) ([]model.Supplier, error) {
	all, _ := r.List(ctx)
	out := make([]model.Supplier, 0)
	for _, s := range all {
		if strings.Contains(strings.ToLower(s.Name), strings.ToLower(name)) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubSuppliers) Update(_ context.Context, s *model.Supplier) error {
	cp := *s
	r.rows[s.ID] = &cp
	return nil
}

func (r *stubSuppliers) Delete(_ context.Context, id int64) error {
	delete(r.rows, id)
	return nil
}

type stubSupplyOrders struct {
	rows map[int64]*model.SupplyOrder
	next int64
}

func newStubSupplyOrders() *stubSupplyOrders {
	return &stubSupplyOrders{rows: map[int64]*model.SupplyOrder{}}
}

func (r *stubSupplyOrders) Create(_ context.Context, o *model.SupplyOrder) error {
	r.next++
	o.ID = r.next
	cp := *o
	r.rows[o.ID] = &cp
	return nil
}

func (r *stubSupplyOrders) FindByID(_ context.Context, id int64) (*model.SupplyOrder, error) {
	o, ok := r.rows[id]
	if !ok {
		return nil, apperror.NotFound("supply order", id)
	}
	cp := *o
	return &cp, nil
}

func (r *stubSupplyOrders) List(_ context.Context) ([]model.SupplyOrder, error) {
	out := make([]model.SupplyOrder, 0, len(r.rows))
	for _, o := range r.rows {
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubSupplyOrders) ListByStatus(ctx context.Context, status model.SupplyOrderStatus) ([]model.SupplyOrder, error) {
	all, _ := r.List(ctx)
	out := make([]model.SupplyOrder, 0)
	for _, o := range all {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *stubSupplyOrders) ListBySupplier(ctx context.Context, supplierID int64) ([]model.SupplyOrder, error) {
	all, _ := r.List(ctx)
	out := make([]model.SupplyOrder, 0)
	for _, o := range all {
		if o.SupplierID == supplierID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *stubSupplyOrders) Update(_ context.Context, o *model.SupplyOrder) error {
	cp := *o
	r.rows[o.ID] = &cp
	return nil
}

func (r *stubSupplyOrders) Delete(_ context.Context, id int64) error {
	delete(r.rows, id)
	return nil
}

type stubProducts struct {
	rows map[int64]*model.Product
	next int64
}

func newStubProducts() *stubProducts { return &stubProducts{rows: map[int64]*model.Product{}} }

func (r *stubProducts) Create(_ context.Context, p *model.Product) error {
	r.next++
	p.ID = r.next
	cp := *p
	r.rows[p.ID] = &cp
	return nil
}

func (r *stubProducts) FindByID(_ context.Context, id int64) (*model.Product, error) {
	p, ok := r.rows[id]
	if !ok {
		return nil, apperror.NotFound("product", id)
	}
	cp := *p
	return &cp, nil
}

func (r *stubProducts) List(_ context.Context) ([]model.Product, error) {
	out := make([]model.Product, 0, len(r.rows))
	for _, p := range r.rows {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubProducts) SearchByName(ctx context.Context, name string) ([]model.Product, error) {
	all, _ := r.List(ctx)
	out := make([]model.Product, 0)
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(name)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubProducts) Update(_ context.Context, p *model.Product) error {
	cp := *p
	r.rows[p.ID] = &cp
	return nil
}

func (r *stubProducts) Delete(_ context.Context, id int64) error {
	delete(r.rows, id)
	return nil
}

type stubProductionOrders struct {
	rows map[int64]*model.ProductionOrder
	next int64
}

func newStubProductionOrders() *stubProductionOrders {
	return &stubProductionOrders{rows: map[int64]*model.ProductionOrder{}}
}

func (r *stubProductionOrders) Create(_ context.Context, o *model.ProductionOrder) error {
	r.next++
	o.ID = r.next
	cp := *o
	r.rows[o.ID] = &cp
	return nil
}

func (r *stubProductionOrders) FindByID(_ context.Context, id int64) (*model.ProductionOrder, error) {
	o, ok := r.rows[id]
	if !ok {
		return nil, apperror.NotFound("production order", id)
	}
	cp := *o
	return &cp, nil
}

func (r *stubProductionOrders) List(_ context.Context) ([]model.ProductionOrder, error) {
	out := make([]model.ProductionOrder, 0, len(r.rows))
	for _, o := range r.rows {
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubProductionOrders) ListByStatus(ctx context.Context, status model.ProductionOrderStatus) ([]model.ProductionOrder, error) {
	all, _ := r.List(ctx)
	out := make([]model.ProductionOrder, 0)
	for _, o := range all {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *stubProductionOrders) CountByProduct(_ context.Context, productID int64) (int64, error) {
	var n int64
	for _, o := range r.rows {
		if o.ProductID == productID {
			n++
		}
	}
	return n, nil
}

func (r *stubProductionOrders) Update(_ context.Context, o *model.ProductionOrder) error {
	cp := *o
	r.rows[o.ID] = &cp
	return nil
}

func (r *stubProductionOrders) Delete(_ context.Context, id int64) error {
	delete(r.rows, id)
	return nil
}

type stubCustomers struct {
	rows map[int64]*model.Customer
	next int64
}

func newStubCustomers() *stubCustomers { return &stubCustomers{rows: map[int64]*model.Customer{}} }

func (r *stubCustomers) Create(_ context.Context, c *model.Customer) error {
	r.next++
	c.ID = r.next
	cp := *c
	r.rows[c.ID] = &cp
	return nil
}

func (r *stubCustomers) FindByID(_ context.Context, id int64) (*model.Customer, error) {
	c, ok := r.rows[id]
	if !ok {
		return nil, apperror.NotFound("customer", id)
	}
	cp := *c
	return &cp, nil
}

func (r *stubCustomers) List(_ context.Context) ([]model.Customer, error) {
	out := make([]model.Customer, 0, len(r.rows))
	for _, c := range r.rows {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubCustomers) SearchByName(ctx context.Context, name string) ([]model.Customer, error) {
	all, _ := r.List(ctx)
	out := make([]model.Customer, 0)
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.Name), strings.ToLower(name)) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubCustomers) Update(_ context.Context, c *model.Customer) error {
	cp := *c
	r.rows[c.ID] = &cp
	return nil
}

func (r *stubCustomers) Delete(_ context.Context, id int64) error {
	delete(r.rows, id)
	return nil
}

type stubOrders struct {
	rows map[int64]*model.Order
	next int64
}

func newStubOrders() *stubOrders { return &stubOrders{rows: map[int64]*model.Order{}} }

func (r *stubOrders) Create(_ context.Context, o *model.Order) error {
	r.next++
	o.ID = r.next
	cp := *o
	r.rows[o.ID] = &cp
	return nil
}

func (r *stubOrders) FindByID(_ context.Context, id int64) (*model.Order, error) {
	o, ok := r.rows[id]
	if !ok {
		return nil, apperror.NotFound("order", id)
	}
	cp := *o
	return &cp, nil
}

func (r *stubOrders) List(_ context.Context) ([]model.Order, error) {
	out := make([]model.Order, 0, len(r.rows))
	for _, o := range r.rows {
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubOrders) ListByStatus(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	all, _ := r.List(ctx)
	out := make([]model.Order, 0)
	for _, o := range all {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *stubOrders) CountByCustomer(_ context.Context, customerID int64) (int64, error) {
	var n int64
	for _, o := range r.rows {
		if o.CustomerID == customerID {
			n++
		}
	}
	return n, nil
}

func (r *stubOrders) Update(_ context.Context, o *model.Order) error {
	cp := *o
	r.rows[o.ID] = &cp
	return nil
}

func (r *stubOrders) Delete(_ context.Context, id int64) error {
	delete(r.rows, id)
	return nil
}

type stubDeliveries struct {
	rows map[int64]*model.Delivery
	next int64
}

func newStubDeliveries() *stubDeliveries { return &stubDeliveries{rows: map[int64]*model.Delivery{}} }

func (r *stubDeliveries) Create(_ context.Context, d *model.Delivery) error {
	r.next++
	d.ID = r.next
	cp := *d
	r.rows[d.ID] = &cp
	return nil
}

func (r *stubDeliveries) FindByID(_ context.Context, id int64) (*model.Delivery, error) {
	d, ok := r.rows[id]
	if !ok {
		return nil, apperror.NotFound("delivery", id)
	}
	cp := *d
	return &cp, nil
}

func (r *stubDeliveries) FindByOrderID(_ context.Context, orderID int64) (*model.Delivery, error) {
	for _, d := range r.rows {
		if d.OrderID == orderID {
			cp := *d
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *stubDeliveries) List(_ context.Context) ([]model.Delivery, error) {
	out := make([]model.Delivery, 0, len(r.rows))
	for _, d := range r.rows {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type stubUsers struct {
	rows map[int64]*model.User
	next int64
}

func newStubUsers() *stubUsers { return &stubUsers{rows: map[int64]*model.User{}} }

func (r *stubUsers) Create(_ context.Context, u *model.User) error {
	r.next++
	u.ID = r.next
	cp := *u
	r.rows[u.ID] = &cp
	return nil
}

func (r *stubUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.rows {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperror.NotFoundMsg("user not found with email %s", email)
}

func (r *stubUsers) FindByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := r.rows[id]
	if !ok {
		return nil, apperror.NotFound("user", id)
	}
	cp := *u
	return &cp, nil
}

func (r *stubUsers) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.rows))
	for _, u := range r.rows {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUsers) Update(_ context.Context, u *model.User) error {
	cp := *u
	r.rows[u.ID] = &cp
	return nil
}

// ── Side-effect fakes ────────────────────────────────────────────────────────

type recordingPublisher struct{ events []infra.LifecycleEvent }

func (p *recordingPublisher) Publish(_ context.Context, ev infra.LifecycleEvent) error {
	p.events = append(p.events, ev)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type recordingAlerter struct {
	queued  []worker.StockAlert
	cleared []int64
}

func (a *recordingAlerter) EnqueueStockAlert(_ context.Context, alert worker.StockAlert) (bool, error) {
	a.queued = append(a.queued, alert)
	return true, nil
}

func (a *recordingAlerter) ClearStockAlert(_ context.Context, id int64) error {
	a.cleared = append(a.cleared, id)
	return nil
}

func int64p(v int64) *int64 { return &v }
