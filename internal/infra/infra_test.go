package infra

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"supplychainx/internal/config"
	"supplychainx/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func int64p(v int64) *int64 { return &v }

func TestWriteCriticalStockXLSX(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCriticalStockXLSX(&buf, []model.RawMaterial{
		{ID: 1, Name: "Steel", Unit: "kg", Stock: int64p(4), StockMin: int64p(10)},
		{ID: 2, Name: "Glue", Unit: "l", Stock: int64p(0), StockMin: int64p(3)},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(criticalSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Name", "Unit", "Stock", "Minimum", "Missing"}, rows[0])
	assert.Equal(t, []string{"1", "Steel", "kg", "4", "10", "6"}, rows[1])
	assert.Equal(t, "Glue", rows[2][1])
}

func TestGenerateDeliverySlipPDF(t *testing.T) {
	when := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	path, err := GenerateDeliverySlipPDF(DeliverySlip{
		Delivery: model.Delivery{ID: 9, Vehicle: "Truck 12", Driver: "Sam", Status: model.DeliveryPending, DeliveryDate: &when, Cost: decimal.RequireFromString("55.00")},
		Order:    model.Order{ID: 4, Quantity: 4, Status: model.OrderPreparing},
		Customer: model.Customer{Name: "Globex", Address: "1 Main St", City: "Lyon"},
		Product:  model.Product{Name: "Chair"},
	}, t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Contains(t, path, "delivery_9.pdf")
}

func TestNewEventPublisher_NoBrokers(t *testing.T) {
	p := NewEventPublisher(nil, "topic")
	_, ok := p.(NopPublisher)
	assert.True(t, ok)
	assert.NoError(t, p.Publish(context.Background(), NewLifecycleEvent("order", 1, ActionCancelled)))
	assert.NoError(t, p.Close())
}

func TestNewLifecycleEvent(t *testing.T) {
	ev := NewLifecycleEvent("supplier", 3, ActionDeleted)
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, "supplier", ev.Entity)
	assert.Equal(t, int64(3), ev.EntityID)
	assert.False(t, ev.At.IsZero())
}

func TestNewDatabase_SQLite(t *testing.T) {
	db, err := NewDatabase("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	assert.True(t, db.Migrator().HasTable(&model.SupplyOrder{}))
	assert.True(t, db.Migrator().HasTable("supply_order_materials"))

	_, err = NewDatabase("mysql", "")
	assert.Error(t, err)
}

func TestMailer_SendFailsWithoutServer(t *testing.T) {
	assert.False(t, NewMailer(&config.Config{}).Enabled())

	m := NewMailer(&config.Config{SMTPHost: "127.0.0.1", SMTPPort: 1, SMTPUser: "alerts@example.com"})
	require.True(t, m.Enabled())
	err := m.Send([]string{"ops@example.com"}, "Stock alert", "Steel is below its minimum")
	assert.Error(t, err)
}
