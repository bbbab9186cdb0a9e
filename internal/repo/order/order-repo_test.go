package order_repo

import (
	"context"
	"fmt"
	"regexp"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zx0938013408/teamb-server/internal/entity"
	"github.com/zx0938013408/teamb-server/state"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestAppState(t *testing.T) *state.AppState {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps every session on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&entity.Order{}, &entity.OrderItem{}, &entity.ShoppingDetail{}))
	return &state.AppState{DB: db}
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestOrderRepo_CreateHomeDelivery(t *testing.T) {
	appState := newTestAppState(t)
	repo := NewOrderRepo(appState)

	orderID, appErr := repo.Create(context.Background(), CreateOrderInput{
		MemberID:         7,
		TotalAmount:      1500,
		OrderStatusID:    1,
		ShippingMethodID: 1,
		PaymentMethodID:  2,
		Items: []OrderItemInput{
			{ItemID: 11, Quantity: 2},
			{ItemID: 12, Quantity: 1},
		},
		RecipientName:   "王小明",
		RecipientPhone:  "0912345678",
		CityID:          intPtr(1),
		AreaID:          intPtr(3),
		DetailedAddress: strPtr("中正路100號"),
	})
	require.Nil(t, appErr)
	assert.Positive(t, orderID)

	var order entity.Order
	require.NoError(t, appState.DB.First(&order, orderID).Error)
	assert.Equal(t, 7, order.MemberID)
	assert.Equal(t, 1500, order.TotalAmount)
	assert.Equal(t, "未付款", order.PaymentStatus)
	assert.Nil(t, order.UsedUserCouponID)
	assert.Regexp(t, regexp.MustCompile(`^od\d{14}\d{3}$`), order.MerchantTradeNo)

	var items []entity.OrderItem
	require.NoError(t, appState.DB.Where("order_id = ?", orderID).Find(&items).Error)
	assert.Len(t, items, 2)

	var detail entity.ShoppingDetail
	require.NoError(t, appState.DB.Where("order_id = ?", orderID).First(&detail).Error)
	assert.Equal(t, "王小明", detail.RecipientName)
	require.NotNil(t, detail.DetailedAddress)
	assert.Equal(t, "中正路100號", *detail.DetailedAddress)
	assert.Nil(t, detail.StoreName)
}

func TestOrderRepo_CreateStorePickup(t *testing.T) {
	appState := newTestAppState(t)
	repo := NewOrderRepo(appState)

	orderID, appErr := repo.Create(context.Background(), CreateOrderInput{
		MemberID:         9,
		TotalAmount:      600,
		OrderStatusID:    1,
		ShippingMethodID: 2,
		PaymentMethodID:  1,
		Items:            []OrderItemInput{{ItemID: 21, Quantity: 1}},
		RecipientName:    "李小華",
		RecipientPhone:   "0987654321",
		StoreName:        strPtr("全家中山店"),
		StoreAddress:     strPtr("中山北路50號"),
	})
	require.Nil(t, appErr)

	var detail entity.ShoppingDetail
	require.NoError(t, appState.DB.Where("order_id = ?", orderID).First(&detail).Error)
	require.NotNil(t, detail.StoreName)
	assert.Equal(t, "全家中山店", *detail.StoreName)
	assert.Nil(t, detail.CityID)
	assert.Nil(t, detail.DetailedAddress)
}

func TestOrderRepo_CreateWithoutItems(t *testing.T) {
	appState := newTestAppState(t)
	repo := NewOrderRepo(appState)

	orderID, appErr := repo.Create(context.Background(), CreateOrderInput{
		MemberID:         7,
		TotalAmount:      0,
		OrderStatusID:    1,
		ShippingMethodID: 1,
		PaymentMethodID:  1,
		RecipientName:    "王小明",
		RecipientPhone:   "0912345678",
	})
	require.Nil(t, appErr)

	var count int64
	require.NoError(t, appState.DB.Model(&entity.OrderItem{}).Where("order_id = ?", orderID).Count(&count).Error)
	assert.Zero(t, count)
}
