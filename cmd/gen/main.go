package main

import (
	"storefront/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ProductModel{},
		model.ProductVariantModel{},
		model.StockLocationModel{},
		model.StockLevelModel{},
		model.CartModel{},
		model.CartItemModel{},
		model.DeliveryRuleModel{},
		model.OrderModel{},
		model.OrderItemModel{},
		model.OrderStatusHistoryModel{},
		model.PaymentModel{},
		model.AuditLogModel{},
		model.OutboxEventModel{},
		model.CustomerDeviceModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
