package main

import (
	"fmt"

	"github.com/yaodan-next/internal/config"
	"github.com/yaodan-next/internal/constants"
	"github.com/yaodan-next/internal/logger"
	"github.com/yaodan-next/internal/models"
	"github.com/yaodan-next/internal/repository"
	"github.com/yaodan-next/internal/service"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	store := service.NewRecordStore(repository.NewRecordRepository(models.DB))

	// 初始化常用药品，已有数据则保留
	var quickItems []models.QuickItem
	if store.Load(constants.RecordKeyQuickItems, &quickItems) && len(quickItems) > 0 {
		stdLog.Printf("Quick items already exist: %d entries", len(quickItems))
	} else {
		quickItems = []models.QuickItem{
			{Name: "阿莫西林胶囊", Unit: "盒"},
			{Name: "布洛芬缓释胶囊", Unit: "盒"},
			{Name: "复方感冒灵颗粒", Unit: "盒"},
			{Name: "维生素C片", Unit: "瓶"},
			{Name: "藿香正气水", Unit: "盒"},
		}
		store.Save(constants.RecordKeyQuickItems, quickItems)
		stdLog.Printf("Seeded %d quick items", len(quickItems))
	}

	// 初始化门店信息
	var profile models.StoreProfile
	if store.Load(constants.RecordKeyStoreProfile, &profile) && profile.ContactPhone != "" {
		stdLog.Printf("Store profile already exists: contact=%s", profile.ContactPhone)
	} else {
		profile = models.StoreProfile{ContactPhone: cfg.Store.ContactPhone}
		store.Save(constants.RecordKeyStoreProfile, profile)
		stdLog.Printf("Seeded store profile: contact=%s", profile.ContactPhone)
	}

	// 初始化空的历史列表，便于前端首次拉取
	var history []models.OrderSnapshot
	if !store.Load(constants.RecordKeyOrderHistory, &history) {
		store.Save(constants.RecordKeyOrderHistory, []models.OrderSnapshot{})
		stdLog.Println("Seeded empty order history")
	}

	fmt.Println("\n✅ Seed data ready")
}
