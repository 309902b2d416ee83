package provider

import (
	"time"

	"github.com/yaodan-next/internal/cache"
	"github.com/yaodan-next/internal/config"
	"github.com/yaodan-next/internal/logger"
	"github.com/yaodan-next/internal/models"
	"github.com/yaodan-next/internal/queue"
	"github.com/yaodan-next/internal/repository"
	"github.com/yaodan-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	RecordRepo repository.RecordRepository

	// Services
	RecordStore         *service.RecordStore
	ComposerService     *service.ComposerService
	QuickItemService    *service.QuickItemService
	HistoryService      *service.HistoryService
	StoreProfileService *service.StoreProfileService
	StatusService       *service.StatusService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.RecordRepo = repository.NewRecordRepository(db)
}

func (c *Container) initServices() {
	c.RecordStore = service.NewRecordStore(c.RecordRepo)
	c.ComposerService = service.NewComposerService()
	c.QuickItemService = service.NewQuickItemService(c.RecordStore)
	c.HistoryService = service.NewHistoryService(c.RecordStore, c.ComposerService, c.Config.Store.HistoryMaxEntries)
	c.StoreProfileService = service.NewStoreProfileService(c.RecordStore, models.StoreProfile{
		ContactPhone: c.Config.Store.ContactPhone,
	})
	c.StatusService = service.NewStatusService(c.QueueClient, time.Duration(c.Config.Store.StatusClearSeconds)*time.Second)
}
