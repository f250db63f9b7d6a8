package container

import (
	"context"
	"time"

	config "github.com/inference-gateway/coordpick/config"
	domain "github.com/inference-gateway/coordpick/internal/domain"
	geometry "github.com/inference-gateway/coordpick/internal/geometry"
	logger "github.com/inference-gateway/coordpick/internal/logger"
	services "github.com/inference-gateway/coordpick/internal/services"
	web "github.com/inference-gateway/coordpick/internal/web"
	viper "github.com/spf13/viper"
)

// ServiceContainer manages all application dependencies
type ServiceContainer struct {
	// Configuration
	viper         *viper.Viper
	config        *config.Config
	configService *services.ConfigService
	logical       domain.Size

	// Image pipeline
	imageService *services.ImageService
	normalizer   domain.Normalizer
	mapper       geometry.Mapper

	// Gallery state and feedback
	gallery    *services.Gallery
	notifier   *services.Notifier
	clipboard  domain.ClipboardSink
	controller *services.GalleryController

	// Web surface
	hub    *web.Hub
	server *web.GalleryServer
}

// NewServiceContainer creates a new service container with all dependencies
func NewServiceContainer(cfg *config.Config, v ...*viper.Viper) (*ServiceContainer, error) {
	container := &ServiceContainer{
		config:  cfg,
		logical: domain.Size{Width: cfg.Gallery.Width, Height: cfg.Gallery.Height},
	}

	if len(v) > 0 && v[0] != nil {
		container.viper = v[0]
		container.configService = services.NewConfigService(v[0], cfg)
	}

	if err := container.initializeImagePipeline(); err != nil {
		return nil, err
	}
	if err := container.initializeGallery(); err != nil {
		return nil, err
	}
	if err := container.initializeWeb(); err != nil {
		return nil, err
	}

	return container, nil
}

func (c *ServiceContainer) initializeImagePipeline() error {
	c.imageService = services.NewImageService(c.config.Fetch)

	normalizer, err := services.NewNormalizer(c.imageService, c.config.Gallery)
	if err != nil {
		return err
	}
	c.normalizer = normalizer

	mapper, err := geometry.ForMode(normalizer.Mode(), c.logical)
	if err != nil {
		return err
	}
	c.mapper = mapper

	return nil
}

func (c *ServiceContainer) initializeGallery() error {
	c.hub = web.NewHub(c.logical, func() web.GalleryView {
		return web.RenderGallery(c.controller.Mode(), c.controller.Entries(), c.logical)
	})

	c.notifier = services.NewNotifier(
		c.hub,
		time.Duration(c.config.Notify.ToastMillis)*time.Millisecond,
		time.Duration(c.config.Notify.RippleMillis)*time.Millisecond,
	)
	c.clipboard = services.NewClipboardSink(c.config.Clipboard.Enabled)
	c.gallery = services.NewGallery()

	controller, err := services.NewGalleryController(c.gallery, c.normalizer, c.mapper, c.clipboard, c.notifier, c.hub)
	if err != nil {
		return err
	}
	c.controller = controller

	logger.Debug("Gallery initialized", "mode", controller.Mode(), "logical_size", c.logical.String(), "clipboard", c.config.Clipboard.Enabled)
	return nil
}

func (c *ServiceContainer) initializeWeb() error {
	server, err := web.NewGalleryServer(c.config, c.controller, c.hub)
	if err != nil {
		return err
	}
	c.server = server
	return nil
}

// SeedPlaceholder starts loading the placeholder image when enabled
func (c *ServiceContainer) SeedPlaceholder(ctx context.Context) <-chan domain.AddResult {
	if !c.config.Gallery.SeedPlaceholder || c.config.Gallery.PlaceholderURL == "" {
		return nil
	}
	return c.controller.Seed(ctx, c.config.Gallery.PlaceholderURL)
}

// Shutdown stops the server, pending feedback timers and in-flight loads.
// Loads still running when ctx expires are abandoned.
func (c *ServiceContainer) Shutdown(ctx context.Context) error {
	err := c.server.Shutdown(ctx)
	c.notifier.Stop()

	done := make(chan struct{})
	go func() {
		c.controller.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.Warn("Shutdown timed out with image loads in flight")
	}

	return err
}

// GetConfig returns the configuration
func (c *ServiceContainer) GetConfig() *config.Config {
	return c.config
}

// GetViper returns the viper instance, if any
func (c *ServiceContainer) GetViper() *viper.Viper {
	return c.viper
}

// GetConfigService returns the config service, if a viper instance was given
func (c *ServiceContainer) GetConfigService() *services.ConfigService {
	return c.configService
}

// GetImageService returns the image resolver
func (c *ServiceContainer) GetImageService() *services.ImageService {
	return c.imageService
}

// GetNormalizer returns the normalizer for the configured mode
func (c *ServiceContainer) GetNormalizer() domain.Normalizer {
	return c.normalizer
}

// GetMapper returns the click mapper for the configured mode
func (c *ServiceContainer) GetMapper() geometry.Mapper {
	return c.mapper
}

// GetController returns the gallery controller
func (c *ServiceContainer) GetController() *services.GalleryController {
	return c.controller
}

// GetNotifier returns the toast and ripple notifier
func (c *ServiceContainer) GetNotifier() *services.Notifier {
	return c.notifier
}

// GetHub returns the event hub
func (c *ServiceContainer) GetHub() *web.Hub {
	return c.hub
}

// GetServer returns the gallery web server
func (c *ServiceContainer) GetServer() *web.GalleryServer {
	return c.server
}
