// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vitrina/internal/delivery/http/middleware"
	"vitrina/internal/delivery/http/router/handler"
	"vitrina/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	CityHandler         *handler.CityHandler
	BusinessHandler     *handler.BusinessHandler
	ProductHandler      *handler.ProductHandler
	ServiceHandler      *handler.ServiceHandler
	StoryHandler        *handler.StoryHandler
	ReviewHandler       *handler.ReviewHandler
	FavoriteHandler     *handler.FavoriteHandler
	SubscriptionHandler *handler.SubscriptionHandler
	SearchHandler       *handler.SearchHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params
	authed := p.AuthMiddleware.Authenticate

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", p.UserHandler.Register)
		authGroup.POST("/login", p.UserHandler.Login)
		authGroup.POST("/refresh", p.UserHandler.Refresh)
	}

	// Profile routes
	userGroup := e.Group("/user", authed)
	{
		userGroup.GET("/profile", p.UserHandler.GetProfile)
		userGroup.PATCH("/profile", p.UserHandler.UpdateProfile)
	}

	// City catalog, read only
	cityGroup := e.Group("/cities")
	{
		cityGroup.GET("", p.CityHandler.ListCities)
		cityGroup.GET("/:id", p.CityHandler.GetCity)
	}

	// Business directory. Reads are public, writes require a session.
	businessGroup := e.Group("/businesses")
	{
		businessGroup.GET("", p.BusinessHandler.ListBusinesses)
		businessGroup.GET("/slug/:slug", p.BusinessHandler.GetBusinessBySlug)
		businessGroup.GET("/me", p.BusinessHandler.GetOwnBusiness, authed)
		businessGroup.GET("/:id", p.BusinessHandler.GetBusiness)
		businessGroup.POST("", p.BusinessHandler.CreateBusiness, authed)
		businessGroup.PATCH("/:id", p.BusinessHandler.UpdateBusiness, authed)
		businessGroup.DELETE("/:id", p.BusinessHandler.DeleteBusiness, authed)
	}

	// Product listings
	productGroup := e.Group("/products")
	{
		productGroup.GET("", p.ProductHandler.ListProducts)
		productGroup.GET("/mine", p.ProductHandler.ListOwnProducts, authed)
		productGroup.GET("/:id", p.ProductHandler.GetProduct)
		productGroup.POST("", p.ProductHandler.CreateProduct, authed)
		productGroup.PATCH("/:id", p.ProductHandler.UpdateProduct, authed)
		productGroup.DELETE("/:id", p.ProductHandler.DeleteProduct, authed)
	}

	// Service listings
	serviceGroup := e.Group("/services")
	{
		serviceGroup.GET("", p.ServiceHandler.ListServices)
		serviceGroup.GET("/mine", p.ServiceHandler.ListOwnServices, authed)
		serviceGroup.GET("/:id", p.ServiceHandler.GetService)
		serviceGroup.POST("", p.ServiceHandler.CreateService, authed)
		serviceGroup.PATCH("/:id", p.ServiceHandler.UpdateService, authed)
		serviceGroup.DELETE("/:id", p.ServiceHandler.DeleteService, authed)
	}

	// Ephemeral stories. View and click counters are public.
	storyGroup := e.Group("/stories")
	{
		storyGroup.GET("", p.StoryHandler.ListActiveStories)
		storyGroup.GET("/mine", p.StoryHandler.ListOwnStories, authed)
		storyGroup.GET("/:id", p.StoryHandler.GetStory)
		storyGroup.GET("/:id/stats", p.StoryHandler.GetStats, authed)
		storyGroup.POST("", p.StoryHandler.CreateStory, authed)
		storyGroup.DELETE("/:id", p.StoryHandler.DeleteStory, authed)
		storyGroup.POST("/:id/view", p.StoryHandler.RecordView)
		storyGroup.POST("/:id/click", p.StoryHandler.RecordClick)
	}

	// Reviews. Listing is public, writing requires a session.
	reviewGroup := e.Group("/reviews")
	{
		reviewGroup.GET("", p.ReviewHandler.ListReviews)
		reviewGroup.POST("", p.ReviewHandler.CreateReview, authed)
		reviewGroup.PATCH("/:id", p.ReviewHandler.UpdateReview, authed)
		reviewGroup.DELETE("/:id", p.ReviewHandler.DeleteReview, authed)
	}

	// Favorites, all private
	favoriteGroup := e.Group("/favorites", authed)
	{
		favoriteGroup.GET("", p.FavoriteHandler.ListFavorites)
		favoriteGroup.GET("/check", p.FavoriteHandler.CheckFavorite)
		favoriteGroup.POST("", p.FavoriteHandler.AddFavorite)
		favoriteGroup.DELETE("/:id", p.FavoriteHandler.RemoveFavorite)
	}

	// Subscriptions, restricted to business-owning roles. The gateway
	// webhook stays outside the group.
	ownerOnly := p.AuthMiddleware.RequireRole(
		string(entity.RoleBusiness),
		string(entity.RoleStreetVendor),
		string(entity.RoleServiceProvider),
	)
	subscriptionGroup := e.Group("/subscriptions", authed, ownerOnly)
	{
		subscriptionGroup.GET("", p.SubscriptionHandler.History)
		subscriptionGroup.GET("/current", p.SubscriptionHandler.GetCurrent)
		subscriptionGroup.POST("", p.SubscriptionHandler.Subscribe)
		subscriptionGroup.DELETE("/current", p.SubscriptionHandler.Cancel)
	}

	// Payment gateway callback. Authenticated by payment reference lookup,
	// not by session.
	e.POST("/webhooks/mercadopago", p.SubscriptionHandler.Webhook)

	// Global search
	e.GET("/search", p.SearchHandler.Search)
}
