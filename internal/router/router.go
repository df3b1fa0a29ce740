package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListSlots(c *ginext.Context)
	ListReservations(c *ginext.Context)
	CreateReservation(c *ginext.Context)
	DeleteReservation(c *ginext.Context)
	PublicConfig(c *ginext.Context)
	ListUsers(c *ginext.Context)
	CreateUser(c *ginext.Context)
	AdjustCredits(c *ginext.Context)
	SetUserStatus(c *ginext.Context)
	SetConfig(c *ginext.Context)
	SetFields(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mutationMW ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		api.GET("/slots", h.ListSlots)
		api.GET("/public/config", h.PublicConfig)

		api.GET("/reservations", h.ListReservations)
		api.POST("/reservations", mutationMW, h.CreateReservation)
		api.DELETE("/reservations/:id", mutationMW, h.DeleteReservation)

		admin := api.Group("/admin")
		{
			admin.GET("/users", h.ListUsers)
			admin.POST("/users", h.CreateUser)
			admin.PUT("/users/credits", h.AdjustCredits)
			admin.PUT("/users/status", h.SetUserStatus)
			admin.PUT("/config", h.SetConfig)
			admin.PUT("/fields", h.SetFields)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
