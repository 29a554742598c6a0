package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/coffeetech/farms/internal/interfaces/http/handlers"
)

// CollaboratorRouteConfig holds dependencies for collaborator routes.
type CollaboratorRouteConfig struct {
	CollaboratorHandler *handlers.CollaboratorHandler
	RequireAuth         gin.HandlerFunc
}

func SetupCollaboratorRoutes(r gin.IRouter, cfg *CollaboratorRouteConfig) {
	collaborators := r.Group("/collaborators")
	collaborators.Use(cfg.RequireAuth)
	{
		collaborators.GET("/list-collaborators", cfg.CollaboratorHandler.ListCollaborators)
		collaborators.POST("/edit-collaborator-role", cfg.CollaboratorHandler.EditCollaboratorRole)
		collaborators.POST("/delete-collaborator", cfg.CollaboratorHandler.DeleteCollaborator)
	}
}
