package route

import (
	"gingallery/config"
	"gingallery/controller"
	"gingallery/database"
	mw "gingallery/middlewares"

	"github.com/gin-gonic/gin"
)

func Unprotected(router *gin.Engine, cfg *config.Config, db database.DB, ctrl *controller.Controller) {
	users := db.Collection(database.UsersCollection)

	router.POST("/auth/register", mw.CheckUserFree(users), ctrl.RegisterUser)
	router.POST("/auth/login", ctrl.Login)
	router.GET("/auth/logout", ctrl.Logout)

	// verify-token does its own gating so a valid token can get a 200 body
	router.GET("/auth/verify-token", mw.JWT(cfg), ctrl.VerifyToken)
}
