package route

import (
	"gingallery/config"
	"gingallery/controller"
	"gingallery/database"
	mw "gingallery/middlewares"

	"github.com/gin-gonic/gin"
)

func Protected(router *gin.Engine, cfg *config.Config, db database.DB, ctrl *controller.Controller) {

	protected := router.Group("/")
	protected.Use(mw.JWT(cfg))

	clusters := db.Collection(database.ClustersCollection)

	protected.GET("/images", ctrl.ListImages)
	protected.GET("/images/one/:size/:image", ctrl.ResizeImage)

	protected.GET("/images/clusters", ctrl.ListClusters)
	protected.GET("/images/clusters/:clusteruri", ctrl.GetClusterByURI)
	protected.POST("/images/clusters",
		mw.CheckClusterNameFree(clusters),
		mw.CheckClusterURIFree(clusters),
		ctrl.CreateCluster)

	protected.POST("/images/images/:clusterid",
		mw.ValidateClusterID(clusters),
		ctrl.UploadImages)

	protected.GET("/static/images/*filepath", ctrl.ServeStatic)
}
