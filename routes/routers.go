package routes

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"tourism/config"
	"tourism/controllers"
	middlewares "tourism/middleware"
	"tourism/response"
)

// SetupRoutes đăng ký toàn bộ route. API chính nằm dưới /:lang/api/v1,
// lang không hợp lệ bị chặn ở LangMiddleware.
func SetupRoutes(router *gin.Engine) {

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"success": true,
			"message": "Tourism API",
			"docs":    "/docs/index.html",
		})
	})

	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/:lang/api/v1", middlewares.LangMiddleware())

	v1.POST("/auth/register", controllers.Register)
	v1.POST("/auth/login", controllers.Login)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.GET("/auth/me", middlewares.AuthMiddleware(), controllers.GetMe)

	v1.GET("/tours", controllers.GetAllTours)
	v1.GET("/tours/search", controllers.SearchTours)
	v1.GET("/tours/:id", controllers.GetTourByID)
	v1.POST("/tours", middlewares.AuthMiddleware(), controllers.CreateTour)
	v1.PUT("/tours/:id", middlewares.AuthMiddleware(), controllers.UpdateTour)
	v1.DELETE("/tours/:id", middlewares.AuthMiddleware(), controllers.DeleteTour)

	v1.GET("/tours/:id/program", controllers.GetTourProgram)
	v1.GET("/tours/:id/days", controllers.GetTourDays)
	v1.POST("/tours/:id/days", middlewares.AuthMiddleware(), controllers.CreateTourDay)
	v1.PUT("/days/:dayId", middlewares.AuthMiddleware(), controllers.UpdateTourDay)
	v1.DELETE("/days/:dayId", middlewares.AuthMiddleware(), controllers.DeleteTourDay)
	v1.GET("/days/:dayId/items", controllers.GetTourDayItems)
	v1.POST("/days/:dayId/items", middlewares.AuthMiddleware(), controllers.CreateTourDayItem)
	v1.PUT("/items/:itemId", middlewares.AuthMiddleware(), controllers.UpdateTourDayItem)
	v1.DELETE("/items/:itemId", middlewares.AuthMiddleware(), controllers.DeleteTourDayItem)

	v1.GET("/cars", controllers.GetAllCars)
	v1.GET("/cars/:id", controllers.GetCarByID)
	v1.POST("/cars", middlewares.AuthMiddleware(), controllers.CreateCar)
	v1.PUT("/cars/:id", middlewares.AuthMiddleware(), controllers.UpdateCar)
	v1.DELETE("/cars/:id", middlewares.AuthMiddleware(), controllers.DeleteCar)

	v1.POST("/reviews/tour/:id", middlewares.AuthMiddleware(), controllers.AddTourReview)
	v1.DELETE("/reviews/tour/:id", middlewares.AuthMiddleware(), controllers.DeleteTourReview)
	v1.POST("/reviews/car/:id", middlewares.AuthMiddleware(), controllers.AddCarReview)
	v1.DELETE("/reviews/car/:id", middlewares.AuthMiddleware(), controllers.DeleteCarReview)
	v1.GET("/reviews/site", controllers.GetAllSiteReviews)
	v1.POST("/reviews/site", middlewares.AuthMiddleware(), controllers.AddSiteReview)
	v1.DELETE("/reviews/site/:id", middlewares.AuthMiddleware(), controllers.DeleteSiteReview)

	favorites := v1.Group("/users/favorites", middlewares.AuthMiddleware())
	favorites.GET("/tours", controllers.GetFavoriteTours)
	favorites.POST("/tours/:tourId", controllers.AddFavoriteTour)
	favorites.DELETE("/tours/:tourId", controllers.RemoveFavoriteTour)
	favorites.GET("/cars", controllers.GetFavoriteCars)
	favorites.POST("/cars/:carId", controllers.AddFavoriteCar)
	favorites.DELETE("/cars/:carId", controllers.RemoveFavoriteCar)

	v1.POST("/img/upload", middlewares.AuthMiddleware(), func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			response.BadRequest(c, "upload.no_file")
			return
		}

		src, err := file.Open()
		if err != nil {
			response.BadRequest(c, "upload.file_error")
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "uploads"})
		if err != nil {
			response.ServerError(c, "upload.failed")
			return
		}

		response.OK(c, gin.H{
			"message": response.Message(c, "upload.success"),
			"url":     resp.SecureURL,
		})
	})

	v1.POST("/img/multi-upload", middlewares.AuthMiddleware(), func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			response.BadRequest(c, "upload.no_file")
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			response.BadRequest(c, "upload.no_file")
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				response.BadRequest(c, "upload.file_error")
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := config.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "uploads"})
			if err != nil {
				response.ServerError(c, "upload.failed")
				return
			}
			urls = append(urls, resp.SecureURL)
		}

		response.OK(c, gin.H{
			"message": response.Message(c, "upload.success"),
			"urls":    urls,
		})
	})
}
