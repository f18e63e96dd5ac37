package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/fsnd-projects/fsnd-api/docs"
	v1 "github.com/fsnd-projects/fsnd-api/internal/api/handler/v1"
	"github.com/fsnd-projects/fsnd-api/internal/api/middleware"
	"github.com/fsnd-projects/fsnd-api/internal/config"
	"github.com/fsnd-projects/fsnd-api/internal/domain"
	"github.com/fsnd-projects/fsnd-api/internal/repository"
	"github.com/fsnd-projects/fsnd-api/internal/repository/dao"
	"github.com/fsnd-projects/fsnd-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

type handlers struct {
	auth   *v1.AuthHandler
	user   *v1.UserHandler
	trivia *v1.TriviaHandler
	quiz   *v1.QuizHandler
	fyyur  *v1.FyyurHandler
	coffee *v1.CoffeeHandler
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()
	s.MountHandlers(handlers{
		auth:   s.initAuthHandler(db),
		user:   s.initUserHandler(db),
		trivia: s.initTriviaHandler(db),
		quiz:   s.initQuizHandler(db),
		fyyur:  s.initFyyurHandler(db),
		coffee: s.initCoffeeHandler(db),
	})

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(db *gorm.DB) *v1.UserHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initTriviaHandler(db *gorm.DB) *v1.TriviaHandler {
	triviaDAO := dao.NewTriviaDAO(db)
	repo := repository.NewTriviaRepository(triviaDAO)
	svc := service.NewTriviaService(repo, s.Config.Trivia.QuestionsPerPage)
	handler := v1.NewTriviaHandler(svc)

	return handler
}

func (s *Server) initQuizHandler(db *gorm.DB) *v1.QuizHandler {
	triviaDAO := dao.NewTriviaDAO(db)
	repo := repository.NewTriviaRepository(triviaDAO)
	svc := service.NewQuizService(repo, nil)
	handler := v1.NewQuizHandler(svc)

	return handler
}

func (s *Server) initFyyurHandler(db *gorm.DB) *v1.FyyurHandler {
	repo := repository.NewFyyurRepository(dao.NewVenueDAO(db), dao.NewArtistDAO(db), dao.NewShowDAO(db))
	svc := service.NewFyyurService(repo)
	handler := v1.NewFyyurHandler(svc)

	return handler
}

func (s *Server) initCoffeeHandler(db *gorm.DB) *v1.CoffeeHandler {
	repo := repository.NewCoffeeRepository(dao.NewDrinkDAO(db), dao.NewMenuDAO(db))
	svc := service.NewCoffeeService(repo)
	handler := v1.NewCoffeeHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(h handlers) {
	authn := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)

	auth := s.Router.Group("/auth")
	{
		auth.POST("/signup", h.auth.HandleSignup)
		auth.POST("/login", h.auth.HandleLogin)
	}

	users := s.Router.Group("/users", authn.VerifyJWT())
	{
		users.GET("/:userID", h.user.HandleGetUser)
	}

	trivia := s.Router.Group("")
	{
		trivia.GET("/categories", h.trivia.HandleGetCategories)
		trivia.GET("/categories/:categoryID/questions", h.trivia.HandleGetCategoryQuestions)
		trivia.GET("/questions", h.trivia.HandleGetQuestions)
		trivia.POST("/questions", h.trivia.HandleCreateQuestion)
		trivia.POST("/questions/search", h.trivia.HandleSearchQuestions)
		trivia.DELETE("/questions/:questionID", h.trivia.HandleDeleteQuestion)
		trivia.GET("/quizzes", h.quiz.HandleNextQuestion)
		trivia.POST("/quizzes", h.quiz.HandleNextQuestion)
	}

	venues := s.Router.Group("/venues")
	{
		venues.GET("", h.fyyur.HandleGetVenues)
		venues.POST("/search", h.fyyur.HandleSearchVenues)
		venues.POST("/create", h.fyyur.HandleCreateVenue)
		venues.GET("/:venueID", h.fyyur.HandleGetVenue)
		venues.DELETE("/:venueID", h.fyyur.HandleDeleteVenue)
		venues.GET("/:venueID/edit", h.fyyur.HandleGetVenueForm)
		venues.POST("/:venueID/edit", h.fyyur.HandleUpdateVenue)
	}

	artists := s.Router.Group("/artists")
	{
		artists.GET("", h.fyyur.HandleGetArtists)
		artists.POST("/search", h.fyyur.HandleSearchArtists)
		artists.POST("/create", h.fyyur.HandleCreateArtist)
		artists.GET("/:artistID", h.fyyur.HandleGetArtist)
		artists.DELETE("/:artistID", h.fyyur.HandleDeleteArtist)
		artists.GET("/:artistID/edit", h.fyyur.HandleGetArtistForm)
		artists.POST("/:artistID/edit", h.fyyur.HandleUpdateArtist)
	}

	shows := s.Router.Group("/shows")
	{
		shows.GET("", h.fyyur.HandleGetShows)
		shows.POST("/create", h.fyyur.HandleCreateShow)
	}

	s.Router.GET("/drinks", h.coffee.HandleGetDrinks)
	s.Router.GET("/menus", h.coffee.HandleGetMenus)

	coffee := s.Router.Group("", authn.VerifyJWT())
	{
		coffee.GET("/drinks-detail", middleware.RequirePermission(domain.PermGetDrinksDetail), h.coffee.HandleGetDrinksDetail)
		coffee.POST("/drinks", middleware.RequirePermission(domain.PermPostDrinks), h.coffee.HandleCreateDrink)
		coffee.PATCH("/drinks/:drinkID", middleware.RequirePermission(domain.PermPatchDrinks), h.coffee.HandleUpdateDrink)
		coffee.DELETE("/drinks/:drinkID", middleware.RequirePermission(domain.PermDeleteDrinks), h.coffee.HandleDeleteDrink)
		coffee.POST("/menus", middleware.RequirePermission(domain.PermPostMenu), h.coffee.HandleCreateMenu)
	}

	capstone := s.Router.Group("/capstone")
	{
		capstone.GET("/", v1.HandleCapstoneIndex)
		capstone.GET("/hi", v1.HandleCapstoneHi)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.NoRoute(v1.HandleNoRoute)
	s.Router.NoMethod(v1.HandleNoMethod)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = "FSND API"
	docs.SwaggerInfo.Description = "Trivia, Fyyur and Coffee Shop APIs."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
