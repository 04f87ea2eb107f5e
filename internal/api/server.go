package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gin-contrib/requestid"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/votekeeper/votekeeper-api/docs"
	v1 "github.com/votekeeper/votekeeper-api/internal/api/handler/v1"
	"github.com/votekeeper/votekeeper-api/internal/api/middleware"
	"github.com/votekeeper/votekeeper-api/internal/config"
	"github.com/votekeeper/votekeeper-api/internal/repository"
	"github.com/votekeeper/votekeeper-api/internal/repository/dao"
	"github.com/votekeeper/votekeeper-api/internal/service"
	"github.com/votekeeper/votekeeper-api/internal/session"
)

type Server struct {
	Config   *config.AppConfig
	Router   *gin.Engine
	sessions *session.Manager
	codec    *session.CookieCodec
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config:   conf,
		Router:   engine,
		sessions: session.NewManager(session.NewMemoryStore(), time.Duration(conf.Session.TTLHours)*time.Hour),
		codec:    session.NewCookieCodec(conf.Session.SigningKey),
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	electionHandler := s.initElectionHandler(db)
	questionHandler := s.initQuestionHandler(db)
	voterHandler := s.initVoterHandler(db)
	s.MountHandlers(authHandler, electionHandler, questionHandler, voterHandler)

	return s
}

// Close stops the session manager's eviction janitor.
func (s *Server) Close() {
	s.sessions.Close()
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	adminDAO := dao.NewAdministratorDAO(db)
	repo := repository.NewAdministratorRepository(adminDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.Session, svc, s.sessions, s.codec)

	return handler
}

func (s *Server) initElectionHandler(db *gorm.DB) *v1.ElectionHandler {
	electionRepo := repository.NewElectionRepository(dao.NewElectionDAO(db))
	questionRepo := repository.NewQuestionRepository(dao.NewQuestionDAO(db))
	voterRepo := repository.NewVoterRepository(dao.NewVoterDAO(db))
	svc := service.NewElectionService(electionRepo, questionRepo, voterRepo)
	handler := v1.NewElectionHandler(svc)

	return handler
}

func (s *Server) initQuestionHandler(db *gorm.DB) *v1.QuestionHandler {
	questionRepo := repository.NewQuestionRepository(dao.NewQuestionDAO(db))
	electionRepo := repository.NewElectionRepository(dao.NewElectionDAO(db))
	svc := service.NewQuestionService(questionRepo, electionRepo)
	handler := v1.NewQuestionHandler(svc)

	return handler
}

func (s *Server) initVoterHandler(db *gorm.DB) *v1.VoterHandler {
	voterRepo := repository.NewVoterRepository(dao.NewVoterDAO(db))
	electionRepo := repository.NewElectionRepository(dao.NewElectionDAO(db))
	svc := service.NewVoterService(voterRepo, electionRepo)
	handler := v1.NewVoterHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, electionHandler *v1.ElectionHandler, questionHandler *v1.QuestionHandler, voterHandler *v1.VoterHandler) {
	authenticator := middleware.NewAuthenticator(s.sessions, s.codec, s.Config.Session.CookieName)

	public := s.Router.Group("")
	{
		public.POST("/admin", authHandler.HandleSignup)
		public.POST("/session", authHandler.HandleLogin)
		public.GET(middleware.LoginPath, authHandler.HandleLoginPage)
	}

	// Every management route sits behind the session guard; the CSRF
	// filter only examines state-changing verbs.
	managed := s.Router.Group("", authenticator.RequireSession(), middleware.CSRF(s.sessions))
	{
		managed.GET("/signout", authHandler.HandleSignout)
		managed.POST("/password-reset", authHandler.HandleResetPassword)

		managed.GET("/elections", electionHandler.HandleListElections)
		managed.POST("/elections", electionHandler.HandleCreateElection)
		managed.GET("/elections/:electionID", electionHandler.HandleGetElection)

		managed.GET("/elections/:electionID/questions", questionHandler.HandleListQuestions)
		managed.POST("/elections/:electionID/questions/create", questionHandler.HandleAddQuestion)
		managed.GET("/elections/:electionID/questions/:questionID", questionHandler.HandleGetQuestion)
		managed.PUT("/questions/:questionID/edit", questionHandler.HandleUpdateQuestion)
		managed.DELETE("/elections/:electionID/questions/:questionID", questionHandler.HandleDeleteQuestion)

		managed.POST("/elections/:electionID/questions/:questionID", questionHandler.HandleAddOption)
		managed.PUT("/options/:optionID/edit", questionHandler.HandleUpdateOption)
		managed.DELETE("/options/:optionID", questionHandler.HandleDeleteOption)

		managed.GET("/elections/:electionID/voters", voterHandler.HandleListVoters)
		managed.POST("/elections/:electionID/voters/create", voterHandler.HandleCreateVoter)
		managed.DELETE("/elections/:electionID/voters/:voterID", voterHandler.HandleDeleteVoter)
		managed.POST("/elections/:electionID/voters/:voterID/edit", voterHandler.HandleResetVoterPassword)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = "votekeeper API"
	docs.SwaggerInfo.Description = "Administration API for the votekeeper online-voting platform."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
