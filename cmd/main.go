package main

import (
	"content-hub-api/config"
	_ "content-hub-api/docs"
	"content-hub-api/internal/handler"
	"content-hub-api/internal/ports"
	"content-hub-api/internal/repository"
	"content-hub-api/internal/security"
	"content-hub-api/internal/service"
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type handlers struct {
	auth        *handler.AuthenticationHandler
	user        *handler.UserHandler
	video       *handler.VideoHandler
	comment     *handler.CommentHandler
	tweet       *handler.TweetHandler
	playlist    *handler.PlaylistHandler
	like        *handler.LikeHandler
	dashboard   *handler.DashboardHandler
	healthcheck *handler.HealthcheckHandler
}

// @title Content Hub API
// @version 1.0
// @description REST API для видео, комментариев, лайков, твитов и плейлистов

// @host localhost:8080

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	configPath := flag.String("config", "config.yaml", "путь к файлу конфигурации")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка при закрытии БД: %v", err)
		}
	}()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Не удалось применить миграции: %v", err)
	}

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		log.Fatalf("Ошибка подключения к Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Ошибка при закрытии Redis: %v", err)
		}
	}()

	s3Service, err := service.NewS3Service(ctx, &cfg.S3Config)
	if err != nil {
		log.Fatalf("Ошибка создания S3 сервиса: %v", err)
	}

	jwtService, err := security.NewJWTService(&cfg.JWT)
	if err != nil {
		log.Fatalf("Ошибка создания JWT сервиса: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	tweetRepo := repository.NewTweetRepository(db)
	playlistRepo := repository.NewPlaylistRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, time.Duration(cfg.TTL.VideoCache)*time.Second)

	authService := service.NewAuthenticationService(userRepo, jwtService)
	userService := service.NewUserService(userRepo, s3Service)
	videoService := service.NewVideoService(videoRepo, cacheRepo, s3Service, time.Duration(cfg.TTL.Presign)*time.Second)
	commentService := service.NewCommentService(commentRepo)
	tweetService := service.NewTweetService(tweetRepo)
	playlistService := service.NewPlaylistService(playlistRepo)
	likeService := service.NewLikeService(likeRepo)
	dashboardService := service.NewDashboardService(dashboardRepo, videoRepo)

	h := handlers{
		auth:      handler.NewAuthenticationHandler(authService, jwtService.AccessTTL(), jwtService.RefreshTTL()),
		user:      handler.NewUserHandler(userService),
		video:     handler.NewVideoHandler(videoService),
		comment:   handler.NewCommentHandler(commentService),
		tweet:     handler.NewTweetHandler(tweetService),
		playlist:  handler.NewPlaylistHandler(playlistService),
		like:      handler.NewLikeHandler(likeService),
		dashboard: handler.NewDashboardHandler(dashboardService),
		healthcheck: handler.NewHealthcheckHandler(map[string]ports.Pinger{
			"postgres": db,
			"redis":    redisClient,
		}),
	}

	authenticator := security.NewAuthenticator(jwtService, userRepo)

	srv, router := config.SetupServer(cfg.ServerAddr)
	router.Get("/swagger/*", httpSwagger.WrapHandler)
	router.Route("/api/v1", func(r chi.Router) {
		setupPublicRoutes(r, h)
		r.Group(func(r chi.Router) {
			r.Use(authenticator.Middleware)
			setupProtectedRoutes(r, h)
		})
	})

	runServer(ctx, srv)
}

func setupPublicRoutes(r chi.Router, h handlers) {
	r.Get("/healthcheck", h.healthcheck.Healthcheck)
	r.Post("/users/register", h.user.RegisterUser)
	r.Post("/auth/login", h.auth.Login)
	r.Post("/auth/refresh", h.auth.RefreshToken)
}

func setupProtectedRoutes(r chi.Router, h handlers) {
	r.Post("/auth/logout", h.auth.Logout)

	r.Route("/users/me", func(r chi.Router) {
		r.Get("/", h.user.GetCurrentUser)
		r.Patch("/", h.user.UpdateAccount)
		r.Patch("/avatar", h.user.UpdateAvatar)
		r.Patch("/cover", h.user.UpdateCoverImage)
		r.Put("/password", h.auth.ChangePassword)
	})

	r.Route("/videos", func(r chi.Router) {
		r.Get("/", h.video.ListVideos)
		r.Post("/", h.video.PublishVideo)
		r.Post("/upload-url", h.video.CreateUploadURL)

		r.Route("/{videoId}", func(r chi.Router) {
			r.Get("/", h.video.GetVideo)
			r.Patch("/", h.video.UpdateVideo)
			r.Delete("/", h.video.DeleteVideo)
			r.Patch("/publish", h.video.TogglePublishStatus)
		})
	})

	r.Route("/comments", func(r chi.Router) {
		r.Get("/{videoId}", h.comment.ListVideoComments)
		r.Post("/{videoId}", h.comment.AddComment)
		r.Patch("/c/{commentId}", h.comment.UpdateComment)
		r.Delete("/c/{commentId}", h.comment.DeleteComment)
	})

	r.Route("/tweets", func(r chi.Router) {
		r.Post("/", h.tweet.CreateTweet)
		r.Get("/me", h.tweet.ListMyTweets)
		r.Get("/user/{userId}", h.tweet.ListUserTweets)
		r.Patch("/{tweetId}", h.tweet.UpdateTweet)
		r.Delete("/{tweetId}", h.tweet.DeleteTweet)
	})

	r.Route("/playlists", func(r chi.Router) {
		r.Post("/", h.playlist.CreatePlaylist)
		r.Get("/me", h.playlist.ListMyPlaylists)
		r.Get("/user/{userId}", h.playlist.ListUserPlaylists)

		r.Route("/{playlistId}", func(r chi.Router) {
			r.Get("/", h.playlist.GetPlaylist)
			r.Patch("/", h.playlist.UpdatePlaylist)
			r.Delete("/", h.playlist.DeletePlaylist)
			r.Patch("/videos/{videoId}", h.playlist.AddVideo)
			r.Delete("/videos/{videoId}", h.playlist.RemoveVideo)
		})
	})

	r.Route("/likes", func(r chi.Router) {
		r.Post("/toggle/v/{videoId}", h.like.ToggleVideoLike)
		r.Post("/toggle/c/{commentId}", h.like.ToggleCommentLike)
		r.Post("/toggle/t/{tweetId}", h.like.ToggleTweetLike)
		r.Get("/videos", h.like.ListLikedVideos)
	})

	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/stats", h.dashboard.ChannelStats)
		r.Get("/videos", h.dashboard.ChannelVideos)
	})
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("сервер запущен на " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("получен сигнал %v остановки работы сервера ", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("ошибка при остановке сервера: %v", err)
	} else {
		log.Println("Сервер успешно остановлен")
	}
}
