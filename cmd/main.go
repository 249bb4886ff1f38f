package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	checkAvailabilityHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/check_availability"
	createDiningReservationHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/create_dining_reservation"
	createReservationHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/create_reservation"
	getCalendarHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/get_calendar"
	getMeHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/get_me"
	getProfileHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/get_profile"
	getReservationHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/get_reservation"
	getUserDiningReservationsHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/get_user_dining_reservations"
	getUserReservationsHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/get_user_reservations"
	googleCallbackHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/google_callback"
	googleLoginHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/google_login"
	healthHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/health"
	hideReservationHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/hide_reservation"
	listDiningExperiencesHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/list_dining_experiences"
	listRoomsHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/list_rooms"
	loginHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/logout"
	registerHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/register"
	selectDateHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/select_date"
	updateProfileHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/update_profile"
	uploadAvatarHandler "github.com/m04kA/hotel-booking-service/internal/api/handlers/upload_avatar"
	"github.com/m04kA/hotel-booking-service/internal/api/middleware"
	"github.com/m04kA/hotel-booking-service/internal/calendar"
	"github.com/m04kA/hotel-booking-service/internal/config"
	"github.com/m04kA/hotel-booking-service/internal/domain"
	sessionStore "github.com/m04kA/hotel-booking-service/internal/infra/session"
	diningRepo "github.com/m04kA/hotel-booking-service/internal/infra/storage/dining"
	reservationRepo "github.com/m04kA/hotel-booking-service/internal/infra/storage/reservation"
	userRepo "github.com/m04kA/hotel-booking-service/internal/infra/storage/user"
	cloudinaryClient "github.com/m04kA/hotel-booking-service/internal/integrations/cloudinary"
	googleClient "github.com/m04kA/hotel-booking-service/internal/integrations/google"
	authService "github.com/m04kA/hotel-booking-service/internal/service/auth"
	profileService "github.com/m04kA/hotel-booking-service/internal/service/profile"
	reservationsService "github.com/m04kA/hotel-booking-service/internal/service/reservations"
	checkAvailabilityUC "github.com/m04kA/hotel-booking-service/internal/usecase/check_availability"
	createDiningReservationUC "github.com/m04kA/hotel-booking-service/internal/usecase/create_dining_reservation"
	createReservationUC "github.com/m04kA/hotel-booking-service/internal/usecase/create_reservation"
	getCalendarUC "github.com/m04kA/hotel-booking-service/internal/usecase/get_calendar"
	selectDateUC "github.com/m04kA/hotel-booking-service/internal/usecase/select_date"
	"github.com/m04kA/hotel-booking-service/pkg/dbmetrics"
	"github.com/m04kA/hotel-booking-service/pkg/logger"
	"github.com/m04kA/hotel-booking-service/pkg/metrics"
	"github.com/m04kA/hotel-booking-service/pkg/txmanager"
)

func main() {
	// Переменные окружения из .env (если файл есть) подставляются в config.toml
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Printf("Failed to load .env: %v\n", err)
		os.Exit(1)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.toml"
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting hotel-booking-service...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var dbCollector dbmetrics.Collector
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		dbCollector = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelStartup()

	if err := db.PingContext(startupCtx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Без коллектора обертка только передает запросы и транзакции
	wrappedDB := dbmetrics.WrapWithDefault(db, dbCollector, stopMetricsCh)

	// Подключаемся к Redis (сессии, OAuth state, ограничение частоты)
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	if err := rdb.Ping(startupCtx).Err(); err != nil {
		log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Address, err)
	}
	log.Info("Successfully connected to redis (%s)", cfg.Redis.Address)

	// Календарь доступности
	location, err := cfg.Calendar.Location()
	if err != nil {
		log.Fatal("Invalid calendar timezone: %v", err)
	}
	ranges, err := cfg.Calendar.Ranges()
	if err != nil {
		log.Fatal("Invalid booked ranges: %v", err)
	}
	rangeSource, err := calendar.NewStaticSource(ranges)
	if err != nil {
		log.Fatal("Failed to build booked ranges: %v", err)
	}
	engine := calendar.NewEngine(rangeSource)
	machine := calendar.NewMachine(engine)
	log.Info("Calendar initialized (timezone=%s, booked ranges=%d)", location, len(rangeSource.Ranges()))

	trustedProxies, err := cfg.Server.TrustedProxyNets()
	if err != nil {
		log.Fatal("Invalid trusted proxies: %v", err)
	}

	// Интеграции. Отключенная интеграция передается как nil интерфейс.
	var google authService.GoogleClient
	if cfg.Auth.Google.Enabled() {
		google = googleClient.NewClient(googleClient.Config{
			ClientID:     cfg.Auth.Google.ClientID,
			ClientSecret: cfg.Auth.Google.ClientSecret,
			RedirectURL:  cfg.Auth.Google.RedirectURL,
		}, log)
		log.Info("Google sign-in enabled (redirect=%s)", cfg.Auth.Google.RedirectURL)
	} else {
		log.Warn("Google sign-in disabled: client_id/client_secret are not set")
	}

	var uploader profileService.ImageUploader
	if cfg.Cloudinary.Enabled() {
		client, err := cloudinaryClient.NewClient(
			cloudinaryClient.DefaultUploadPrefix,
			cloudinaryClient.Credentials{
				CloudName: cfg.Cloudinary.CloudName,
				APIKey:    cfg.Cloudinary.APIKey,
				APISecret: cfg.Cloudinary.APISecret,
				Folder:    cfg.Cloudinary.Folder,
			},
			time.Duration(cfg.Cloudinary.Timeout)*time.Second,
			log,
		)
		if err != nil {
			log.Fatal("Failed to create cloudinary client: %v", err)
		}
		uploader = cloudinaryClient.NewRateLimitedUploader(
			client,
			time.Duration(cfg.Cloudinary.UploadIntervalSec)*time.Second,
			cfg.Cloudinary.UploadBurst,
		)
		log.Info("Avatar upload enabled (cloud=%s, folder=%s)", cfg.Cloudinary.CloudName, cfg.Cloudinary.Folder)
	} else {
		log.Warn("Avatar upload disabled: cloudinary credentials are not set")
	}

	// Инициализируем хранилища
	sessions := sessionStore.NewStore(
		rdb,
		cfg.Auth.SessionTTL(),
		time.Duration(cfg.Auth.Google.StateTTLSeconds)*time.Second,
	)
	txMgr := txmanager.NewTransactionManager(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)
	reservationRepository := reservationRepo.NewRepository(wrappedDB)
	diningRepository := diningRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	authSvc := authService.NewService(
		userRepository,
		sessions,
		google,
		txMgr,
		metricsCollector,
		cfg.Auth.BcryptCost,
		log,
	)
	reservationsSvc := reservationsService.NewService(reservationRepository, diningRepository, log)
	profileSvc := profileService.NewService(userRepository, uploader, log)

	// Инициализируем use cases
	getCalendarUseCase := getCalendarUC.NewUseCase(engine, location, log)
	selectDateUseCase := selectDateUC.NewUseCase(machine, location, metricsCollector, log)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(engine, location, log)
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		engine,
		location,
		metricsCollector,
		log,
	)
	createDiningReservationUseCase := createDiningReservationUC.NewUseCase(
		diningRepository,
		userRepository,
		location,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	selectDate := selectDateHandler.NewHandler(selectDateUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	listRooms := listRoomsHandler.NewHandler(domain.Rooms)
	listDiningExperiences := listDiningExperiencesHandler.NewHandler(domain.DiningExperiences)

	register := registerHandler.NewHandler(authSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	googleLogin := googleLoginHandler.NewHandler(authSvc, log)
	googleCallback := googleCallbackHandler.NewHandler(authSvc, cfg.Auth.Google.SuccessRedirect, log)
	logout := logoutHandler.NewHandler(authSvc, log)
	getMe := getMeHandler.NewHandler(authSvc, log)

	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	getUserReservations := getUserReservationsHandler.NewHandler(reservationsSvc, log)
	hideReservation := hideReservationHandler.NewHandler(reservationsSvc, log)
	createDiningReservation := createDiningReservationHandler.NewHandler(createDiningReservationUseCase, log)
	getUserDiningReservations := getUserDiningReservationsHandler.NewHandler(reservationsSvc, log)

	getProfile := getProfileHandler.NewHandler(profileSvc, log)
	updateProfile := updateProfileHandler.NewHandler(profileSvc, log)
	uploadAvatar := uploadAvatarHandler.NewHandler(profileSvc, log)

	health := healthHandler.NewHandler(map[string]healthHandler.Pinger{
		"postgres": db,
		"redis": healthHandler.PingerFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}),
	}, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", health.Live).Methods(http.MethodGet)
	r.HandleFunc("/readyz", health.Ready).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Календарь ---
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/calendar/select", selectDate.Handle).Methods(http.MethodPost)
	api.HandleFunc("/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// --- Каталог ---
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/dining/experiences", listDiningExperiences.Handle).Methods(http.MethodGet)

	// --- Вход через Google ---
	api.HandleFunc("/auth/google/login", googleLogin.Handle).Methods(http.MethodGet)
	api.HandleFunc("/auth/google/callback", googleCallback.Handle).Methods(http.MethodGet)

	// --- Регистрация и вход по паролю (с ограничением частоты по IP) ---
	limiter := middleware.NewRateLimiter(
		rdb,
		cfg.Auth.RateLimitRequests,
		cfg.Auth.RateLimitWindow(),
		"ratelimit:auth",
		trustedProxies,
		log,
	)
	limited := api.PathPrefix("/auth").Subrouter()
	limited.Use(limiter.Middleware)
	limited.HandleFunc("/register", register.Handle).Methods(http.MethodPost)
	limited.HandleFunc("/login", login.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют Authorization: Bearer <token>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authSvc))

	// --- Сессия ---
	protected.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/auth/me", getMe.Handle).Methods(http.MethodGet)

	// --- Бронирования номеров ---
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/reservations/{id:[0-9]+}", getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reservations/{id:[0-9]+}/hide", hideReservation.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/users/me/reservations", getUserReservations.Handle).Methods(http.MethodGet)

	// --- Бронирования столиков ---
	protected.HandleFunc("/dining/reservations", createDiningReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/users/me/dining-reservations", getUserDiningReservations.Handle).Methods(http.MethodGet)

	// --- Профиль ---
	protected.HandleFunc("/users/me/profile", getProfile.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/me/profile", updateProfile.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/users/me/avatar", uploadAvatar.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
