package main

import (
	"context"
	"net/http"
	"time"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"
	"github.com/sendgrid/sendgrid-go"
	twilio "github.com/twilio/twilio-go"

	"github.com/MrSmurf09/Api-Proyecto/internal/app"
	"github.com/MrSmurf09/Api-Proyecto/internal/config"
	"github.com/MrSmurf09/Api-Proyecto/internal/constants"
	"github.com/MrSmurf09/Api-Proyecto/internal/controllers"
	"github.com/MrSmurf09/Api-Proyecto/internal/middleware"
	"github.com/MrSmurf09/Api-Proyecto/internal/repositories"
	"github.com/MrSmurf09/Api-Proyecto/internal/routes"
	"github.com/MrSmurf09/Api-Proyecto/internal/services"
	"github.com/MrSmurf09/Api-Proyecto/internal/storage"
	"github.com/MrSmurf09/Api-Proyecto/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize api:", err)
	}
	defer application.Close()

	loc, err := time.LoadLocation(constants.RegionTimeZone)
	if err != nil {
		utils.Logger.Fatal("Failed to load region timezone:", err)
	}

	userRepo := repositories.NewUserRepository(application.DB)
	farmRepo := repositories.NewFarmRepository(application.DB)
	paddockRepo := repositories.NewPaddockRepository(application.DB)
	animalRepo := repositories.NewAnimalRepository(application.DB)
	reminderRepo := repositories.NewReminderRepository(application.DB)
	milkRepo := repositories.NewMilkProductionRepository(application.DB)
	medicalRepo := repositories.NewMedicalProcedureRepository(application.DB)
	codeStore := repositories.NewMemoryResetCodeStore()

	objects, err := storage.NewDiskStore(cfg.UploadsDir, cfg.AppUrl+"/uploads")
	if err != nil {
		utils.Logger.Fatal("Failed to initialize uploads storage:", err)
	}

	sgClient := sendgrid.NewSendClient(cfg.SendGridAPIKey)
	mailer := services.NewSendGridMailer(sgClient, cfg.SendGridFromName, cfg.SendGridFromEmail, cfg.SendGridSandbox)

	var twClient *twilio.RestClient
	if cfg.SMSEnabled() {
		twClient = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
	}

	policy := services.NewWindowPolicy(loc)
	policy.IncludeOverdue = cfg.IncludeOverdueAlerts

	scanner := services.NewDueEventScanner(policy, animalRepo, reminderRepo, userRepo)
	dispatcher := services.NewAlertDispatcher(animalRepo, reminderRepo, mailer, loc, twClient, cfg.TwilioFromPhone)
	alertService := services.NewAlertService(scanner, dispatcher)
	userService := services.NewUserService(userRepo, codeStore, mailer, cfg.JWTSecret)
	reminderService := services.NewReminderService(reminderRepo)
	farmService := services.NewFarmService(farmRepo, objects)

	healthController := controllers.NewHealthController()
	userController := controllers.NewUserController(userService, userRepo)
	farmController := controllers.NewFarmController(farmService)
	paddockController := controllers.NewPaddockController(paddockRepo)
	animalController := controllers.NewAnimalController(animalRepo)
	productionController := controllers.NewProductionController(milkRepo, medicalRepo)
	reminderController := controllers.NewReminderController(reminderService)
	alertController := controllers.NewAlertController(alertService)

	router := mux.NewRouter()

	// Public
	router.HandleFunc(routes.Ping, healthController.PingHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.UserRegister, userController.RegisterHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.UserLogin, userController.LoginHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.UserForgot, userController.ForgotPasswordHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.UserVerifyCode, userController.VerifyResetCodeHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.UserResetPassword, userController.ResetPasswordHandler).Methods(http.MethodPost)
	router.PathPrefix(routes.Uploads).Handler(
		http.StripPrefix(routes.Uploads, http.FileServer(http.Dir(cfg.UploadsDir))),
	).Methods(http.MethodGet)

	// External schedulers hit these without credentials.
	router.HandleFunc(routes.CheckHerd, alertController.CheckHerdHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.DispatchReminders, alertController.DispatchRemindersHandler).Methods(http.MethodGet)

	secured := router.NewRoute().Subrouter()
	secured.Use(middleware.AuthMiddleware(cfg.JWTSecret))

	secured.HandleFunc(routes.Farms, farmController.CreateFarmHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.Farms, farmController.ListFarmsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.FarmByID, farmController.UpdateFarmHandler).Methods(http.MethodPut)
	secured.HandleFunc(routes.FarmByID, farmController.DeleteFarmHandler).Methods(http.MethodDelete)

	secured.HandleFunc(routes.PaddocksByFarm, paddockController.CreatePaddockHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.PaddocksByFarm, paddockController.ListPaddocksHandler).Methods(http.MethodGet)

	secured.HandleFunc(routes.AnimalsByPaddock, animalController.CreateAnimalHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.AnimalsByPaddock, animalController.ListAnimalsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.AnimalByID, animalController.GetAnimalHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.AnimalByID, animalController.DeleteAnimalHandler).Methods(http.MethodDelete)
	secured.HandleFunc(routes.AnimalPregnancy, animalController.SetPregnancyDateHandler).Methods(http.MethodPatch)
	secured.HandleFunc(routes.AnimalDeworming, animalController.SetDewormingDateHandler).Methods(http.MethodPatch)
	secured.HandleFunc(routes.AnimalVeterinarian, animalController.AssignVeterinarianHandler).Methods(http.MethodPatch)
	secured.HandleFunc(routes.Veterinarians, userController.ListVeterinariansHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.VeterinarianOwnAnimals, animalController.ListAssignedAnimalsHandler).Methods(http.MethodGet)

	secured.HandleFunc(routes.MilkByAnimal, productionController.CreateMilkRecordHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.MilkByAnimal, productionController.ListMilkRecordsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.MilkByID, productionController.DeleteMilkRecordHandler).Methods(http.MethodDelete)
	secured.HandleFunc(routes.MedicalByAnimal, productionController.CreateMedicalProcedureHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.MedicalByAnimal, productionController.ListMedicalProceduresHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.MedicalByID, productionController.DeleteMedicalProcedureHandler).Methods(http.MethodDelete)

	secured.HandleFunc(routes.Reminders, reminderController.CreateReminderHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.RemindersByAnimal, reminderController.ListRemindersHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.ReminderByID, reminderController.DeleteReminderHandler).Methods(http.MethodDelete)

	c := cron.New(cron.WithLocation(loc))
	_, herdErr := c.AddFunc("0 7 * * *", func() {
		if _, e := alertService.RunHerdScan(context.Background()); e != nil {
			utils.Logger.WithError(e).Error("Scheduled herd scan failed")
		}
	})
	if herdErr != nil {
		utils.Logger.WithError(herdErr).Fatal("Failed to schedule herd scan cron")
	}

	_, remErr := c.AddFunc("@hourly", func() {
		if _, e := alertService.RunReminderDispatch(context.Background()); e != nil {
			utils.Logger.WithError(e).Error("Scheduled reminder dispatch failed")
		}
	})
	if remErr != nil {
		utils.Logger.WithError(remErr).Fatal("Failed to schedule reminder cron")
	}
	c.Start()

	co := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl, "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", config.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("api failed to start:", err)
	}
}
