package routes

const (
	// Health
	Ping = "/api/ping"

	// Public user endpoints
	UserRegister      = "/usuario/registrar"
	UserLogin         = "/usuario/login"
	UserForgot        = "/usuario/olvide-contrasena"
	UserVerifyCode    = "/usuario/verificar-codigo"
	UserResetPassword = "/usuario/restablecer-contrasena"

	// Farms
	Farms    = "/api/fincas"
	FarmByID = "/api/fincas/{id}"

	// Paddocks (per-farm)
	PaddocksByFarm = "/api/potreros/{farmID}"

	// Animals
	AnimalsByPaddock       = "/api/vacas/{paddockID}"
	AnimalByID             = "/api/vaca/{id}"
	AnimalPregnancy        = "/api/vacas/{id}/embarazo"
	AnimalDeworming        = "/api/vacas/{id}/desparasitacion"
	AnimalVeterinarian     = "/api/vacas/{id}/veterinario"
	Veterinarians          = "/api/veterinarios"
	VeterinarianOwnAnimals = "/api/veterinario/vacas"

	// Milk production and medical procedures (per-animal, delete by record id)
	MilkByAnimal    = "/api/produccion/leche/{animalID}"
	MilkByID        = "/api/produccion/leche/registro/{id}"
	MedicalByAnimal = "/api/procesos/medicos/{animalID}"
	MedicalByID     = "/api/procesos/medicos/registro/{id}"

	// Reminders
	Reminders         = "/api/recordatorios"
	RemindersByAnimal = "/api/recordatorios/{animalID}"
	ReminderByID      = "/api/recordatorios/registro/{id}"

	// Alert scans (also run from cron)
	CheckHerd         = "/api/revisar-vacas"
	DispatchReminders = "/api/recordatorio/enviar"

	// Static uploads
	Uploads = "/uploads/"
)
