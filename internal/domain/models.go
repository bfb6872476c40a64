package domain

import "time"

// Collaborator represents the colaboradores table. The two onboarding
// flags are stored as 0/1 smallints; fecha_onboarding_tecnico is nullable.
type Collaborator struct {
	ID                     int64      `json:"id" db:"id"`
	Nombre                 string     `json:"nombre" db:"nombre"`
	Correo                 string     `json:"correo" db:"correo"`
	FechaIngreso           time.Time  `json:"fecha_ingreso" db:"fecha_ingreso"`
	OnboardingBienvenida   bool       `json:"onboarding_bienvenida" db:"onboarding_bienvenida"`
	OnboardingTecnico      bool       `json:"onboarding_tecnico" db:"onboarding_tecnico"`
	FechaOnboardingTecnico *time.Time `json:"fecha_onboarding_tecnico" db:"fecha_onboarding_tecnico"`
}

// Session represents the onboardings_tecnicos table. DuracionDias and
// DiasParaInicio are computed by the queries that load them, never stored.
type Session struct {
	ID                int64     `json:"id" db:"id"`
	Nombre            string    `json:"nombre" db:"nombre"`
	Capitulo          string    `json:"capitulo" db:"capitulo"`
	FechaInicio       time.Time `json:"fecha_inicio" db:"fecha_inicio"`
	FechaFin          time.Time `json:"fecha_fin" db:"fecha_fin"`
	ResponsableNombre string    `json:"responsable_nombre" db:"responsable_nombre"`
	ResponsableCorreo string    `json:"responsable_correo" db:"responsable_correo"`
	DuracionDias      int       `json:"duracion_dias,omitempty"`
	DiasParaInicio    int       `json:"dias_para_inicio,omitempty"`
}

// Onboarding type and estado values accepted by the dashboard filters.
const (
	TipoBienvenida = "bienvenida"
	TipoTecnico    = "tecnico"

	EstadoCompletado = "completado"
	EstadoPendiente  = "pendiente"
)

// CollaboratorFilter defines the optional dashboard criteria. Zero values
// mean "no constraint" for that dimension. Tipo and Estado only take
// effect together: the estado applies to the flag named by the tipo.
type CollaboratorFilter struct {
	TipoOnboarding string
	Estado         string
	Nombre         string
	Correo         string
}

// SessionFilter bounds the calendar listing. Desde and Hasta are
// YYYY-MM-DD strings taken verbatim from the request; empty means open.
type SessionFilter struct {
	Desde string
	Hasta string
}
