package models

type Role string

const (
	RoleAdmin        Role = "admin"
	RoleSuperadmin   Role = "superadmin"
	RolePatient      Role = "patient"
	RoleDoctor       Role = "doctor"
	RoleNurse        Role = "nurse"
	RoleStudent      Role = "student"
	RolePharmacist   Role = "pharmacist"
	RoleTherapist    Role = "therapist"
	RoleTechnician   Role = "technician"
	RoleReceptionist Role = "receptionist"
	RoleLabAssistant Role = "lab_assistant"
	RoleRadiologist  Role = "radiologist"

	RoleCardiologist         Role = "cardiologist"
	RoleNeurologist          Role = "neurologist"
	RoleOncologist           Role = "oncologist"
	RoleDermatologist        Role = "dermatologist"
	RoleEndocrinologist      Role = "endocrinologist"
	RoleGastroenterologist   Role = "gastroenterologist"
	RoleHematologist         Role = "hematologist"
	RoleInfectiousSpecialist Role = "infectious_disease_specialist"
	RoleNephrologist         Role = "nephrologist"
)

var allRoles = map[Role]struct{}{
	RoleAdmin:                {},
	RoleSuperadmin:           {},
	RolePatient:              {},
	RoleDoctor:               {},
	RoleNurse:                {},
	RoleStudent:              {},
	RolePharmacist:           {},
	RoleTherapist:            {},
	RoleTechnician:           {},
	RoleReceptionist:         {},
	RoleLabAssistant:         {},
	RoleRadiologist:          {},
	RoleCardiologist:         {},
	RoleNeurologist:          {},
	RoleOncologist:           {},
	RoleDermatologist:        {},
	RoleEndocrinologist:      {},
	RoleGastroenterologist:   {},
	RoleHematologist:         {},
	RoleInfectiousSpecialist: {},
	RoleNephrologist:         {},
}

// Valid reports whether r is one of the closed set of role names. Roles are
// validated once at the signup boundary and carried as typed values after.
func (r Role) Valid() bool {
	_, ok := allRoles[r]
	return ok
}

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Password     string `json:"-"`
	Name         string `json:"name"`
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Specialty    string `json:"specialty"`
	Location     string `json:"location"`
	Initials     string `json:"initials"`
	IsConnected  bool   `json:"isConnected"`
	Role         Role   `json:"role"`
}

type Profile struct {
	ID                int `json:"id"`
	UserID            int `json:"userId"`
	ProfileCompletion int `json:"profileCompletion"`
	RemainingItems    int `json:"remainingItems"`
	NetworkGrowth     int `json:"networkGrowth"`
	NetworkGrowthDays int `json:"networkGrowthDays"`
}
