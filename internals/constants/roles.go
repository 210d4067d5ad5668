package constants

// Papéis de acesso do Sistema MAR.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Níveis de plano — controlam o acesso aos materiais.
const (
	PlanBasic        = "basic"
	PlanIntermediate = "intermediate"
	PlanPremium      = "premium"
)

var AllRoles = []string{RoleUser, RoleAdmin}

var AllPlanLevels = []string{PlanBasic, PlanIntermediate, PlanPremium}
