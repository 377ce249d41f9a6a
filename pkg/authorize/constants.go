package authorize

type Action string
type Resource string
type Role string
type PolicyEffect string

// ----------------------------
// Actions
// ----------------------------

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"
)

const (
	WildcardAction Action = "*"
)

var KnownActions = map[Action]struct{}{
	ActionCreate: {}, ActionRead: {}, ActionUpdate: {}, ActionDelete: {}, ActionList: {},
}

// ----------------------------
// Resources
// ----------------------------

const (
	WildcardResource Resource = "*"

	ResourcePatient      Resource = "patient"
	ResourceIncident     Resource = "incident"
	ResourceIncidentFile Resource = "incident_file"
	ResourceDashboard    Resource = "dashboard"
	ResourceSession      Resource = "session"
)

var KnownResources = map[Resource]struct{}{
	ResourcePatient: {}, ResourceIncident: {}, ResourceIncidentFile: {},
	ResourceDashboard: {}, ResourceSession: {},
}

// ----------------------------
// Roles
// ----------------------------

// Role names match the persisted Identity.Role values.
const (
	RoleAdmin   Role = "Admin"
	RolePatient Role = "Patient"
)

var KnownRoles = map[Role]struct{}{
	RoleAdmin: {}, RolePatient: {},
}

// ----------------------------
// Policy effects
// ----------------------------

const (
	EffectAllow PolicyEffect = "allow"
	EffectDeny  PolicyEffect = "deny"
)
