// Package collaborator models the binding between a remote role-association
// and a farm, and the fixed role hierarchy that governs who may edit or
// remove whom.
package collaborator

// Role names as issued by the user service.
const (
	RoleOwner         = "Propietario"
	RoleAdministrator = "Administrador de finca"
	RoleOperator      = "Operador de campo"

	// RoleUnknown is returned by best-effort role-name lookups that failed.
	RoleUnknown = "Unknown"
)

// Permission names granted by the user service.
const (
	PermEditAdministrator   = "edit_administrator_farm"
	PermEditOperator        = "edit_operator_farm"
	PermDeleteAdministrator = "delete_administrator_farm"
	PermDeleteOperator      = "delete_operator_farm"
	PermReadCollaborators   = "read_collaborators"

	PermAddPlot    = "add_plot"
	PermEditPlot   = "edit_plot"
	PermDeletePlot = "delete_plot"
	PermReadPlots  = "read_plots"

	PermEditFarm   = "edit_farm"
	PermDeleteFarm = "delete_farm"
)
