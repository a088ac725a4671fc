package domain

// Acciones y recursos sobre los que se otorgan permisos. Cada ruta de
// inventario se protege con la pareja (acción, recurso).
const (
	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"

	ResourceWarehouseInventory = "almacen_inventario"
	ResourceBranchInventory    = "sucursal_inventario"
)

// rolePermissions define qué acciones puede ejecutar cada rol sobre cada recurso.
// admin: todo. bodeguero: dueño del inventario de almacén, lectura en sucursal.
// vendedor: dueño del inventario de sucursal, lectura en almacén.
var rolePermissions = map[string]map[string][]string{
	"admin": {
		ResourceWarehouseInventory: {ActionRead, ActionCreate, ActionUpdate, ActionDelete},
		ResourceBranchInventory:    {ActionRead, ActionCreate, ActionUpdate, ActionDelete},
	},
	"bodeguero": {
		ResourceWarehouseInventory: {ActionRead, ActionCreate, ActionUpdate, ActionDelete},
		ResourceBranchInventory:    {ActionRead},
	},
	"vendedor": {
		ResourceWarehouseInventory: {ActionRead},
		ResourceBranchInventory:    {ActionRead, ActionCreate, ActionUpdate, ActionDelete},
	},
}

// Allowed informa si el rol puede ejecutar la acción sobre el recurso.
// Roles desconocidos no tienen ningún permiso.
func Allowed(role, action, resource string) bool {
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}
	for _, a := range perms[resource] {
		if a == action {
			return true
		}
	}
	return false
}
