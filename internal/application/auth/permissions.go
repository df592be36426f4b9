package auth

import "github.com/jhoicas/quincaillerie-api/internal/domain/entity"

// Operation identifica una operación protegida de la API.
type Operation string

// Operaciones protegidas. Añadir un rol exige actualizar explícitamente cada
// entrada de la tabla: no existe superconjunto implícito.
const (
	OpListUsers      Operation = "users.list"
	OpCreateUser     Operation = "users.create"
	OpDeactivateUser Operation = "users.deactivate"
	OpReactivateUser Operation = "users.reactivate"

	OpCreateCategory  Operation = "categories.create"
	OpUpdateCategory  Operation = "categories.update"
	OpArchiveCategory Operation = "categories.archive"

	OpCreateSubCategory  Operation = "subcategories.create"
	OpUpdateSubCategory  Operation = "subcategories.update"
	OpArchiveSubCategory Operation = "subcategories.archive"

	OpCreateProduct  Operation = "products.create"
	OpUpdateProduct  Operation = "products.update"
	OpUpdateStock    Operation = "products.stock"
	OpArchiveProduct Operation = "products.archive"
	OpManageImages   Operation = "products.images"

	OpCreateSupplier  Operation = "suppliers.create"
	OpUpdateSupplier  Operation = "suppliers.update"
	OpArchiveSupplier Operation = "suppliers.archive"

	OpCreateOrder Operation = "orders.create"
	OpCancelOrder Operation = "orders.cancel"
)

// permissions tabla central operación -> roles permitidos. Único lugar donde
// se declaran los conjuntos de roles; los handlers nunca comparan strings de
// rol por su cuenta.
var permissions = map[Operation][]string{
	OpListUsers:      {entity.RoleManager},
	OpCreateUser:     {entity.RoleManager},
	OpDeactivateUser: {entity.RoleManager},
	OpReactivateUser: {entity.RoleManager},

	OpCreateCategory:  {entity.RoleManager},
	OpUpdateCategory:  {entity.RoleManager},
	OpArchiveCategory: {entity.RoleManager},

	OpCreateSubCategory:  {entity.RoleManager},
	OpUpdateSubCategory:  {entity.RoleManager},
	OpArchiveSubCategory: {entity.RoleManager},

	OpCreateProduct:  {entity.RoleManager},
	OpUpdateProduct:  {entity.RoleManager},
	OpUpdateStock:    {entity.RoleManager},
	OpArchiveProduct: {entity.RoleManager},
	OpManageImages:   {entity.RoleManager},

	OpCreateSupplier:  {entity.RoleManager, entity.RolePurchaseOfficer},
	OpUpdateSupplier:  {entity.RoleManager, entity.RolePurchaseOfficer},
	OpArchiveSupplier: {entity.RoleManager},

	OpCreateOrder: {entity.RoleManager, entity.RolePurchaseOfficer},
	OpCancelOrder: {entity.RoleManager, entity.RolePurchaseOfficer},
}

// AllowedRoles devuelve el conjunto de roles permitidos para una operación.
// Operación desconocida devuelve conjunto vacío (denegar por defecto).
func AllowedRoles(op Operation) []string {
	return permissions[op]
}

// Authorize verifica que la identidad pueda ejecutar la operación según la
// tabla central de permisos.
func Authorize(identity *Identity, op Operation) error {
	return RequireRole(identity, AllowedRoles(op)...)
}
