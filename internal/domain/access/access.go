// Package access implementa las reglas de autorización de RifaPro:
// el chequeo grueso de rol por página/operación y el filtrado fino por
// registro (row-level scoping) según la afiliación del actor.
//
// Las dos funciones son predicados puros, sin efectos: el llamador decide
// cómo responder a una denegación (403, redirección, lista filtrada).
package access

import "github.com/rifapro/rifapro-api/internal/domain/entity"

// Actor es la identidad autenticada que ejecuta una operación. Se construye
// explícitamente desde los claims del token y el perfil persistido; nunca se
// lee de estado global.
type Actor struct {
	UserID   string
	Role     string // vacío si el perfil aún no existe (denegar siempre)
	ClientID string // afiliación de client_admins y drivers

	// WarehouseIDs son los galpones propiedad del actor (solo warehouse_admin);
	// los resuelve el llamador antes de evaluar CanSee sobre productos.
	WarehouseIDs []string
}

// CanAccessPage decide si role puede acceder a una operación cuyo conjunto de
// roles permitidos es allowed. Rol vacío (autenticado sin perfil, o perfil aún
// no creado) deniega siempre; nunca se permite por defecto.
func CanAccessPage(role string, allowed []string) bool {
	if role == "" {
		return false
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// CanSee decide si el actor puede ver/operar sobre un registro concreto,
// después del chequeo grueso de rol. app_admin no tiene restricción; los demás
// roles ven solo registros de su propio ámbito.
func CanSee(actor Actor, resource any) bool {
	if actor.Role == "" {
		return false
	}
	if actor.Role == entity.RoleAppAdmin {
		return true
	}
	switch res := resource.(type) {
	case *entity.Client:
		return actor.Role == entity.RoleClientAdmin && actor.ClientID == res.ID
	case *entity.DriverAssignment:
		switch actor.Role {
		case entity.RoleClientAdmin:
			return actor.ClientID == res.ClientID
		case entity.RoleDriver:
			return actor.UserID == res.UserID
		}
		return false
	case *entity.Driver:
		switch actor.Role {
		case entity.RoleClientAdmin:
			return actor.ClientID == res.ClientID
		case entity.RoleDriver:
			return actor.UserID == res.UserID
		}
		return false
	case *entity.Truck:
		return actor.Role == entity.RoleClientAdmin && actor.ClientID == res.ClientID
	case *entity.Note:
		return actor.Role == entity.RoleClientAdmin && actor.ClientID == res.ClientID
	case *entity.Warehouse:
		return actor.Role == entity.RoleWarehouseAdmin && actor.UserID == res.OwnerID
	case *entity.Product:
		if actor.Role != entity.RoleWarehouseAdmin {
			return false
		}
		for _, id := range actor.WarehouseIDs {
			if id == res.WarehouseID {
				return true
			}
		}
		return false
	case *entity.User:
		switch actor.Role {
		case entity.RoleClientAdmin:
			return res.ClientID != "" && actor.ClientID == res.ClientID
		default:
			return actor.UserID == res.ID
		}
	}
	return false
}
