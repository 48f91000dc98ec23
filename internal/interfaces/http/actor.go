package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rifapro/rifapro-api/internal/domain/access"
	"github.com/rifapro/rifapro-api/internal/domain/entity"
	"github.com/rifapro/rifapro-api/internal/domain/repository"
)

// ActorProvider arma el access.Actor de la petición a partir de los claims del
// token. Para warehouse_admin resuelve además los IDs de sus galpones, que el
// token no lleva porque cambian con el tiempo.
type ActorProvider struct {
	warehouseRepo repository.WarehouseRepository
}

// NewActorProvider construye el provider.
func NewActorProvider(warehouseRepo repository.WarehouseRepository) *ActorProvider {
	return &ActorProvider{warehouseRepo: warehouseRepo}
}

// Actor devuelve el actor de la petición. El error solo puede venir de la
// resolución de galpones; los claims ya fueron validados por AuthMiddleware.
func (p *ActorProvider) Actor(c *fiber.Ctx) (access.Actor, error) {
	actor := access.Actor{
		UserID:   GetUserID(c),
		Role:     GetRole(c),
		ClientID: GetClientID(c),
	}
	if actor.Role == entity.RoleWarehouseAdmin {
		warehouses, err := p.warehouseRepo.ListByOwner(actor.UserID)
		if err != nil {
			return access.Actor{}, err
		}
		for _, w := range warehouses {
			actor.WarehouseIDs = append(actor.WarehouseIDs, w.ID)
		}
	}
	return actor, nil
}
