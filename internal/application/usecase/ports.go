package usecase

import (
	"context"

	"github.com/rifapro/rifapro-api/internal/domain/entity"
	"github.com/rifapro/rifapro-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repositorios atados a una misma transacción.
// Lo implementa postgres.TxRunner; se usa para la cascada galpón→productos, de
// forma que el invariante "galpón inactivo no tiene productos activos" no pueda
// quedar a medias ante un fallo parcial.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		warehouseRepo repository.WarehouseRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// NoteManifestBuilder genera el manifiesto XML de un romaneo para intercambio externo.
type NoteManifestBuilder interface {
	BuildManifest(note *entity.Note, truck *entity.Truck, driver *entity.Driver, client *entity.Client) ([]byte, error)
}

// NotePDFGenerator genera la representación imprimible de un romaneo.
type NotePDFGenerator interface {
	GenerateNotePDF(ctx context.Context, note *entity.Note, truck *entity.Truck, driver *entity.Driver, client *entity.Client) ([]byte, error)
}
