package xmlexport

import (
	"fmt"
	"time"

	"github.com/beevik/etree"
	"github.com/rifapro/rifapro-api/internal/application/usecase"
	"github.com/rifapro/rifapro-api/internal/domain/entity"
)

var _ usecase.NoteManifestBuilder = (*ManifestBuilder)(nil)

// ManifestBuilder genera el manifiesto XML de un romaneo para intercambio con
// sistemas externos (transportadoras, aseguradoras). El formato es propio de
// RifaPro, no un estándar fiscal.
type ManifestBuilder struct{}

// NewManifestBuilder construye el generador de manifiestos.
func NewManifestBuilder() *ManifestBuilder {
	return &ManifestBuilder{}
}

// BuildManifest arma el documento XML del romaneo con camión, motorista y cliente.
func (b *ManifestBuilder) BuildManifest(note *entity.Note, truck *entity.Truck, driver *entity.Driver, client *entity.Client) ([]byte, error) {
	if note == nil {
		return nil, fmt.Errorf("note requerida")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("DeliveryManifest")
	root.CreateAttr("version", "1.0")
	root.CreateAttr("id", note.ID)
	root.CreateAttr("generatedAt", time.Now().UTC().Format(time.RFC3339))

	n := root.CreateElement("Note")
	n.CreateElement("Status").SetText(note.Status)
	n.CreateElement("TotalAmount").SetText(note.TotalAmount.StringFixed(2))
	n.CreateElement("SyncStatus").SetText(note.SyncStatus)
	if note.DepartureDate != nil {
		n.CreateElement("DepartureDate").SetText(note.DepartureDate.UTC().Format(time.RFC3339))
	}
	if note.ReturnDate != nil {
		n.CreateElement("ReturnDate").SetText(note.ReturnDate.UTC().Format(time.RFC3339))
	}

	if truck != nil {
		t := root.CreateElement("Truck")
		t.CreateAttr("id", truck.ID)
		t.CreateElement("Plate").SetText(truck.Plate)
		t.CreateElement("Model").SetText(truck.Model)
	}

	if driver != nil {
		d := root.CreateElement("Driver")
		d.CreateAttr("id", driver.ID)
		d.CreateElement("CPF").SetText(driver.CPF)
		d.CreateElement("CNH").SetText(driver.CNH)
		d.CreateElement("Phone").SetText(driver.Phone)
	}

	if client != nil {
		c := root.CreateElement("Client")
		c.CreateAttr("id", client.ID)
		c.CreateElement("Name").SetText(client.Name)
		c.CreateElement("City").SetText(client.City)
		c.CreateElement("State").SetText(client.State)
	}

	doc.Indent(2)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serializar manifiesto: %w", err)
	}
	return out, nil
}
