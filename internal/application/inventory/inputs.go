package inventory

import (
	"strings"

	"github.com/jhoicas/Rollstock-api/internal/domain"
	"github.com/jhoicas/Rollstock-api/internal/domain/entity"
)

// ItemRef identifica un ítem dentro de una planta.
type ItemRef struct {
	Class entity.ItemClass
	Plant string
	Code  string
}

// normalized recorta el código; el ítem se guarda recortado desde la recepción.
func (r ItemRef) normalized() ItemRef {
	r.Code = strings.TrimSpace(r.Code)
	return r
}

func (r ItemRef) validate() error {
	if !r.Class.Valid() {
		return domain.Invalid("class", "desconocida")
	}
	if strings.TrimSpace(r.Plant) == "" {
		return domain.Invalid("plant", "vacía")
	}
	if strings.TrimSpace(r.Code) == "" {
		return domain.Invalid("code", "vacío")
	}
	return nil
}

// ReceiveInput recepción de un rollo o pallet nuevo.
type ReceiveInput struct {
	ItemRef
	BinLocation string
	Weight      float64
	Diameter    float64
	Length      float64
	Kind        string
	GSM         float64
	Width       float64
	Batch       string
	ProdOrderNo string
}

func (in ReceiveInput) validate() error {
	if err := in.ItemRef.validate(); err != nil {
		return err
	}
	if strings.TrimSpace(in.BinLocation) == "" {
		return domain.Invalid("bin_location", "vacía")
	}
	if in.Weight <= 0 {
		return domain.Invalid("weight", "debe ser mayor que 0")
	}
	if in.Diameter < 0 || in.Length < 0 || in.GSM < 0 || in.Width < 0 {
		return domain.Invalid("dimensions", "no pueden ser negativas")
	}
	return nil
}

// IssueInput emisión a producción (PR: máquina/unidad/grupo) o a despacho (FG: línea de pedido).
type IssueInput struct {
	ItemRef
	Machine     string
	Unit        string
	Group       string
	ProdOrderNo string
	SalesNo     string
	SalesItem   string
}

func (in IssueInput) validate() error {
	if err := in.ItemRef.validate(); err != nil {
		return err
	}
	if in.Class == entity.ClassFinishedGood && (in.SalesNo == "" || in.SalesItem == "") {
		return domain.Invalid("sales_no", "línea de despacho requerida")
	}
	return nil
}

// RelocateInput cambio de ubicación sin cambio de cantidades.
type RelocateInput struct {
	ItemRef
	NewLocation string
}

func (in RelocateInput) validate() error {
	if err := in.ItemRef.validate(); err != nil {
		return err
	}
	if strings.TrimSpace(in.NewLocation) == "" {
		return domain.Invalid("new_location", "vacía")
	}
	return nil
}

// ReturnInput retorno de un rollo desde producción con el diámetro medido.
type ReturnInput struct {
	Plant          string
	Code           string
	ReturnDiameter float64
	BinLocation    string
}

func (in ReturnInput) ref() ItemRef {
	return ItemRef{Class: entity.ClassPaperRoll, Plant: in.Plant, Code: in.Code}
}

func (in ReturnInput) validate() error {
	if err := in.ref().validate(); err != nil {
		return err
	}
	if in.ReturnDiameter <= 0 {
		return domain.Invalid("return_diameter", "debe ser mayor que 0")
	}
	if strings.TrimSpace(in.BinLocation) == "" {
		return domain.Invalid("bin_location", "vacía")
	}
	return nil
}

// MovementResult estado del ítem y evento escrito (o borrado, en anulaciones).
type MovementResult struct {
	Item  *entity.StockItem
	Event *entity.MovementEvent
}
