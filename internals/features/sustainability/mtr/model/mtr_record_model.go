package model

import (
	"time"

	"github.com/google/uuid"
)

// MtrRecord é um Manifesto de Transporte de Resíduos.
// As datas de emissão e vencimento são tratadas como data (sem hora).
type MtrRecord struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;index;uniqueIndex:idx_mtr_user_number" json:"user_id"`

	MtrNumber   string `gorm:"column:mtr_number;type:varchar(30);not null;uniqueIndex:idx_mtr_user_number" json:"mtr_number"`
	ProjectName string `gorm:"column:project_name;type:varchar(200);not null" json:"project_name" validate:"required,max=200"`

	WasteType   string  `gorm:"column:waste_type;type:varchar(100);not null" json:"waste_type" validate:"required,max=100"`
	Quantity    float64 `gorm:"column:quantity;not null" json:"quantity" validate:"gt=0"`
	Unit        string  `gorm:"column:unit;type:varchar(20);not null" json:"unit" validate:"required,max=20"`
	Description string  `gorm:"column:description;type:text" json:"description"`

	GeneratorName    string `gorm:"column:generator_name;type:varchar(200)" json:"generator_name"`
	GeneratorCnpj    string `gorm:"column:generator_cnpj;type:varchar(20)" json:"generator_cnpj"`
	GeneratorAddress string `gorm:"column:generator_address;type:text" json:"generator_address"`

	TransporterName    string `gorm:"column:transporter_name;type:varchar(200)" json:"transporter_name"`
	TransporterCnpj    string `gorm:"column:transporter_cnpj;type:varchar(20)" json:"transporter_cnpj"`
	TransporterLicense string `gorm:"column:transporter_license;type:varchar(100)" json:"transporter_license"`

	ReceiverName    string `gorm:"column:receiver_name;type:varchar(200)" json:"receiver_name"`
	ReceiverCnpj    string `gorm:"column:receiver_cnpj;type:varchar(20)" json:"receiver_cnpj"`
	ReceiverLicense string `gorm:"column:receiver_license;type:varchar(100)" json:"receiver_license"`

	IssueDate time.Time `gorm:"column:issue_date;type:date;not null" json:"issue_date"`
	DueDate   time.Time `gorm:"column:due_date;type:date;not null" json:"due_date"`

	Status   string `gorm:"column:status;type:varchar(30);not null;default:'ativo'" json:"status"`
	Location string `gorm:"column:location;type:varchar(200)" json:"location"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (MtrRecord) TableName() string {
	return "mtr_records"
}
