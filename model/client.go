package model

import "hotel_manager/utils"

type Client struct {
	DTO
	AccountID     *uint             `json:"accountId,omitempty"`
	Account       *Account          `json:"account,omitempty"`
	FullName      string            `json:"fullName"`
	CPF           string            `gorm:"unique;size:14" json:"cpf"`
	RG            *string           `json:"rg,omitempty"`
	BirthDate     *utils.CustomDate `gorm:"type:date" json:"birthDate,omitempty"`
	Nationality   string            `gorm:"default:Brasileira" json:"nationality"`
	MaritalStatus *string           `json:"maritalStatus,omitempty"`
	Profession    *string           `json:"profession,omitempty"`
	Phone         *string           `json:"phone,omitempty"`
	Mobile        *string           `json:"mobile,omitempty"`
	Email         *string           `json:"email,omitempty"`
	ZipCode       *string           `json:"zipCode,omitempty"`
	Street        *string           `json:"street,omitempty"`
	Number        *string           `json:"number,omitempty"`
	Complement    *string           `json:"complement,omitempty"`
	District      *string           `json:"district,omitempty"`
	City          *string           `json:"city,omitempty"`
	State         *string           `json:"state,omitempty"`
	OriginCity    *string           `json:"originCity,omitempty"`
	OriginState   *string           `json:"originState,omitempty"`
	VisitReason   string            `gorm:"default:tourism" json:"visitReason"` // tourism, work, event, family
	Notes         *string           `json:"notes,omitempty"`
	Preferences   *string           `json:"preferences,omitempty"`
}

type CreateClientInput struct {
	FullName      string            `json:"fullName" validate:"required"`
	CPF           string            `json:"cpf" validate:"required"`
	RG            *string           `json:"rg"`
	BirthDate     *utils.CustomDate `json:"birthDate"`
	Nationality   string            `json:"nationality"`
	MaritalStatus *string           `json:"maritalStatus"`
	Profession    *string           `json:"profession"`
	Phone         *string           `json:"phone"`
	Mobile        *string           `json:"mobile"`
	Email         *string           `json:"email" validate:"omitempty,email"`
	ZipCode       *string           `json:"zipCode"`
	Street        *string           `json:"street"`
	Number        *string           `json:"number"`
	Complement    *string           `json:"complement"`
	District      *string           `json:"district"`
	City          *string           `json:"city"`
	State         *string           `json:"state"`
	OriginCity    *string           `json:"originCity"`
	OriginState   *string           `json:"originState"`
	VisitReason   string            `json:"visitReason" validate:"omitempty,oneof=tourism work event family"`
	Notes         *string           `json:"notes"`
	Preferences   *string           `json:"preferences"`
}

type ClientStatistics struct {
	TotalClients int64 `json:"totalClients"`
	Tourism      int64 `json:"tourism"`
	Work         int64 `json:"work"`
	Event        int64 `json:"event"`
	Family       int64 `json:"family"`
	Brazilians   int64 `json:"brazilians"`
	Foreigners   int64 `json:"foreigners"`
}
